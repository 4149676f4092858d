package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-itinerary-search/internal/repository"
)

// AirportHandler exposes read-only airport browse endpoints so clients can
// resolve airport ids before searching.
type AirportHandler struct {
	AirportRepo *repository.AirportRepo
}

// NewAirportHandler constructs an AirportHandler.
func NewAirportHandler(airportRepo *repository.AirportRepo) *AirportHandler {
	if airportRepo == nil {
		panic("nil repository passed to NewAirportHandler")
	}
	return &AirportHandler{AirportRepo: airportRepo}
}

// ListAirports handles GET /v1/airports.
func (h *AirportHandler) ListAirports(c echo.Context) error {
	airports, err := h.AirportRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":  airports,
		"total": len(airports),
	})
}

// GetAirport handles GET /v1/airports/:id.
func (h *AirportHandler) GetAirport(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid airport id"})
	}
	airport, err := h.AirportRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrAirportNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "airport not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, airport)
}
