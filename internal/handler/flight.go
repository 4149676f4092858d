package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
	"github.com/iliyamo/flight-itinerary-search/internal/repository"
)

// boardQuery is the repository lookup shared by the two flight boards.
type boardQuery func(ctx context.Context, airportID uint64, from, to time.Time) ([]model.Flight, error)

// FlightHandler exposes read-only flight lookups: by id, by flight number,
// by status, and the departure/arrival boards for an airport window.  The
// by-status and board endpoints live under the JWT-protected ops group.
type FlightHandler struct {
	FlightRepo  *repository.FlightRepo
	AirportRepo *repository.AirportRepo
}

// NewFlightHandler constructs a FlightHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewFlightHandler(flightRepo *repository.FlightRepo, airportRepo *repository.AirportRepo) *FlightHandler {
	if flightRepo == nil || airportRepo == nil {
		panic("nil repository passed to NewFlightHandler")
	}
	return &FlightHandler{FlightRepo: flightRepo, AirportRepo: airportRepo}
}

// GetFlight handles GET /v1/flights/:id.
func (h *FlightHandler) GetFlight(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid flight id"})
	}
	f, err := h.FlightRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrFlightNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, f)
}

// GetFlightByNumber handles GET /v1/flights/number/:number.
func (h *FlightHandler) GetFlightByNumber(c echo.Context) error {
	number := strings.TrimSpace(c.Param("number"))
	if number == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight number is required"})
	}
	f, err := h.FlightRepo.GetByNumber(c.Request().Context(), number)
	if err != nil {
		if err == repository.ErrFlightNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, f)
}

// GetFlightsByStatus handles GET /v1/ops/flights/status/:status.  The
// status token is validated; an unknown token is a 400, not an empty list.
func (h *FlightHandler) GetFlightsByStatus(c echo.Context) error {
	status, err := model.ParseFlightStatus(c.Param("status"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "validation_failed", "message": err.Error()})
	}
	flights, err := h.FlightRepo.FindByStatus(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":  flights,
		"total": len(flights),
	})
}

// GetDepartures handles GET /v1/ops/airports/:id/departures?from=&to=.
func (h *FlightHandler) GetDepartures(c echo.Context) error {
	return h.board(c, h.FlightRepo.FindDeparting)
}

// GetArrivals handles GET /v1/ops/airports/:id/arrivals?from=&to=.
func (h *FlightHandler) GetArrivals(c echo.Context) error {
	return h.board(c, h.FlightRepo.FindArriving)
}

// board implements both flight boards; find is the repository lookup that
// differs between them.
func (h *FlightHandler) board(c echo.Context, find boardQuery) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid airport id"})
	}
	from, err := cast.ToTimeE(c.QueryParam("from"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or missing from parameter"})
	}
	to, err := cast.ToTimeE(c.QueryParam("to"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or missing to parameter"})
	}
	if !to.After(from) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "to must be after from"})
	}

	ctx := c.Request().Context()
	airport, err := h.AirportRepo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrAirportNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "airport not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	flights, err := find(ctx, id, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"airport": airport,
		"data":    flights,
		"total":   len(flights),
	})
}
