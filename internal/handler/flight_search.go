package handler

import (
	"context" // context for the publisher interface
	"errors"  // errors.Is comparisons against sentinel errors
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
	"github.com/iliyamo/flight-itinerary-search/internal/queue"
	"github.com/iliyamo/flight-itinerary-search/internal/repository"
	"github.com/iliyamo/flight-itinerary-search/internal/search"
)

// SearchEventPublisher emits a search.performed event after a successful
// search.  Publishing is best effort: failures are logged and never affect
// the HTTP response.
type SearchEventPublisher interface {
	PublishSearchPerformed(ctx context.Context, ev queue.SearchPerformedEvent) error
}

// SearchHandler serves the itinerary search endpoint.  All validation
// errors are surfaced as 400 before the store is queried; an unknown
// airport id is 404; an empty result is a normal 200 with empty lists.
type SearchHandler struct {
	Searcher *search.Searcher
	Events   SearchEventPublisher // optional; nil disables event publishing
}

// NewSearchHandler constructs a SearchHandler.  The searcher must be
// non-nil; events may be nil.
func NewSearchHandler(searcher *search.Searcher, events SearchEventPublisher) *SearchHandler {
	if searcher == nil {
		panic("nil searcher passed to NewSearchHandler")
	}
	return &SearchHandler{Searcher: searcher, Events: events}
}

// searchRequest is the JSON body of POST /v1/search/itineraries.  Pointer
// fields distinguish "omitted" from an explicit zero so the documented
// defaults (1 passenger, transits included) only apply when the field is
// absent.
type searchRequest struct {
	OriginAirportID      uint64 `json:"origin_airport_id"`
	DestinationAirportID uint64 `json:"destination_airport_id"`
	DepartureDate        string `json:"departure_date"`
	SeatClass            string `json:"seat_class"`
	PassengerCount       *int   `json:"passenger_count"`
	IncludeTransits      *bool  `json:"include_transits"`
}

// SearchItineraries handles POST /v1/search/itineraries.
func (h *SearchHandler) SearchItineraries(c echo.Context) error {
	var body searchRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	seatClass, err := model.ParseSeatClass(body.SeatClass)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":   "validation_failed",
			"message": err.Error(),
		})
	}

	var departureDate time.Time
	if body.DepartureDate != "" {
		departureDate, err = time.ParseInLocation("2006-01-02", body.DepartureDate, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "validation_failed",
				"message": "departure_date must be a calendar date formatted YYYY-MM-DD",
			})
		}
	}

	passengers := 1
	if body.PassengerCount != nil {
		passengers = *body.PassengerCount
	}
	includeTransits := true
	if body.IncludeTransits != nil {
		includeTransits = *body.IncludeTransits
	}

	crit := search.Criteria{
		OriginAirportID:      body.OriginAirportID,
		DestinationAirportID: body.DestinationAirportID,
		DepartureDate:        departureDate,
		SeatClass:            seatClass,
		PassengerCount:       passengers,
		IncludeTransits:      includeTransits,
	}

	result, err := h.Searcher.Search(c.Request().Context(), crit)
	if err != nil {
		switch {
		case errors.Is(err, search.ErrInvalidCriteria):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error":   "validation_failed",
				"message": err.Error(),
			})
		case errors.Is(err, repository.ErrAirportNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":   "airport_not_found",
				"message": err.Error(),
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"error":   "search_failed",
				"message": err.Error(),
			})
		}
	}

	if h.Events != nil {
		ev := queue.SearchPerformedEvent{
			OriginAirportID:      crit.OriginAirportID,
			DestinationAirportID: crit.DestinationAirportID,
			DepartureDate:        crit.DepartureDate.Format("2006-01-02"),
			SeatClass:            string(crit.SeatClass),
			PassengerCount:       crit.PassengerCount,
			IncludeTransits:      crit.IncludeTransits,
			DirectCount:          result.TotalDirectFlights,
			TransitCount:         result.TotalTransitFlights,
			SearchedAt:           time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishSearchPerformed(c.Request().Context(), ev); err != nil {
			c.Logger().Warnf("search event publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusOK, result)
}
