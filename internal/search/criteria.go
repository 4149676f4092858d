package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// ErrInvalidCriteria tags request-validation failures.  Handlers match it
// with errors.Is and translate it into a 400; it is raised before any
// gateway query is issued, so an invalid request never reads the store.
var ErrInvalidCriteria = errors.New("invalid search criteria")

// Criteria is one itinerary search request.  The departure date is a
// calendar day; any time-of-day component is ignored.
type Criteria struct {
	OriginAirportID      uint64
	DestinationAirportID uint64
	DepartureDate        time.Time
	SeatClass            model.SeatClass
	PassengerCount       int
	IncludeTransits      bool
}

// Validate checks the criteria against the request contract.  The seat
// class must already be canonical here; alias resolution happens at the
// input boundary (model.ParseSeatClass), never inside the core.
func (c Criteria) Validate() error {
	if c.OriginAirportID == 0 {
		return fmt.Errorf("%w: origin airport id is required", ErrInvalidCriteria)
	}
	if c.DestinationAirportID == 0 {
		return fmt.Errorf("%w: destination airport id is required", ErrInvalidCriteria)
	}
	if c.DepartureDate.IsZero() {
		return fmt.Errorf("%w: departure date is required", ErrInvalidCriteria)
	}
	switch c.SeatClass {
	case model.SeatClassFirst, model.SeatClassBusiness, model.SeatClassEconomy:
	default:
		return fmt.Errorf("%w: unrecognized seat class %q", ErrInvalidCriteria, string(c.SeatClass))
	}
	if c.PassengerCount < 1 {
		return fmt.Errorf("%w: passenger count must be at least 1", ErrInvalidCriteria)
	}
	return nil
}

// dayWindow returns the inclusive bounds of the search day in UTC: start of
// day and start of day + 1 day - 1 minute.  A flight departing at 23:59 is
// inside the window; one departing at the next midnight is not.
func (c Criteria) dayWindow() (from, to time.Time) {
	y, m, d := c.DepartureDate.Date()
	from = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 0, 1).Add(-time.Minute)
	return from, to
}
