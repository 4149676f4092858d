package search

import (
	"context"
	"fmt"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// findDirect returns every flight matching origin, destination and the
// search day with enough seats in the requested class.  The gateway filters
// origin/destination/status and the lower day bound; the upper day bound
// and the seat check are applied here.  An unmatched search is simply an
// empty list, never an error.
func (s *Searcher) findDirect(ctx context.Context, crit Criteria) ([]model.Flight, error) {
	from, to := crit.dayWindow()
	dest := crit.DestinationAirportID
	flights, err := s.flights.FindAvailableDirect(ctx, crit.OriginAirportID, &dest, from)
	if err != nil {
		return nil, fmt.Errorf("direct flight lookup: %w", err)
	}
	matched := make([]model.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Departure.After(to) {
			continue
		}
		if !f.HasSeatsFor(crit.SeatClass, crit.PassengerCount) {
			continue
		}
		matched = append(matched, f)
	}
	return matched, nil
}
