package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// Connection candidate generation is an explicit two-phase breadth-first
// expansion over the flight graph (flights as edges keyed by airport).
// Phase one builds the frontier of first legs departing the origin; phase
// two completes each frontier entry with onward legs into the destination.
// Depth is fixed at one stop; extending to k stops means iterating the
// expansion, not rewriting it.

// legPair is one validated (first leg, second leg) candidate.
type legPair [2]model.Flight

// findConnections produces all valid one-stop itineraries for the criteria.
// No ranking is imposed; pairs come back in discovery order (first legs by
// departure time, onward legs likewise).
func (s *Searcher) findConnections(ctx context.Context, crit Criteria) ([]legPair, error) {
	from, to := crit.dayWindow()

	// Phase one: first legs out of the origin on the search day, any
	// destination.  Legs that already reach the final destination are
	// direct flights and handled by findDirect.
	candidates, err := s.flights.FindAvailableDirect(ctx, crit.OriginAirportID, nil, from)
	if err != nil {
		return nil, fmt.Errorf("first leg lookup: %w", err)
	}
	frontier := make([]model.Flight, 0, len(candidates))
	for _, f := range candidates {
		if f.Departure.After(to) {
			continue
		}
		if f.Destination.ID == crit.DestinationAirportID {
			continue
		}
		if !f.HasSeatsFor(crit.SeatClass, crit.PassengerCount) {
			continue
		}
		frontier = append(frontier, f)
	}

	// Phase two: complete every frontier entry.  Each lookup is
	// independent of the others, so they may fan out concurrently.
	if s.cfg.ConcurrentLegLookups {
		return s.completeFrontierConcurrent(ctx, crit, frontier)
	}
	pairs := []legPair{}
	for i := range frontier {
		completed, err := s.completeLeg(ctx, crit, &frontier[i])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, completed...)
	}
	return pairs, nil
}

// completeLeg finds onward legs from the first leg's destination into the
// search destination inside the connection window.
func (s *Searcher) completeLeg(ctx context.Context, crit Criteria, first *model.Flight) ([]legPair, error) {
	earliest := first.Arrival.Add(s.cfg.MinConnection)
	latest := first.Arrival.Add(s.cfg.MaxConnection)
	dest := crit.DestinationAirportID

	onward, err := s.flights.FindAvailableDirect(ctx, first.Destination.ID, &dest, earliest)
	if err != nil {
		return nil, fmt.Errorf("second leg lookup from %s: %w", first.Destination.Code, err)
	}
	pairs := make([]legPair, 0, len(onward))
	for _, second := range onward {
		if !second.Departure.Before(latest) {
			continue
		}
		if !second.HasSeatsFor(crit.SeatClass, crit.PassengerCount) {
			continue
		}
		// The window query above is only a pre-filter; this predicate is
		// the authoritative connection check.
		if !first.CanConnectTo(&second, s.cfg.MinConnection) {
			continue
		}
		pairs = append(pairs, legPair{*first, second})
	}
	return pairs, nil
}

// completeFrontierConcurrent runs phase two with one worker per frontier
// entry.  Results merge back in frontier order, so the output is identical
// to the sequential path.
func (s *Searcher) completeFrontierConcurrent(ctx context.Context, crit Criteria, frontier []model.Flight) ([]legPair, error) {
	results := make([][]legPair, len(frontier))
	errs := make([]error, len(frontier))

	var wg sync.WaitGroup
	for i := range frontier {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.completeLeg(ctx, crit, &frontier[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	pairs := []legPair{}
	for _, r := range results {
		pairs = append(pairs, r...)
	}
	return pairs, nil
}
