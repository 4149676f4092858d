// Package search implements itinerary search over a flight schedule: direct
// matches plus one-stop connecting itineraries honoring seat-class capacity
// and a minimum/maximum connection-time window.  The package is stateless
// and read-only with respect to the store; every search owns its own
// working set and results are immutable value objects built once.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// FlightStore is the read-only flight lookup capability the searcher
// consumes.  destinationID may be nil to leave the destination
// unconstrained (first-leg discovery); implementations must filter to
// searchable statuses server-side.
type FlightStore interface {
	FindAvailableDirect(ctx context.Context, originID uint64, destinationID *uint64, departureFrom time.Time) ([]model.Flight, error)
}

// AirportStore resolves airport ids.  A missing id must surface as an
// error distinct from an empty flight list.
type AirportStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Airport, error)
}

// Default connection-time window.  A connection shorter than the minimum is
// not walkable; one longer than the maximum is not offered.
const (
	DefaultMinConnection = 60 * time.Minute
	DefaultMaxConnection = 360 * time.Minute
)

// Config tunes the connection candidate generator.  Zero durations fall
// back to the defaults above.
type Config struct {
	MinConnection time.Duration
	MaxConnection time.Duration
	// ConcurrentLegLookups dispatches one second-leg lookup worker per
	// first-leg candidate.  Purely an optimization: output is identical
	// to the sequential path.
	ConcurrentLegLookups bool
}

// Searcher is the search orchestrator.
type Searcher struct {
	flights  FlightStore
	airports AirportStore
	cfg      Config
}

// NewSearcher constructs a Searcher over the given stores.
func NewSearcher(flights FlightStore, airports AirportStore, cfg Config) *Searcher {
	if cfg.MinConnection <= 0 {
		cfg.MinConnection = DefaultMinConnection
	}
	if cfg.MaxConnection <= 0 {
		cfg.MaxConnection = DefaultMaxConnection
	}
	return &Searcher{flights: flights, airports: airports, cfg: cfg}
}

// Result is the externally visible outcome of one search.
type Result struct {
	DirectFlights       []DirectItinerary  `json:"direct_flights"`
	TransitFlights      []TransitItinerary `json:"transit_flights"`
	TotalDirectFlights  int                `json:"total_direct_flights"`
	TotalTransitFlights int                `json:"total_transit_flights"`
	SearchSummary       string             `json:"search_summary"`
}

// Search validates the criteria, resolves both airports, then runs the
// direct match finder and, when requested, the connection candidate
// generator.  Direct and transit results are not mutually exclusive: a
// city pair served nonstop can also appear with a one-stop option.
func (s *Searcher) Search(ctx context.Context, crit Criteria) (*Result, error) {
	if err := crit.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.airports.GetByID(ctx, crit.OriginAirportID); err != nil {
		return nil, fmt.Errorf("origin airport %d: %w", crit.OriginAirportID, err)
	}
	if _, err := s.airports.GetByID(ctx, crit.DestinationAirportID); err != nil {
		return nil, fmt.Errorf("destination airport %d: %w", crit.DestinationAirportID, err)
	}

	directLegs, err := s.findDirect(ctx, crit)
	if err != nil {
		return nil, err
	}
	direct := make([]DirectItinerary, 0, len(directLegs))
	for _, f := range directLegs {
		direct = append(direct, newDirectItinerary(f, crit.SeatClass))
	}

	transit := []TransitItinerary{}
	if crit.IncludeTransits {
		pairs, err := s.findConnections(ctx, crit)
		if err != nil {
			return nil, err
		}
		for _, p := range pairs {
			transit = append(transit, newTransitItinerary(p[:], crit.SeatClass))
		}
	}

	return &Result{
		DirectFlights:       direct,
		TransitFlights:      transit,
		TotalDirectFlights:  len(direct),
		TotalTransitFlights: len(transit),
		SearchSummary:       buildSummary(len(direct), len(transit)),
	}, nil
}

func buildSummary(direct, transit int) string {
	switch {
	case direct > 0 && transit > 0:
		return fmt.Sprintf("Found %d direct flights and %d transit flight options", direct, transit)
	case direct > 0:
		return fmt.Sprintf("Found %d direct flights", direct)
	case transit > 0:
		return fmt.Sprintf("Found %d transit flight options", transit)
	default:
		return "No flights found for the specified criteria"
	}
}
