package search

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
	"github.com/iliyamo/flight-itinerary-search/internal/repository"
)

// --- fakes -----------------------------------------------------------------

// fakeFlightStore mimics the gateway contract: origin/destination/status
// filtering and the departure lower bound happen "server-side", ordered by
// departure time.
type fakeFlightStore struct {
	flights []model.Flight
}

func (s *fakeFlightStore) FindAvailableDirect(_ context.Context, originID uint64, destinationID *uint64, departureFrom time.Time) ([]model.Flight, error) {
	searchable := map[model.FlightStatus]bool{}
	for _, st := range model.SearchableStatuses {
		searchable[st] = true
	}
	out := []model.Flight{}
	for _, f := range s.flights {
		if f.Origin.ID != originID {
			continue
		}
		if destinationID != nil && f.Destination.ID != *destinationID {
			continue
		}
		if f.Departure.Before(departureFrom) {
			continue
		}
		if !searchable[f.Status] {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Departure.Before(out[j].Departure) })
	return out, nil
}

type failingFlightStore struct {
	err error
}

func (s *failingFlightStore) FindAvailableDirect(context.Context, uint64, *uint64, time.Time) ([]model.Flight, error) {
	return nil, s.err
}

type fakeAirportStore struct {
	airports map[uint64]model.Airport
}

func (s *fakeAirportStore) GetByID(_ context.Context, id uint64) (*model.Airport, error) {
	a, ok := s.airports[id]
	if !ok {
		return nil, repository.ErrAirportNotFound
	}
	return &a, nil
}

// --- fixtures --------------------------------------------------------------

var (
	jfk = model.Airport{ID: 1, Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA", TimeZone: "America/New_York"}
	lhr = model.Airport{ID: 2, Code: "LHR", Name: "Heathrow", City: "London", Country: "UK", TimeZone: "Europe/London"}
	cdg = model.Airport{ID: 3, Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", TimeZone: "Europe/Paris"}
)

func ts(day, hour, min int) time.Time {
	return time.Date(2024, 6, day, hour, min, 0, 0, time.UTC)
}

// flight builds a scheduled economy-heavy test flight.
func flight(id uint64, number string, origin, dest model.Airport, dep, arr time.Time, economySeats int) model.Flight {
	return model.Flight{
		ID:          id,
		Number:      number,
		Origin:      origin,
		Destination: dest,
		Departure:   dep,
		Arrival:     arr,
		Status:      model.StatusScheduled,
		DistanceKm:  1000,
		Airplane:    model.Airplane{ID: 1, Model: "A350-900", RegistrationNumber: "N350TL"},

		FirstClassPriceCents:    120000,
		BusinessClassPriceCents: 60000,
		EconomyClassPriceCents:  25000,
		FirstClassSeats:         4,
		BusinessClassSeats:      12,
		EconomyClassSeats:       economySeats,
	}
}

func economyCriteria() Criteria {
	return Criteria{
		OriginAirportID:      jfk.ID,
		DestinationAirportID: lhr.ID,
		DepartureDate:        ts(1, 0, 0),
		SeatClass:            model.SeatClassEconomy,
		PassengerCount:       1,
		IncludeTransits:      true,
	}
}

func newTestSearcher(flights []model.Flight, cfg Config) *Searcher {
	airports := &fakeAirportStore{airports: map[uint64]model.Airport{
		jfk.ID: jfk, lhr.ID: lhr, cdg.ID: cdg,
	}}
	return NewSearcher(&fakeFlightStore{flights: flights}, airports, cfg)
}

// --- scenarios -------------------------------------------------------------

func TestSearch_SingleDirectFlight(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL123", jfk, lhr, ts(1, 10, 0), ts(1, 18, 0), 150),
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	require.Len(t, res.DirectFlights, 1)
	assert.Empty(t, res.TransitFlights)
	assert.Equal(t, 1, res.TotalDirectFlights)
	assert.Equal(t, 0, res.TotalTransitFlights)
	assert.Equal(t, "Found 1 direct flights", res.SearchSummary)

	d := res.DirectFlights[0]
	assert.Equal(t, "TL123", d.FlightNumber)
	assert.Equal(t, 480, d.DurationMinutes)
	assert.Equal(t, int64(25000), d.PriceCents)
	assert.Equal(t, 250.0, d.Price)
	assert.Equal(t, 150, d.AvailableSeats)
	assert.Equal(t, 150, d.Cabins.EconomyClassSeats)
	assert.Equal(t, 4, d.Cabins.FirstClassSeats)
}

func TestSearch_OneStopConnection(t *testing.T) {
	// TL123 arrives CDG 14:00; TL456 departs 90 minutes later.
	s := newTestSearcher([]model.Flight{
		flight(1, "TL123", jfk, cdg, ts(1, 10, 0), ts(1, 14, 0), 150),
		flight(2, "TL456", cdg, lhr, ts(1, 15, 30), ts(1, 17, 0), 80),
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	assert.Empty(t, res.DirectFlights)
	require.Len(t, res.TransitFlights, 1)
	assert.Equal(t, "Found 1 transit flight options", res.SearchSummary)

	it := res.TransitFlights[0]
	assert.Equal(t, 1, it.NumberOfStops)
	assert.Equal(t, "JFK → CDG → LHR", it.RouteSummary)
	require.Len(t, it.TransitAirports, 1)
	assert.Equal(t, "CDG", it.TransitAirports[0].Code)
	assert.Equal(t, []int{90}, it.ConnectionMinutes)
	assert.Equal(t, 90, it.TotalConnectionMinutes)
	// overall duration spans first departure to last arrival
	assert.Equal(t, 7*60, it.TotalDurationMinutes)
	assert.Equal(t, 2000, it.TotalDistanceKm)
}

func TestSearch_ConnectionBelowMinimumRejected(t *testing.T) {
	// Only 30 minutes between arrival and onward departure.
	s := newTestSearcher([]model.Flight{
		flight(1, "TL123", jfk, cdg, ts(1, 10, 0), ts(1, 14, 0), 150),
		flight(2, "TL456", cdg, lhr, ts(1, 14, 30), ts(1, 16, 0), 80),
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	assert.Empty(t, res.DirectFlights)
	assert.Empty(t, res.TransitFlights)
	assert.Equal(t, "No flights found for the specified criteria", res.SearchSummary)
}

func TestSearch_PassengerCountExcludesScarceFlights(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL123", jfk, lhr, ts(1, 10, 0), ts(1, 18, 0), 2),
		flight(2, "TL200", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 2),
		flight(3, "TL201", cdg, lhr, ts(1, 14, 0), ts(1, 15, 30), 100),
	}, Config{})

	crit := economyCriteria()
	crit.PassengerCount = 3

	res, err := s.Search(context.Background(), crit)
	require.NoError(t, err)

	assert.Empty(t, res.DirectFlights, "2 economy seats cannot carry 3 passengers")
	assert.Empty(t, res.TransitFlights, "the scarce first leg must exclude the whole pairing")
}

func TestSearch_DirectAndTransitCoexist(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL123", jfk, lhr, ts(1, 9, 0), ts(1, 17, 0), 150),
		flight(2, "TL200", jfk, cdg, ts(1, 10, 0), ts(1, 14, 0), 150),
		flight(3, "AF456", cdg, lhr, ts(1, 15, 30), ts(1, 17, 0), 80),
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	assert.Len(t, res.DirectFlights, 1)
	assert.Len(t, res.TransitFlights, 1)
	assert.Equal(t, "Found 1 direct flights and 1 transit flight options", res.SearchSummary)
}

func TestSearch_IncludeTransitsFalseSkipsConnections(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL200", jfk, cdg, ts(1, 10, 0), ts(1, 14, 0), 150),
		flight(2, "TL201", cdg, lhr, ts(1, 15, 30), ts(1, 17, 0), 80),
	}, Config{})

	crit := economyCriteria()
	crit.IncludeTransits = false

	res, err := s.Search(context.Background(), crit)
	require.NoError(t, err)
	assert.Empty(t, res.DirectFlights)
	assert.Empty(t, res.TransitFlights)
}

func TestSearch_UnknownAirportIsNotFound(t *testing.T) {
	s := newTestSearcher(nil, Config{})

	crit := economyCriteria()
	crit.DestinationAirportID = 99

	_, err := s.Search(context.Background(), crit)
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrAirportNotFound)
}

func TestSearch_GatewayFailureSurfaces(t *testing.T) {
	storeErr := errors.New("connection reset")
	airports := &fakeAirportStore{airports: map[uint64]model.Airport{jfk.ID: jfk, lhr.ID: lhr}}
	s := NewSearcher(&failingFlightStore{err: storeErr}, airports, Config{})

	_, err := s.Search(context.Background(), economyCriteria())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr, "lookup failures must never collapse into an empty result")
}

func TestSearch_NonSearchableStatusesExcluded(t *testing.T) {
	cancelled := flight(1, "TL123", jfk, lhr, ts(1, 10, 0), ts(1, 18, 0), 150)
	cancelled.Status = model.StatusCancelled
	delayed := flight(2, "TL124", jfk, lhr, ts(1, 12, 0), ts(1, 20, 0), 150)
	delayed.Status = model.StatusDelayed

	s := newTestSearcher([]model.Flight{cancelled, delayed}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	require.Len(t, res.DirectFlights, 1)
	assert.Equal(t, "TL124", res.DirectFlights[0].FlightNumber)
}

func TestSearch_DayWindowBoundaries(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL301", jfk, lhr, ts(1, 23, 59), ts(2, 7, 0), 150),
		flight(2, "TL302", jfk, lhr, ts(2, 0, 0), ts(2, 8, 0), 150),
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	require.Len(t, res.DirectFlights, 1, "23:59 departure is inside the day; next midnight is not")
	assert.Equal(t, "TL301", res.DirectFlights[0].FlightNumber)
}

func TestSearch_Idempotent(t *testing.T) {
	flights := []model.Flight{
		flight(1, "TL123", jfk, lhr, ts(1, 9, 0), ts(1, 17, 0), 150),
		flight(2, "TL200", jfk, cdg, ts(1, 10, 0), ts(1, 14, 0), 150),
		flight(3, "AF456", cdg, lhr, ts(1, 15, 30), ts(1, 17, 0), 80),
	}
	s := newTestSearcher(flights, Config{})

	first, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	second, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
