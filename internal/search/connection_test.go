package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// connection window edges: first leg arrives CDG at 12:00, window 60..360
// minutes, both bounds strict.
func TestConnectionWindowBounds(t *testing.T) {
	firstLeg := flight(1, "TL100", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 100)

	tests := []struct {
		name      string
		departure time.Time
		wantPair  bool
	}{
		{"gap of 30 minutes", ts(1, 12, 30), false},
		{"gap of exactly 60 minutes", ts(1, 13, 0), false},
		{"gap of 61 minutes", ts(1, 13, 1), true},
		{"gap of 359 minutes", ts(1, 17, 59), true},
		{"gap of exactly 360 minutes", ts(1, 18, 0), false},
		{"gap of 420 minutes", ts(1, 19, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secondLeg := flight(2, "TL101", cdg, lhr, tt.departure, tt.departure.Add(90*time.Minute), 100)
			s := newTestSearcher([]model.Flight{firstLeg, secondLeg}, Config{})

			res, err := s.Search(context.Background(), economyCriteria())
			require.NoError(t, err)
			if tt.wantPair {
				assert.Len(t, res.TransitFlights, 1)
			} else {
				assert.Empty(t, res.TransitFlights)
			}
		})
	}
}

func TestConnectionWindowIsConfigurable(t *testing.T) {
	firstLeg := flight(1, "TL100", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 100)
	secondLeg := flight(2, "TL101", cdg, lhr, ts(1, 12, 45), ts(1, 14, 0), 100) // 45 minute gap

	strict := newTestSearcher([]model.Flight{firstLeg, secondLeg}, Config{})
	res, err := strict.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	assert.Empty(t, res.TransitFlights)

	relaxed := newTestSearcher([]model.Flight{firstLeg, secondLeg}, Config{
		MinConnection: 30 * time.Minute,
		MaxConnection: 2 * time.Hour,
	})
	res, err = relaxed.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	assert.Len(t, res.TransitFlights, 1)
}

func TestConnectionAggregates(t *testing.T) {
	firstLeg := flight(1, "TL100", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 5)
	firstLeg.EconomyClassPriceCents = 19999
	secondLeg := flight(2, "AF200", cdg, lhr, ts(1, 14, 0), ts(1, 15, 30), 2)
	secondLeg.EconomyClassPriceCents = 12551
	secondLeg.DistanceKm = 350

	s := newTestSearcher([]model.Flight{firstLeg, secondLeg}, Config{})
	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	require.Len(t, res.TransitFlights, 1)

	it := res.TransitFlights[0]
	// price is the exact integer sum of segment fares
	assert.Equal(t, int64(32550), it.TotalPriceCents)
	assert.Equal(t, 325.50, it.TotalPrice)
	// seats are bounded by the most constrained leg
	assert.Equal(t, 2, it.MinAvailableSeats)
	assert.Equal(t, 1350, it.TotalDistanceKm)
	assert.Equal(t, "TL, AF", it.CarrierSummary)
}

func TestConnectionZeroSeatSegmentExcludesPairing(t *testing.T) {
	firstLeg := flight(1, "TL100", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 100)
	soldOut := flight(2, "TL101", cdg, lhr, ts(1, 14, 0), ts(1, 15, 30), 0)

	s := newTestSearcher([]model.Flight{firstLeg, soldOut}, Config{})
	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	assert.Empty(t, res.TransitFlights, "a zero-seat segment disqualifies every pairing through it")
}

func TestConnectionMultipleOnwardLegs(t *testing.T) {
	s := newTestSearcher([]model.Flight{
		flight(1, "TL100", jfk, cdg, ts(1, 8, 0), ts(1, 12, 0), 100),
		flight(2, "TL101", cdg, lhr, ts(1, 13, 30), ts(1, 15, 0), 100),
		flight(3, "TL102", cdg, lhr, ts(1, 16, 0), ts(1, 17, 30), 100),
		flight(4, "TL103", cdg, lhr, ts(1, 19, 0), ts(1, 20, 30), 100), // 420 min gap, outside window
	}, Config{})

	res, err := s.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	require.Len(t, res.TransitFlights, 2)
	assert.Equal(t, "TL101", res.TransitFlights[0].Segments[1].FlightNumber)
	assert.Equal(t, "TL102", res.TransitFlights[1].Segments[1].FlightNumber)
}

func TestConcurrentLookupsMatchSequential(t *testing.T) {
	flights := []model.Flight{
		flight(1, "TL100", jfk, cdg, ts(1, 7, 0), ts(1, 11, 0), 100),
		flight(2, "TL110", jfk, cdg, ts(1, 9, 0), ts(1, 13, 0), 100),
		flight(3, "TL101", cdg, lhr, ts(1, 12, 30), ts(1, 14, 0), 100),
		flight(4, "TL102", cdg, lhr, ts(1, 14, 30), ts(1, 16, 0), 100),
		flight(5, "TL103", cdg, lhr, ts(1, 16, 30), ts(1, 18, 0), 100),
	}

	sequential := newTestSearcher(flights, Config{})
	concurrent := newTestSearcher(flights, Config{ConcurrentLegLookups: true})

	want, err := sequential.Search(context.Background(), economyCriteria())
	require.NoError(t, err)
	got, err := concurrent.Search(context.Background(), economyCriteria())
	require.NoError(t, err)

	assert.Equal(t, want, got, "concurrency is an optimization, not a behavior change")
}
