package search

import (
	"strings"
	"time"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// routeSeparator joins airport codes in a route summary, e.g.
// "JFK → CDG → LHR".
const routeSeparator = " → "

// CabinAvailability snapshots price and remaining seats for all three
// classes of a segment, independent of the class that was searched.
type CabinAvailability struct {
	FirstClassPriceCents    int64 `json:"first_class_price_cents"`
	BusinessClassPriceCents int64 `json:"business_class_price_cents"`
	EconomyClassPriceCents  int64 `json:"economy_class_price_cents"`
	FirstClassSeats         int   `json:"first_class_available_seats"`
	BusinessClassSeats      int   `json:"business_class_available_seats"`
	EconomyClassSeats       int   `json:"economy_class_available_seats"`
}

// DirectItinerary is a single flight enriched for the requested class.  It
// doubles as the segment shape inside a TransitItinerary.  Itineraries are
// built once by their constructor and never mutated afterwards, so derived
// fields can never go stale against the segments they were computed from.
type DirectItinerary struct {
	FlightID             uint64             `json:"flight_id"`
	FlightNumber         string             `json:"flight_number"`
	Origin               model.Airport      `json:"origin_airport"`
	Destination          model.Airport      `json:"destination_airport"`
	Departure            time.Time          `json:"departure_time"`
	Arrival              time.Time          `json:"arrival_time"`
	DurationMinutes      int                `json:"duration_minutes"`
	Status               model.FlightStatus `json:"status"`
	DistanceKm           int                `json:"distance_km"`
	AirplaneModel        string             `json:"airplane_model"`
	AirplaneRegistration string             `json:"airplane_registration"`
	SeatClass            model.SeatClass    `json:"seat_class"`
	PriceCents           int64              `json:"price_cents"`
	Price                float64            `json:"price"`
	AvailableSeats       int                `json:"available_seats"`
	Cabins               CabinAvailability  `json:"cabins"`
}

func newDirectItinerary(f model.Flight, class model.SeatClass) DirectItinerary {
	cents := f.PriceCents(class)
	return DirectItinerary{
		FlightID:             f.ID,
		FlightNumber:         f.Number,
		Origin:               f.Origin,
		Destination:          f.Destination,
		Departure:            f.Departure,
		Arrival:              f.Arrival,
		DurationMinutes:      f.DurationMinutes(),
		Status:               f.Status,
		DistanceKm:           f.DistanceKm,
		AirplaneModel:        f.Airplane.Model,
		AirplaneRegistration: f.Airplane.RegistrationNumber,
		SeatClass:            class,
		PriceCents:           cents,
		Price:                float64(cents) / 100.0,
		AvailableSeats:       f.AvailableSeats(class),
		Cabins: CabinAvailability{
			FirstClassPriceCents:    f.FirstClassPriceCents,
			BusinessClassPriceCents: f.BusinessClassPriceCents,
			EconomyClassPriceCents:  f.EconomyClassPriceCents,
			FirstClassSeats:         f.FirstClassSeats,
			BusinessClassSeats:      f.BusinessClassSeats,
			EconomyClassSeats:       f.EconomyClassSeats,
		},
	}
}

// TransitItinerary is an ordered chain of flight segments through one or
// more intermediate airports.  Total duration spans first departure to last
// arrival, which implicitly includes connection time; it is NOT the sum of
// segment durations.
type TransitItinerary struct {
	Segments               []DirectItinerary `json:"segments"`
	Origin                 model.Airport     `json:"origin_airport"`
	Destination            model.Airport     `json:"destination_airport"`
	Departure              time.Time         `json:"departure_time"`
	Arrival                time.Time         `json:"arrival_time"`
	TotalDurationMinutes   int               `json:"total_duration_minutes"`
	TotalDistanceKm        int               `json:"total_distance_km"`
	NumberOfStops          int               `json:"number_of_stops"`
	TransitAirports        []model.Airport   `json:"transit_airports"`
	ConnectionMinutes      []int             `json:"connection_time_minutes"`
	TotalConnectionMinutes int               `json:"total_connection_time_minutes"`
	SeatClass              model.SeatClass   `json:"seat_class"`
	TotalPriceCents        int64             `json:"total_price_cents"`
	TotalPrice             float64           `json:"total_price"`
	MinAvailableSeats      int               `json:"min_available_seats"`
	RouteSummary           string            `json:"route_summary"`
	CarrierSummary         string            `json:"airlines_summary"`
}

func newTransitItinerary(legs []model.Flight, class model.SeatClass) TransitItinerary {
	first, last := legs[0], legs[len(legs)-1]

	segments := make([]DirectItinerary, 0, len(legs))
	for _, leg := range legs {
		segments = append(segments, newDirectItinerary(leg, class))
	}

	// The itinerary cannot carry more passengers than its most constrained
	// leg; total price is the exact integer sum of segment fares.
	totalCents := int64(0)
	totalDistance := 0
	minSeats := legs[0].AvailableSeats(class)
	for _, leg := range legs {
		totalCents += leg.PriceCents(class)
		totalDistance += leg.DistanceKm
		if seats := leg.AvailableSeats(class); seats < minSeats {
			minSeats = seats
		}
	}

	transits := make([]model.Airport, 0, len(legs)-1)
	connections := make([]int, 0, len(legs)-1)
	totalConnection := 0
	for i := 0; i < len(legs)-1; i++ {
		transits = append(transits, legs[i].Destination)
		gap := int(legs[i+1].Departure.Sub(legs[i].Arrival) / time.Minute)
		connections = append(connections, gap)
		totalConnection += gap
	}

	return TransitItinerary{
		Segments:               segments,
		Origin:                 first.Origin,
		Destination:            last.Destination,
		Departure:              first.Departure,
		Arrival:                last.Arrival,
		TotalDurationMinutes:   int(last.Arrival.Sub(first.Departure) / time.Minute),
		TotalDistanceKm:        totalDistance,
		NumberOfStops:          len(legs) - 1,
		TransitAirports:        transits,
		ConnectionMinutes:      connections,
		TotalConnectionMinutes: totalConnection,
		SeatClass:              class,
		TotalPriceCents:        totalCents,
		TotalPrice:             float64(totalCents) / 100.0,
		MinAvailableSeats:      minSeats,
		RouteSummary:           routeSummary(legs),
		CarrierSummary:         carrierSummary(legs),
	}
}

// routeSummary concatenates every segment's origin code followed by the
// final destination code.
func routeSummary(legs []model.Flight) string {
	codes := make([]string, 0, len(legs)+1)
	for _, leg := range legs {
		codes = append(codes, leg.Origin.Code)
	}
	codes = append(codes, legs[len(legs)-1].Destination.Code)
	return strings.Join(codes, routeSeparator)
}

// carrierSummary joins the distinct airline designators of the segments in
// first-seen order.  The designator is taken as the first two characters of
// the flight number; airlines with one- or three-character codes are
// summarized incorrectly.  Fixing that needs a real carrier-code table.
func carrierSummary(legs []model.Flight) string {
	carriers := make([]string, 0, len(legs))
	seen := map[string]struct{}{}
	for _, leg := range legs {
		code := leg.Number
		if len(code) > 2 {
			code = code[:2]
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		carriers = append(carriers, code)
	}
	return strings.Join(carriers, ", ")
}
