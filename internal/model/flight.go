package model

import "time"

// Flight is one scheduled leg between two airports.  Prices are stored as
// integer cents per class so per-itinerary aggregation stays exact.  Seat
// counts are the seats still available per class; they are decremented by
// the booking subsystem, never by search.
//
// Invariant (enforced by the storage subsystem): ArrivalTime is strictly
// after DepartureTime and no available-seat count exceeds the airplane's
// capacity for that class.
type Flight struct {
	ID          uint64       `json:"id"`
	Number      string       `json:"flight_number"` // unique, airline prefix + digits (e.g. "TL123")
	Airplane    Airplane     `json:"airplane"`
	Origin      Airport      `json:"origin_airport"`
	Destination Airport      `json:"destination_airport"`
	Departure   time.Time    `json:"departure_time"`
	Arrival     time.Time    `json:"arrival_time"`
	Status      FlightStatus `json:"status"`
	DistanceKm  int          `json:"distance_km"`

	FirstClassPriceCents    int64 `json:"first_class_price_cents"`
	BusinessClassPriceCents int64 `json:"business_class_price_cents"`
	EconomyClassPriceCents  int64 `json:"economy_class_price_cents"`

	FirstClassSeats    int `json:"first_class_available_seats"`
	BusinessClassSeats int `json:"business_class_available_seats"`
	EconomyClassSeats  int `json:"economy_class_available_seats"`
}

// AvailableSeats returns the remaining seats in the given class.  The class
// has been validated at the input boundary, so the switch is exhaustive;
// the zero return for an impossible value keeps the method total.
func (f *Flight) AvailableSeats(class SeatClass) int {
	switch class {
	case SeatClassFirst:
		return f.FirstClassSeats
	case SeatClassBusiness:
		return f.BusinessClassSeats
	case SeatClassEconomy:
		return f.EconomyClassSeats
	}
	return 0
}

// PriceCents returns the fare in cents for the given class.
func (f *Flight) PriceCents(class SeatClass) int64 {
	switch class {
	case SeatClassFirst:
		return f.FirstClassPriceCents
	case SeatClassBusiness:
		return f.BusinessClassPriceCents
	case SeatClassEconomy:
		return f.EconomyClassPriceCents
	}
	return 0
}

// HasSeatsFor reports whether the flight can carry the requested number of
// passengers in the given class.
func (f *Flight) HasSeatsFor(class SeatClass, passengers int) bool {
	return f.AvailableSeats(class) >= passengers
}

// DurationMinutes is the scheduled block time of the leg in whole minutes.
func (f *Flight) DurationMinutes() int {
	return int(f.Arrival.Sub(f.Departure) / time.Minute)
}

// CanConnectTo reports whether next is a valid onward leg from this flight:
// the legs must chain through the same airport and next must depart strictly
// later than this flight's arrival plus the minimum connection time.
func (f *Flight) CanConnectTo(next *Flight, minConnection time.Duration) bool {
	if f.Destination.ID != next.Origin.ID {
		return false
	}
	return next.Departure.After(f.Arrival.Add(minConnection))
}
