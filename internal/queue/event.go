// Package queue defines message payloads exchanged over the message broker
// and the background consumer that drains them.
package queue

// SearchPerformedEvent is published after every successful itinerary
// search.  It carries enough for downstream consumers to log or feed
// analytics without querying the schedule store.  Results themselves are
// never included: search output is not persisted anywhere.
type SearchPerformedEvent struct {
	OriginAirportID      uint64 `json:"origin_airport_id"`
	DestinationAirportID uint64 `json:"destination_airport_id"`
	DepartureDate        string `json:"departure_date"`
	SeatClass            string `json:"seat_class"`
	PassengerCount       int    `json:"passenger_count"`
	IncludeTransits      bool   `json:"include_transits"`
	DirectCount          int    `json:"direct_count"`
	TransitCount         int    `json:"transit_count"`
	SearchedAt           string `json:"searched_at"`
}
