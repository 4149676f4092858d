package model

import (
	"fmt"
	"strings"
)

// FlightStatus is the operational state of a flight.  The state machine
// (SCHEDULED -> BOARDING -> DEPARTED -> IN_AIR -> LANDED, with DELAYED and
// CANCELLED reachable from SCHEDULED/BOARDING) is owned by the external
// flight-operations subsystem; this service only ever reads the status and
// never transitions it.
type FlightStatus string

const (
	StatusScheduled FlightStatus = "SCHEDULED"
	StatusBoarding  FlightStatus = "BOARDING"
	StatusDeparted  FlightStatus = "DEPARTED"
	StatusInAir     FlightStatus = "IN_AIR"
	StatusLanded    FlightStatus = "LANDED"
	StatusDelayed   FlightStatus = "DELAYED"
	StatusCancelled FlightStatus = "CANCELLED"
)

// SearchableStatuses are the only statuses eligible for itinerary search.
// Flights in any other state are never offered to passengers.
var SearchableStatuses = []FlightStatus{StatusScheduled, StatusBoarding, StatusDelayed}

var flightStatuses = map[string]FlightStatus{
	"SCHEDULED": StatusScheduled,
	"BOARDING":  StatusBoarding,
	"DEPARTED":  StatusDeparted,
	"IN_AIR":    StatusInAir,
	"LANDED":    StatusLanded,
	"DELAYED":   StatusDelayed,
	"CANCELLED": StatusCancelled,
}

// ParseFlightStatus resolves a status token case-insensitively.  Unknown
// tokens are rejected so a typo in an ops request cannot silently match
// nothing.
func ParseFlightStatus(s string) (FlightStatus, error) {
	st, ok := flightStatuses[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("invalid flight status %q", s)
	}
	return st, nil
}
