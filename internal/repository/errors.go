// Package repository is the read-only gateway to the flight schedule store.
// This file defines sentinel errors shared by the repositories so that
// higher layers can distinguish failure scenarios.  A missing airport is a
// referential gap (handlers translate it into 404) and must never be
// collapsed into an empty search result, which is a successful response.
package repository

import "errors"

// ErrFlightNotFound is returned when a flight lookup by id or number
// matches no row.
var ErrFlightNotFound = errors.New("flight not found")

// ErrAirportNotFound is returned when an airport id or code does not
// correspond to a stored airport.
var ErrAirportNotFound = errors.New("airport not found")
