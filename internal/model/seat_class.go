package model // package model defines the domain entities shared across the service

import (
	"fmt"
	"strings"
)

// SeatClass identifies one of the three cabin classes sold on a flight.
// Each class has an independent price and seat count on every flight.
type SeatClass string

const (
	SeatClassFirst    SeatClass = "FIRST_CLASS"
	SeatClassBusiness SeatClass = "BUSINESS_CLASS"
	SeatClassEconomy  SeatClass = "ECONOMY_CLASS"
)

// seatClassAliases maps every accepted input token to its canonical class.
// Both the canonical names and the short aliases FIRST, BUSINESS and
// ECONOMY are accepted on input.
var seatClassAliases = map[string]SeatClass{
	"FIRST_CLASS":    SeatClassFirst,
	"FIRST":          SeatClassFirst,
	"BUSINESS_CLASS": SeatClassBusiness,
	"BUSINESS":       SeatClassBusiness,
	"ECONOMY_CLASS":  SeatClassEconomy,
	"ECONOMY":        SeatClassEconomy,
}

// ParseSeatClass resolves a user supplied token into a canonical SeatClass.
// Matching is case-insensitive and surrounding whitespace is ignored.  An
// unresolvable token is an error; callers must never fall back to a default
// class.
func ParseSeatClass(s string) (SeatClass, error) {
	token := strings.ToUpper(strings.TrimSpace(s))
	if token == "" {
		return "", fmt.Errorf("seat class is required")
	}
	sc, ok := seatClassAliases[token]
	if !ok {
		return "", fmt.Errorf("invalid seat class %q: valid values are FIRST_CLASS, BUSINESS_CLASS, ECONOMY_CLASS (or FIRST, BUSINESS, ECONOMY)", s)
	}
	return sc, nil
}
