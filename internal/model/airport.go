package model

// Airport represents an airport served by the flight schedule.  The
// three-letter IATA code is unique across the table.
//
// Fields:
//  ID        – primary key identifier.
//  Code      – 3-letter IATA code (e.g. "JFK").
//  Name      – full airport name.
//  City      – city the airport serves.
//  Country   – country of the airport.
//  Latitude  – WGS84 latitude of the field.
//  Longitude – WGS84 longitude of the field.
//  TimeZone  – IANA time zone name (e.g. "America/New_York").
type Airport struct {
	ID        uint64  `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	TimeZone  string  `json:"time_zone"`
}
