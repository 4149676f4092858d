package repository // repository defines data access for the flight schedule

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"time"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// FlightRepo provides read-only access to flights.  Every query joins the
// origin and destination airports plus the assigned airplane so callers
// always receive fully hydrated rows; flight and seat state is owned and
// mutated elsewhere, this repository never writes.
type FlightRepo struct {
	db *sql.DB
}

// NewFlightRepo constructs a FlightRepo with the given DB handle.
func NewFlightRepo(db *sql.DB) *FlightRepo {
	return &FlightRepo{db: db}
}

// flightColumns is the shared SELECT list for flight queries.  o/d/p alias
// the origin airport, destination airport and airplane joins.
const flightColumns = `
	f.id, f.flight_number, f.departure_time, f.arrival_time, f.status, f.distance_km,
	f.first_class_price_cents, f.business_class_price_cents, f.economy_class_price_cents,
	f.first_class_available_seats, f.business_class_available_seats, f.economy_class_available_seats,
	p.id, p.model, p.registration_number,
	p.first_class_capacity, p.business_class_capacity, p.economy_class_capacity,
	o.id, o.code, o.name, o.city, o.country, o.latitude, o.longitude, o.time_zone,
	d.id, d.code, d.name, d.city, d.country, d.latitude, d.longitude, d.time_zone`

const flightJoins = `
	FROM flights f
	JOIN airplanes p ON p.id = f.airplane_id
	JOIN airports o  ON o.id = f.origin_airport_id
	JOIN airports d  ON d.id = f.destination_airport_id`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanFlight(s scanner) (model.Flight, error) {
	var f model.Flight
	err := s.Scan(
		&f.ID, &f.Number, &f.Departure, &f.Arrival, &f.Status, &f.DistanceKm,
		&f.FirstClassPriceCents, &f.BusinessClassPriceCents, &f.EconomyClassPriceCents,
		&f.FirstClassSeats, &f.BusinessClassSeats, &f.EconomyClassSeats,
		&f.Airplane.ID, &f.Airplane.Model, &f.Airplane.RegistrationNumber,
		&f.Airplane.FirstClassCapacity, &f.Airplane.BusinessClassCapacity, &f.Airplane.EconomyClassCapacity,
		&f.Origin.ID, &f.Origin.Code, &f.Origin.Name, &f.Origin.City, &f.Origin.Country,
		&f.Origin.Latitude, &f.Origin.Longitude, &f.Origin.TimeZone,
		&f.Destination.ID, &f.Destination.Code, &f.Destination.Name, &f.Destination.City, &f.Destination.Country,
		&f.Destination.Latitude, &f.Destination.Longitude, &f.Destination.TimeZone,
	)
	return f, err
}

func collectFlights(rows *sql.Rows) ([]model.Flight, error) {
	defer rows.Close()
	out := []model.Flight{}
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAvailableDirect returns searchable flights departing originID at or
// after departureFrom.  destinationID narrows the search to one destination;
// pass nil to leave the destination unconstrained (first-leg discovery).
// Only flights in a searchable status (SCHEDULED, BOARDING, DELAYED) are
// returned; the status filter lives server-side so ineligible flights never
// cross the wire.  Results are ordered by departure time.
func (r *FlightRepo) FindAvailableDirect(ctx context.Context, originID uint64, destinationID *uint64, departureFrom time.Time) ([]model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + `
	WHERE f.origin_airport_id = ?
	  AND f.departure_time >= ?
	  AND f.status IN ('SCHEDULED', 'BOARDING', 'DELAYED')`
	args := []any{originID, departureFrom}
	if destinationID != nil {
		q += ` AND f.destination_airport_id = ?`
		args = append(args, *destinationID)
	}
	q += ` ORDER BY f.departure_time`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// GetByID retrieves a single flight.  Returns ErrFlightNotFound when no row
// matches.
func (r *FlightRepo) GetByID(ctx context.Context, id uint64) (*model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + ` WHERE f.id = ?`
	f, err := scanFlight(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetByNumber retrieves a flight by its unique flight number.
func (r *FlightRepo) GetByNumber(ctx context.Context, number string) (*model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + ` WHERE f.flight_number = ?`
	f, err := scanFlight(r.db.QueryRowContext(ctx, q, number))
	if err == sql.ErrNoRows {
		return nil, ErrFlightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindByStatus lists all flights currently in the given status.
func (r *FlightRepo) FindByStatus(ctx context.Context, status model.FlightStatus) ([]model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + `
	WHERE f.status = ?
	ORDER BY f.departure_time`
	rows, err := r.db.QueryContext(ctx, q, status)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// FindDeparting lists flights leaving the airport inside [from, to],
// ordered by departure time.  Used by the departure board endpoint.
func (r *FlightRepo) FindDeparting(ctx context.Context, airportID uint64, from, to time.Time) ([]model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + `
	WHERE f.origin_airport_id = ?
	  AND f.departure_time BETWEEN ? AND ?
	ORDER BY f.departure_time`
	rows, err := r.db.QueryContext(ctx, q, airportID, from, to)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}

// FindArriving lists flights arriving at the airport inside [from, to],
// ordered by arrival time.
func (r *FlightRepo) FindArriving(ctx context.Context, airportID uint64, from, to time.Time) ([]model.Flight, error) {
	q := `SELECT` + flightColumns + flightJoins + `
	WHERE f.destination_airport_id = ?
	  AND f.arrival_time BETWEEN ? AND ?
	ORDER BY f.arrival_time`
	rows, err := r.db.QueryContext(ctx, q, airportID, from, to)
	if err != nil {
		return nil, err
	}
	return collectFlights(rows)
}
