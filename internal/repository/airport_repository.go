package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/flight-itinerary-search/internal/model"
)

// AirportRepo provides read-only access to airports.
type AirportRepo struct {
	db *sql.DB
}

// NewAirportRepo constructs an AirportRepo with the given DB handle.
func NewAirportRepo(db *sql.DB) *AirportRepo {
	return &AirportRepo{db: db}
}

const airportColumns = `id, code, name, city, country, latitude, longitude, time_zone`

func scanAirport(s scanner) (model.Airport, error) {
	var a model.Airport
	err := s.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.Country, &a.Latitude, &a.Longitude, &a.TimeZone)
	return a, err
}

// GetByID retrieves an airport by primary key.  Returns ErrAirportNotFound
// when the id does not exist; callers rely on that to distinguish a
// referential gap from an empty search result.
func (r *AirportRepo) GetByID(ctx context.Context, id uint64) (*model.Airport, error) {
	const q = `SELECT ` + airportColumns + ` FROM airports WHERE id = ?`
	a, err := scanAirport(r.db.QueryRowContext(ctx, q, id))
	if err == sql.ErrNoRows {
		return nil, ErrAirportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByCode retrieves an airport by its unique 3-letter IATA code.
func (r *AirportRepo) GetByCode(ctx context.Context, code string) (*model.Airport, error) {
	const q = `SELECT ` + airportColumns + ` FROM airports WHERE code = ?`
	a, err := scanAirport(r.db.QueryRowContext(ctx, q, code))
	if err == sql.ErrNoRows {
		return nil, ErrAirportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all airports ordered by code.
func (r *AirportRepo) List(ctx context.Context) ([]model.Airport, error) {
	const q = `SELECT ` + airportColumns + ` FROM airports ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Airport{}
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
