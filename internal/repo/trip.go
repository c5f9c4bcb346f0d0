package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rnayak/carshare/internal/domain"
)

// TripRepo defines the persistence operations for trips.
// Trips are append-only: no update or delete operations exist.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record with its
	// DB-generated id populated. Returns domain.ErrNotFound if CarID does not
	// reference an existing car.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// ListByCarID returns all trips for a car ordered by id ascending
	// (creation order). Returns a nil slice when the car has no trips.
	ListByCarID(ctx context.Context, carID int64) ([]domain.Trip, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// Create inserts a new trip row and returns the full persisted record.
// A foreign key violation on car_id (car deleted between the service's
// existence check and this insert) maps to domain.ErrNotFound.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (car_id, start_minute, end_minute, description)
		VALUES (@car_id, @start_minute, @end_minute, @description)
		RETURNING id, car_id, start_minute, end_minute, description`

	args := pgx.NamedArgs{
		"car_id":       trip.CarID,
		"start_minute": trip.Start,
		"end_minute":   trip.End,
		"description":  trip.Description,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", domain.ErrNotFound)
		}
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// ListByCarID returns all trips for a car in creation (id) order.
func (r *pgTripRepo) ListByCarID(ctx context.Context, carID int64) ([]domain.Trip, error) {
	const q = `
		SELECT id, car_id, start_minute, end_minute, description
		FROM trips
		WHERE car_id = @car_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"car_id": carID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByCarID: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByCarID: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByCarID: rows: %w", err)
	}

	return trips, nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var t domain.Trip
	err := s.Scan(&t.ID, &t.CarID, &t.Start, &t.End, &t.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}
	return t, nil
}
