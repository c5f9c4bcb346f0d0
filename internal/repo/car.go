// Package repo contains all database access logic for the car sharing API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rnayak/carshare/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// foreignKeyViolation is the Postgres error code raised when an insert or
// delete breaks a foreign key constraint (e.g. deleting a car with trips).
const foreignKeyViolation = "23503"

// CarRepo defines the persistence operations for cars.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type CarRepo interface {
	// Create inserts a new car and returns the persisted record with its
	// DB-generated id populated.
	Create(ctx context.Context, car domain.Car) (domain.Car, error)

	// GetByID retrieves a single car by its primary key.
	// Returns domain.ErrNotFound if no car with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Car, error)

	// List returns cars matching the filter, ordered by id ascending
	// (insertion order). A zero filter returns every car.
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)

	// Update overwrites the mutable fields of an existing car and returns the
	// updated record. Returns domain.ErrNotFound if no car with that ID exists.
	Update(ctx context.Context, car domain.Car) (domain.Car, error)

	// Delete removes a car by ID. Returns domain.ErrNotFound if it does not
	// exist and domain.ErrConflict if trips still reference it.
	Delete(ctx context.Context, id int64) error
}

// pgCarRepo is the Postgres implementation of CarRepo.
type pgCarRepo struct {
	db db
}

// NewCarRepo constructs a CarRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewCarRepo(db db) CarRepo {
	return &pgCarRepo{db: db}
}

// Create inserts a new car row and returns the full persisted record.
func (r *pgCarRepo) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	const q = `
		INSERT INTO cars (size, fuel, doors, transmission)
		VALUES (@size, @fuel, @doors, @transmission)
		RETURNING id, size, fuel, doors, transmission`

	args := pgx.NamedArgs{
		"size":         car.Size,
		"fuel":         car.Fuel,
		"doors":        car.Doors,
		"transmission": car.Transmission,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCar(row)
	if err != nil {
		return domain.Car{}, fmt.Errorf("repo.CarRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a car by primary key.
func (r *pgCarRepo) GetByID(ctx context.Context, id int64) (domain.Car, error) {
	const q = `
		SELECT id, size, fuel, doors, transmission
		FROM cars
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanCar(row)
	if err != nil {
		return domain.Car{}, fmt.Errorf("repo.CarRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns cars matching the filter in insertion (id) order.
// The WHERE clause is assembled from the filter's set fields only.
func (r *pgCarRepo) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	q := `SELECT id, size, fuel, doors, transmission FROM cars`
	args := pgx.NamedArgs{}

	var where []string
	if filter.Size != "" {
		where = append(where, "size = @size")
		args["size"] = filter.Size
	}
	if filter.MinDoors > 0 {
		where = append(where, "doors >= @min_doors")
		args["min_doors"] = filter.MinDoors
	}
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY id"

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.CarRepo.List: %w", err)
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CarRepo.List: scan: %w", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CarRepo.List: rows: %w", err)
	}

	return cars, nil
}

// Update overwrites the mutable fields of a car and returns the updated record.
func (r *pgCarRepo) Update(ctx context.Context, car domain.Car) (domain.Car, error) {
	const q = `
		UPDATE cars
		SET size         = @size,
		    fuel         = @fuel,
		    doors        = @doors,
		    transmission = @transmission
		WHERE id = @id
		RETURNING id, size, fuel, doors, transmission`

	args := pgx.NamedArgs{
		"id":           car.ID,
		"size":         car.Size,
		"fuel":         car.Fuel,
		"doors":        car.Doors,
		"transmission": car.Transmission,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanCar(row)
	if err != nil {
		return domain.Car{}, fmt.Errorf("repo.CarRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a car by primary key. The trips foreign key is declared
// ON DELETE RESTRICT, so Postgres rejects the delete while trips remain;
// that violation is surfaced as domain.ErrConflict.
func (r *pgCarRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM cars WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return fmt.Errorf("repo.CarRepo.Delete: %w", domain.ErrConflict)
		}
		return fmt.Errorf("repo.CarRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CarRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanCar maps a single database row into a domain.Car.
func scanCar(s scanner) (domain.Car, error) {
	var c domain.Car
	err := s.Scan(&c.ID, &c.Size, &c.Fuel, &c.Doors, &c.Transmission)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Car{}, domain.ErrNotFound
		}
		return domain.Car{}, err
	}
	return c, nil
}
