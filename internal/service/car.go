// Package service contains the business logic for the car sharing API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rnayak/carshare/internal/domain"
	"github.com/rnayak/carshare/internal/repo"
)

// CarService implements business logic for car operations.
// It holds the trips repo as well because the single-car view is assembled
// from the car row plus a query over its trips.
type CarService struct {
	cars  repo.CarRepo
	trips repo.TripRepo
}

// NewCarService constructs a CarService backed by the provided repos.
func NewCarService(cars repo.CarRepo, trips repo.TripRepo) *CarService {
	return &CarService{cars: cars, trips: trips}
}

// List returns cars matching the filter in insertion order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *CarService) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	cars, err := s.cars.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service.CarService.List: %w", err)
	}
	if cars == nil {
		return []domain.Car{}, nil
	}
	return cars, nil
}

// GetByID returns a single car together with its trips in creation order.
// The trips slice is always non-nil. Returns domain.ErrNotFound if the car
// does not exist.
func (s *CarService) GetByID(ctx context.Context, id int64) (domain.Car, []domain.Trip, error) {
	car, err := s.cars.GetByID(ctx, id)
	if err != nil {
		return domain.Car{}, nil, fmt.Errorf("service.CarService.GetByID: %w", err)
	}
	trips, err := s.trips.ListByCarID(ctx, id)
	if err != nil {
		return domain.Car{}, nil, fmt.Errorf("service.CarService.GetByID: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return car, trips, nil
}

// Create validates and persists a new car, applying the fuel and
// transmission defaults when those fields are omitted.
// Returns domain.ErrValidation if input violates business rules.
func (s *CarService) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	car = applyCarDefaults(car)
	if err := validateCar(car); err != nil {
		return domain.Car{}, err
	}
	result, err := s.cars.Create(ctx, car)
	if err != nil {
		return domain.Car{}, fmt.Errorf("service.CarService.Create: %w", err)
	}
	return result, nil
}

// Update overwrites size, fuel, doors, and transmission of an existing car
// (full replace, not a patch) and returns the updated record together with
// the car's current trips. Defaults apply the same way as on create.
// Returns domain.ErrNotFound if the car does not exist.
func (s *CarService) Update(ctx context.Context, car domain.Car) (domain.Car, []domain.Trip, error) {
	car = applyCarDefaults(car)
	if err := validateCar(car); err != nil {
		return domain.Car{}, nil, err
	}
	result, err := s.cars.Update(ctx, car)
	if err != nil {
		return domain.Car{}, nil, fmt.Errorf("service.CarService.Update: %w", err)
	}
	trips, err := s.trips.ListByCarID(ctx, car.ID)
	if err != nil {
		return domain.Car{}, nil, fmt.Errorf("service.CarService.Update: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return result, trips, nil
}

// Delete removes a car by ID.
// Returns domain.ErrNotFound if the car does not exist and
// domain.ErrConflict if trips still reference it — trip history is never
// deleted implicitly.
func (s *CarService) Delete(ctx context.Context, id int64) error {
	if err := s.cars.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.CarService.Delete: %w", err)
	}
	return nil
}

// applyCarDefaults fills in the optional fields the same way the input
// model does: fuel defaults to electric, transmission to auto.
func applyCarDefaults(car domain.Car) domain.Car {
	if car.Fuel == "" {
		car.Fuel = domain.DefaultFuel
	}
	if car.Transmission == "" {
		car.Transmission = domain.DefaultTransmission
	}
	return car
}

// validateCar enforces business rules common to both Create and Update.
//   - Size must be non-empty (whitespace-only values are rejected).
//   - Doors must be positive.
func validateCar(car domain.Car) error {
	if strings.TrimSpace(car.Size) == "" {
		return fmt.Errorf("%w: size is required", domain.ErrValidation)
	}
	if car.Doors < 1 {
		return fmt.Errorf("%w: doors must be positive", domain.ErrValidation)
	}
	return nil
}
