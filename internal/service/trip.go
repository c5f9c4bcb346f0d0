package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rnayak/carshare/internal/domain"
	"github.com/rnayak/carshare/internal/repo"
)

// TripService implements business logic for trip operations.
// It holds the cars repo because creating a trip requires verifying the
// parent car exists before anything else.
type TripService struct {
	cars  repo.CarRepo
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(cars repo.CarRepo, trips repo.TripRepo) *TripService {
	return &TripService{cars: cars, trips: trips}
}

// Create verifies the parent car exists, validates the trip, then persists.
// The checks run in that order so a missing car always wins over an invalid
// time range.
// Returns domain.ErrNotFound if the car does not exist,
// domain.ErrInvalidTrip if end precedes start, and domain.ErrValidation for
// other input violations.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if _, err := s.cars.GetByID(ctx, trip.CarID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	if trip.End < trip.Start {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", domain.ErrInvalidTrip)
	}
	if strings.TrimSpace(trip.Description) == "" {
		return domain.Trip{}, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}
