// Package handler implements the HTTP handlers for the car sharing API.
// All handlers are methods on Server and are split into resource-specific
// files (car.go, trip.go, token.go, ...) but share the same Server struct so
// they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rnayak/carshare/internal/domain"
)

// CarServicer defines the business operations the car handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type CarServicer interface {
	List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
	GetByID(ctx context.Context, id int64) (domain.Car, []domain.Trip, error)
	Create(ctx context.Context, car domain.Car) (domain.Car, error)
	Update(ctx context.Context, car domain.Car) (domain.Car, []domain.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// TripServicer defines the business operations the trip handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
}

// AuthServicer defines the credential checks the auth surface depends on.
type AuthServicer interface {
	IdentityFromToken(ctx context.Context, token string) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
}

// Server implements the HTTP surface for all API endpoints.
// Wire it in main.go via r.Mount("/", server.Routes()).
type Server struct {
	cars  CarServicer
	trips TripServicer
	auth  AuthServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(cars CarServicer, trips TripServicer, auth AuthServicer) *Server {
	return &Server{cars: cars, trips: trips, auth: auth}
}

// Routes returns the router for the full API surface.
// Only car creation sits behind the bearer gate; every other endpoint is
// public, matching the contract of the system this replaces.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/openapi.yaml", s.getOpenAPI)

	r.Route("/api/cars", func(r chi.Router) {
		r.Get("/", s.listCars)
		r.With(s.requireUser).Post("/", s.createCar)
		r.Get("/{id}", s.getCar)
		r.Put("/{id}", s.updateCar)
		r.Delete("/{id}", s.deleteCar)
		r.Get("/{id}/trips", s.getCarTrips)
		r.Post("/{id}/trips", s.createTrip)
	})

	r.Post("/auth/token", s.createToken)

	return r
}
