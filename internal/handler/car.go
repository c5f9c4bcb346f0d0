package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rnayak/carshare/internal/domain"
)

// carRequest is the JSON input shape for car creation and replacement.
// Fields are pointers so a missing required field can be told apart from a
// zero value; fuel and transmission stay optional and default downstream.
type carRequest struct {
	Size         *string `json:"size"`
	Fuel         *string `json:"fuel"`
	Doors        *int    `json:"doors"`
	Transmission *string `json:"transmission"`
}

// carResponse is the output projection for a car. Trips is a pointer so the
// list endpoint can omit it entirely while single-car endpoints always send
// an array, even when empty.
type carResponse struct {
	ID           int64          `json:"id"`
	Size         string         `json:"size"`
	Fuel         string         `json:"fuel"`
	Doors        int            `json:"doors"`
	Transmission string         `json:"transmission"`
	Trips        *[]domain.Trip `json:"trips,omitempty"`
}

// listCars handles GET /api/cars.
// Supports ?size= (equality) and ?doors= (inclusive lower bound) filters.
func (s *Server) listCars(w http.ResponseWriter, r *http.Request) {
	filter := domain.CarFilter{Size: r.URL.Query().Get("size")}

	if raw := r.URL.Query().Get("doors"); raw != "" {
		doors, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", "doors must be an integer")
			return
		}
		filter.MinDoors = doors
	}

	cars, err := s.cars.List(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	data := make([]carResponse, len(cars))
	for i, c := range cars {
		data[i] = carToResponse(c, nil)
	}
	writeJSON(w, http.StatusOK, data)
}

// getCar handles GET /api/cars/{id}.
func (s *Server) getCar(w http.ResponseWriter, r *http.Request) {
	s.getCarWithTrips(w, r)
}

// getCarTrips handles GET /api/cars/{id}/trips.
// The response is the same car-with-trips view as getCar; the route exists
// for compatibility with the original surface.
func (s *Server) getCarTrips(w http.ResponseWriter, r *http.Request) {
	s.getCarWithTrips(w, r)
}

func (s *Server) getCarWithTrips(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	car, trips, err := s.cars.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", carNotFoundMessage(id))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, carToResponse(car, trips))
}

// createCar handles POST /api/cars. Requires a valid bearer credential
// (enforced by the requireUser middleware before this handler runs).
func (s *Server) createCar(w http.ResponseWriter, r *http.Request) {
	car, err := decodeCarRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}

	created, err := s.cars.Create(r.Context(), car)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
			return
		}
		s.internalError(w, r, err)
		return
	}

	if user, ok := userFromContext(r.Context()); ok {
		slog.InfoContext(r.Context(), "car created", "car_id", created.ID, "user", user.Username)
	}

	writeJSON(w, http.StatusOK, carToResponse(created, []domain.Trip{}))
}

// updateCar handles PUT /api/cars/{id}. Full replace semantics: every
// mutable field is overwritten with the request value (or its default).
func (s *Server) updateCar(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	car, err := decodeCarRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	car.ID = id

	updated, trips, err := s.cars.Update(r.Context(), car)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", carNotFoundMessage(id))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, carToResponse(updated, trips))
}

// deleteCar handles DELETE /api/cars/{id}.
func (s *Server) deleteCar(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	err := s.cars.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", carNotFoundMessage(id))
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "conflict",
				fmt.Sprintf("car %d still has trips", id))
			return
		}
		s.internalError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// decodeCarRequest parses and checks the request body for create and update.
// Returns an error if the body is malformed or a required field is missing.
func decodeCarRequest(r *http.Request) (domain.Car, error) {
	var body carRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Car{}, errors.New("invalid request body")
	}
	if body.Size == nil {
		return domain.Car{}, errors.New("size is required")
	}
	if body.Doors == nil {
		return domain.Car{}, errors.New("doors is required")
	}

	car := domain.Car{
		Size:  *body.Size,
		Doors: *body.Doors,
	}
	if body.Fuel != nil {
		car.Fuel = *body.Fuel
	}
	if body.Transmission != nil {
		car.Transmission = *body.Transmission
	}
	return car, nil
}

// carToResponse converts a domain.Car into the output projection.
// Pass nil trips to omit the field (list view); pass a possibly-empty slice
// to always include it (single-car views).
func carToResponse(c domain.Car, trips []domain.Trip) carResponse {
	resp := carResponse{
		ID:           c.ID,
		Size:         c.Size,
		Fuel:         c.Fuel,
		Doors:        c.Doors,
		Transmission: c.Transmission,
	}
	if trips != nil {
		resp.Trips = &trips
	}
	return resp
}

// idParam parses the {id} path parameter. On failure it writes a 422 and
// returns ok=false; callers must return immediately.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "id must be an integer")
		return 0, false
	}
	return id, true
}

// carNotFoundMessage names the missing id, matching the original surface's
// error detail texture.
func carNotFoundMessage(id int64) string {
	return fmt.Sprintf("no car found with id = %d", id)
}
