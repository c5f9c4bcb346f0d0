package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rnayak/carshare/internal/domain"
)

// tripRequest is the JSON input shape for trip creation. All fields are
// required; pointers distinguish a missing field from a zero minute offset.
type tripRequest struct {
	Start       *int    `json:"start"`
	End         *int    `json:"end"`
	Description *string `json:"description"`
}

// createTrip handles POST /api/cars/{id}/trips.
// A missing car wins over an invalid time range: the service checks
// existence first, then the end >= start invariant.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	carID, ok := idParam(w, r)
	if !ok {
		return
	}

	trip, err := decodeTripRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", err.Error())
		return
	}
	trip.CarID = carID

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", carNotFoundMessage(carID))
			return
		}
		if errors.Is(err, domain.ErrInvalidTrip) {
			// Fixed message, dedicated code: this rule is deliberately kept
			// apart from generic schema validation.
			writeError(w, http.StatusUnprocessableEntity, "invalid_trip", domain.ErrInvalidTrip.Error())
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
			return
		}
		s.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, created)
}

// decodeTripRequest parses and checks the request body for trip creation.
func decodeTripRequest(r *http.Request) (domain.Trip, error) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return domain.Trip{}, errors.New("invalid request body")
	}
	if body.Start == nil {
		return domain.Trip{}, errors.New("start is required")
	}
	if body.End == nil {
		return domain.Trip{}, errors.New("end is required")
	}
	if body.Description == nil {
		return domain.Trip{}, errors.New("description is required")
	}

	return domain.Trip{
		Start:       *body.Start,
		End:         *body.End,
		Description: *body.Description,
	}, nil
}
