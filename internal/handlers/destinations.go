package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamly/roamly-backend/internal/models"
	"github.com/roamly/roamly-backend/internal/store"
)

// CreateDestinationRequest is the create input schema. No field is
// mandatory; rating defaults to 0 and reviews always start empty.
type CreateDestinationRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Rating      float64 `json:"rating"`
}

// UpdateDestinationRequest is the partial-update input schema. Absent
// fields leave the stored values untouched.
type UpdateDestinationRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	Rating      *float64 `json:"rating"`
}

// DestinationHandler serves the destination catalog endpoints,
// including the nested review operations.
type DestinationHandler struct {
	destinations store.DestinationStore
	users        store.UserStore
	log          zerolog.Logger
}

func NewDestinationHandler(destinations store.DestinationStore, users store.UserStore, log zerolog.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinations: destinations,
		users:        users,
		log:          log,
	}
}

// Create persists a new destination.
func (h *DestinationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dest := models.Destination{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Rating:      req.Rating,
		Reviews:     []models.Review{},
	}

	ctx, cancel := storeContext()
	defer cancel()

	if err := h.destinations.Insert(ctx, &dest); err != nil {
		h.log.Error().Err(err).Msg("create destination failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Destination created successfully",
		"data":    map[string]interface{}{"destination": dest},
	})
}

// ReadByName searches destinations by case-insensitive name substring.
// No match is a valid empty list, not a 404.
func (h *DestinationHandler) ReadByName(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ctx, cancel := storeContext()
	defer cancel()

	destinations, err := h.destinations.FindByName(ctx, name)
	if err != nil {
		h.log.Error().Err(err).Str("name", name).Msg("read destinations by name failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeDestinations(w, destinations)
}

// ReadAll returns the whole catalog, unbounded.
func (h *DestinationHandler) ReadAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext()
	defer cancel()

	destinations, err := h.destinations.FindAll(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("read all destinations failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeDestinations(w, destinations)
}

// ReadByLocation searches destinations by case-insensitive city
// substring. The empty-param check cannot fire through the router but
// stays as a guard.
func (h *DestinationHandler) ReadByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	if location == "" {
		writeError(w, http.StatusNotFound, "Location is required")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	destinations, err := h.destinations.FindByCity(ctx, location)
	if err != nil {
		h.log.Error().Err(err).Str("location", location).Msg("read destinations by location failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeDestinations(w, destinations)
}

// ReadByRating returns destinations ordered by rating, highest first.
func (h *DestinationHandler) ReadByRating(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := storeContext()
	defer cancel()

	destinations, err := h.destinations.FindAllByRatingDesc(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("read destinations by rating failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeDestinations(w, destinations)
}

// FilterByMinRating returns destinations rated at or above the path
// parameter, which must parse as a number.
func (h *DestinationHandler) FilterByMinRating(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "minRating")
	minRating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "minRating must be a number")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	destinations, err := h.destinations.FindByMinRating(ctx, minRating)
	if err != nil {
		h.log.Error().Err(err).Float64("minRating", minRating).Msg("filter destinations by rating failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeDestinations(w, destinations)
}

// Update overlays the supplied fields onto an existing destination and
// returns the post-update record. A malformed id surfaces as a generic
// 500, matching the wire behavior clients already rely on.
func (h *DestinationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "destinationId"))
	if err != nil {
		h.log.Error().Err(err).Msg("update destination: bad id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req UpdateDestinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	dest, err := h.destinations.UpdateFields(ctx, id, store.UpdateDestination{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
		Rating:      req.Rating,
	})
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Update destination failed")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("update destination failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "destination updated successfully",
		"data":    map[string]interface{}{"destination": dest},
	})
}

func writeDestinations(w http.ResponseWriter, destinations []models.Destination) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{"destinations": destinations},
	})
}
