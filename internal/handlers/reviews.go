package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/roamly/roamly-backend/internal/models"
	"github.com/roamly/roamly-backend/internal/store"
)

type AddReviewRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// AddReview appends a review to a destination. Duplicate reviews by the
// same user are allowed.
func (h *DestinationHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "destinationId"))
	if err != nil {
		h.log.Error().Err(err).Msg("add review: bad destination id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var req AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("add review: bad user id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	dest, err := h.destinations.AppendReview(ctx, id, models.Review{UserID: userID, Text: req.Text})
	if errors.Is(err, store.ErrNotFound) {
		// "Destiantion" is kept from the legacy wire format.
		writeError(w, http.StatusNotFound, "Destiantion not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("add review failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Review added successfully",
		// The misspelled data key is also part of the legacy format.
		"data": map[string]interface{}{"destiantion": dest},
	})
}

// ReadReviews returns a destination's reviews with each author resolved
// to a reduced user projection. A review whose author no longer exists
// comes back with a null user rather than an error.
func (h *DestinationHandler) ReadReviews(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "destinationId"))
	if err != nil {
		h.log.Error().Err(err).Msg("read reviews: bad destination id")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	dest, err := h.destinations.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Destination not found")
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("read reviews: find destination failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	reviews, err := h.resolveReviews(ctx, dest.Reviews)
	if err != nil {
		h.log.Error().Err(err).Str("id", id.Hex()).Msg("read reviews: resolve users failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "retrieve reviews successfully",
		"data":    map[string]interface{}{"reviews": reviews},
	})
}

// resolveReviews swaps each review's author id for a UserSummary via
// one batch lookup. Order follows the stored reviews sequence.
func (h *DestinationHandler) resolveReviews(ctx context.Context, reviews []models.Review) ([]models.ResolvedReview, error) {
	ids := make([]primitive.ObjectID, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.UserID)
	}

	users, err := h.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resolved := make([]models.ResolvedReview, 0, len(reviews))
	for _, review := range reviews {
		rr := models.ResolvedReview{Text: review.Text}
		if user, ok := users[review.UserID]; ok {
			rr.User = &models.UserSummary{
				Username:       user.Username,
				ProfilePicture: user.ProfilePicture,
			}
		}
		resolved = append(resolved, rr)
	}
	return resolved, nil
}
