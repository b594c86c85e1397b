package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/roamly/roamly-backend/internal/models"
	"github.com/roamly/roamly-backend/internal/store"
)

// SignupRequest is the signup input schema. Only presence is checked;
// the values are stored verbatim.
type SignupRequest struct {
	Name           string `json:"name" validate:"required"`
	Username       string `json:"username" validate:"required"`
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	ProfilePicture string `json:"profilePicture"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthHandler serves signup and login.
type AuthHandler struct {
	users    store.UserStore
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthHandler(users store.UserStore, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		users:    users,
		validate: validator.New(),
		log:      log,
	}
}

// Signup registers a new user. The record, password included, is echoed
// back as stored.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "name, username, email and password are required")
		return
	}

	user := models.User{
		Name:           req.Name,
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		ProfilePicture: req.ProfilePicture,
	}

	ctx, cancel := storeContext()
	defer cancel()

	// A duplicate email trips the unique index and lands here with
	// every other store failure; the source never told them apart.
	if err := h.users.Insert(ctx, &user); err != nil {
		h.log.Error().Err(err).Str("email", req.Email).Msg("signup: insert user failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "signup successfully",
		"user":    user,
	})
}

// Login checks the password by direct equality against the stored
// value. Unknown email and wrong password produce the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := storeContext()
	defer cancel()

	user, err := h.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.log.Error().Err(err).Msg("login: find user failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if user == nil || user.Password != req.Password {
		writeError(w, http.StatusBadRequest, "Email and Password incorrect")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successfully",
		"user":    user,
	})
}
