package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/utils"
	"github.com/MKhiriev/camera-collector/models"
)

// tokenTypeBearer is the token_type value reported by login and refresh.
const tokenTypeBearer = "bearer"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Str("username", registeredUser.Username).Msg("user registered")

	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		log.Err(err).Msg("user login failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", pair.Access.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken:  pair.Access.String(),
		RefreshToken: pair.Refresh.String(),
		TokenType:    tokenTypeBearer,
	}, http.StatusOK)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	pair, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		log.Err(err).Msg("token refresh failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.TokenResponse{
		AccessToken:  pair.Access.String(),
		RefreshToken: pair.Refresh.String(),
		TokenType:    tokenTypeBearer,
	}, http.StatusOK)
}
