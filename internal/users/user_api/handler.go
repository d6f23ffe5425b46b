package user_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flight-service/internal/auth"
	"flight-service/internal/logger"
	"flight-service/internal/models"
	"flight-service/internal/users"
	"flight-service/internal/utils"
)

type Handler struct {
	Service *users.Service
	Logger  *logger.Logger
}

func NewHandler(service *users.Service, log *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: log}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.Service.Register(r.Context(), req)
	if err != nil {
		h.Logger.Error("USER", fmt.Sprintf("Register failed: %v", err))
		utils.WriteError(w, err)
		return
	}

	h.Logger.Info("USER", fmt.Sprintf("registered user %d", user.ID))
	utils.WriteJSON(w, http.StatusCreated, user)
}

func (h *Handler) Token(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, err := h.Service.Token(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, token)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "invalid token subject")
		return
	}

	user, err := h.Service.Me(r.Context(), userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}
