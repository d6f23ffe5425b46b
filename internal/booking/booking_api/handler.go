package booking_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flight-service/internal/auth"
	"flight-service/internal/booking"
	"flight-service/internal/logger"
	"flight-service/internal/models"
	"flight-service/internal/utils"
)

// Orders and tickets keep the small page size inherited from the booking
// UI this API serves.
const defaultPageSize = 2

type Handler struct {
	Service *booking.Service
	Logger  *logger.Logger
}

func NewHandler(service *booking.Service, log *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: log}
}

// userID resolves the authenticated account from the request context.
func userID(r *http.Request) (int64, bool) {
	claims := auth.ClaimsFrom(r.Context())
	if claims == nil {
		return 0, false
	}
	id, err := claims.UserID()
	if err != nil {
		return 0, false
	}
	return id, true
}

// ---------------- ORDERS ----------------

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.Service.PlaceOrder(r.Context(), uid, req)
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("CreateOrder failed for user %d: %v", uid, err))
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	orders, count, err := h.Service.ListOrders(r.Context(), uid, params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, orders))
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	order, err := h.Service.GetOrder(r.Context(), id, uid)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.Service.CancelOrder(r.Context(), id, uid); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- TICKETS (read only) ----------------

func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	tickets, count, err := h.Service.ListTickets(r.Context(), uid, params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, tickets))
}

func (h *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(r)
	if !ok {
		utils.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	ticket, err := h.Service.GetTicket(r.Context(), id, uid)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ticket)
}
