package flight_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flight-service/internal/flights"
	"flight-service/internal/logger"
	"flight-service/internal/models"
	"flight-service/internal/utils"
)

const defaultPageSize = 10

type Handler struct {
	Service *flights.Service
	Logger  *logger.Logger
}

func NewHandler(service *flights.Service, log *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: log}
}

func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	query := r.URL.Query()
	filter, err := flights.ParseFilter(query.Get("date"), query.Get("source"), query.Get("destination"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	items, count, err := h.Service.List(r.Context(), filter, params.Limit(), params.Offset())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListFlights failed: %v", err))
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, items))
}

func (h *Handler) GetFlight(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	detail, err := h.Service.Get(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	var req models.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	detail, err := h.Service.Create(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, detail)
}

func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.FlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	detail, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
