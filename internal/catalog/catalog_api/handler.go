package catalog_api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"flight-service/internal/catalog"
	"flight-service/internal/logger"
	"flight-service/internal/models"
	"flight-service/internal/utils"
)

// defaultPageSize is the catalog default; orders and tickets use their
// own smaller page size.
const defaultPageSize = 10

type Handler struct {
	Service *catalog.Service
	Logger  *logger.Logger
}

func NewHandler(service *catalog.Service, log *logger.Logger) *Handler {
	return &Handler{Service: service, Logger: log}
}

// ---------------- AIRPORTS ----------------

func (h *Handler) ListAirports(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	airports, count, err := h.Service.ListAirports(
		r.Context(), r.URL.Query().Get("name"), params.Limit(), params.Offset())
	if err != nil {
		h.Logger.Error("API", fmt.Sprintf("ListAirports failed: %v", err))
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, airports))
}

func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	airport, err := h.Service.GetAirport(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airport)
}

func (h *Handler) CreateAirport(w http.ResponseWriter, r *http.Request) {
	var req models.AirportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airport, err := h.Service.CreateAirport(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, airport)
}

func (h *Handler) UpdateAirport(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.AirportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airport, err := h.Service.UpdateAirport(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airport)
}

func (h *Handler) DeleteAirport(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteAirport(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- AIRPLANE TYPES ----------------

func (h *Handler) ListAirplaneTypes(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	types, count, err := h.Service.ListAirplaneTypes(r.Context(), params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, types))
}

func (h *Handler) GetAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	airplaneType, err := h.Service.GetAirplaneType(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airplaneType)
}

func (h *Handler) CreateAirplaneType(w http.ResponseWriter, r *http.Request) {
	var req models.AirplaneTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airplaneType, err := h.Service.CreateAirplaneType(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, airplaneType)
}

func (h *Handler) UpdateAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.AirplaneTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airplaneType, err := h.Service.UpdateAirplaneType(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airplaneType)
}

func (h *Handler) DeleteAirplaneType(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteAirplaneType(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- AIRPLANES ----------------

func (h *Handler) ListAirplanes(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	typeID, err := utils.QueryInt64(r, "type")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	filter := models.AirplaneFilter{TypeID: typeID, Name: r.URL.Query().Get("name")}

	airplanes, count, err := h.Service.ListAirplanes(r.Context(), filter, params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, airplanes))
}

func (h *Handler) GetAirplane(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	airplane, err := h.Service.GetAirplane(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airplane.ToDetail())
}

func (h *Handler) CreateAirplane(w http.ResponseWriter, r *http.Request) {
	var req models.AirplaneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airplane, err := h.Service.CreateAirplane(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, airplane)
}

func (h *Handler) UpdateAirplane(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.AirplaneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	airplane, err := h.Service.UpdateAirplane(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, airplane)
}

func (h *Handler) DeleteAirplane(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteAirplane(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- CREWS ----------------

func (h *Handler) ListCrews(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	crews, count, err := h.Service.ListCrews(
		r.Context(), r.URL.Query().Get("search"), params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, crews))
}

func (h *Handler) GetCrew(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	crew, err := h.Service.GetCrew(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, crew)
}

func (h *Handler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	var req models.CrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	crew, err := h.Service.CreateCrew(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, crew)
}

func (h *Handler) UpdateCrew(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.CrewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	crew, err := h.Service.UpdateCrew(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, crew)
}

func (h *Handler) DeleteCrew(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteCrew(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---------------- ROUTES ----------------

func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	params, err := utils.ParsePageParams(r, defaultPageSize)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	routes, count, err := h.Service.ListRoutes(r.Context(), params.Limit(), params.Offset())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	items := make([]models.RouteList, 0, len(routes))
	for i := range routes {
		items = append(items, routes[i].ToList())
	}
	utils.WriteJSON(w, http.StatusOK, utils.NewPagedResponse(params, count, items))
}

func (h *Handler) GetRoute(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	route, err := h.Service.GetRoute(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, route.ToDetail())
}

func (h *Handler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	route, err := h.Service.CreateRoute(r.Context(), req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, route)
}

func (h *Handler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	var req models.RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	route, err := h.Service.UpdateRoute(r.Context(), id, req)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, route)
}

func (h *Handler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	id, err := utils.URLParamInt64(r, "id")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteRoute(r.Context(), id); err != nil {
		utils.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
