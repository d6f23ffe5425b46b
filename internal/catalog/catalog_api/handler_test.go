package catalog_api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-service/internal/apperrors"
	"flight-service/internal/catalog"
	"flight-service/internal/catalog/catalog_api"
	"flight-service/internal/logger"
	"flight-service/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBLayer struct {
	mock.Mock
}

func (m *MockDBLayer) ListAirports(ctx context.Context, name string, limit, offset int) ([]models.Airport, int, error) {
	args := m.Called(ctx, name, limit, offset)
	return args.Get(0).([]models.Airport), args.Int(1), args.Error(2)
}

func (m *MockDBLayer) GetAirport(ctx context.Context, id int64) (*models.Airport, error) {
	args := m.Called(ctx, id)
	if airport, ok := args.Get(0).(*models.Airport); ok {
		return airport, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBLayer) CreateAirport(ctx context.Context, airport *models.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockDBLayer) UpdateAirport(ctx context.Context, airport *models.Airport) error {
	return m.Called(ctx, airport).Error(0)
}

func (m *MockDBLayer) DeleteAirport(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDBLayer) ListAirplaneTypes(ctx context.Context, limit, offset int) ([]models.AirplaneType, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.AirplaneType), args.Int(1), args.Error(2)
}

func (m *MockDBLayer) GetAirplaneType(ctx context.Context, id int64) (*models.AirplaneType, error) {
	args := m.Called(ctx, id)
	if airplaneType, ok := args.Get(0).(*models.AirplaneType); ok {
		return airplaneType, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBLayer) CreateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error {
	return m.Called(ctx, airplaneType).Error(0)
}

func (m *MockDBLayer) UpdateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error {
	return m.Called(ctx, airplaneType).Error(0)
}

func (m *MockDBLayer) DeleteAirplaneType(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDBLayer) ListAirplanes(ctx context.Context, filter models.AirplaneFilter, limit, offset int) ([]models.Airplane, int, error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]models.Airplane), args.Int(1), args.Error(2)
}

func (m *MockDBLayer) GetAirplane(ctx context.Context, id int64) (*models.Airplane, error) {
	args := m.Called(ctx, id)
	if airplane, ok := args.Get(0).(*models.Airplane); ok {
		return airplane, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBLayer) CreateAirplane(ctx context.Context, airplane *models.Airplane) error {
	return m.Called(ctx, airplane).Error(0)
}

func (m *MockDBLayer) UpdateAirplane(ctx context.Context, airplane *models.Airplane) error {
	return m.Called(ctx, airplane).Error(0)
}

func (m *MockDBLayer) DeleteAirplane(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDBLayer) ListCrews(ctx context.Context, search string, limit, offset int) ([]models.Crew, int, error) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]models.Crew), args.Int(1), args.Error(2)
}

func (m *MockDBLayer) GetCrew(ctx context.Context, id int64) (*models.Crew, error) {
	args := m.Called(ctx, id)
	if crew, ok := args.Get(0).(*models.Crew); ok {
		return crew, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBLayer) CreateCrew(ctx context.Context, crew *models.Crew) error {
	return m.Called(ctx, crew).Error(0)
}

func (m *MockDBLayer) UpdateCrew(ctx context.Context, crew *models.Crew) error {
	return m.Called(ctx, crew).Error(0)
}

func (m *MockDBLayer) DeleteCrew(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDBLayer) ListRoutes(ctx context.Context, limit, offset int) ([]models.Route, int, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.Route), args.Int(1), args.Error(2)
}

func (m *MockDBLayer) GetRoute(ctx context.Context, id int64) (*models.Route, error) {
	args := m.Called(ctx, id)
	if route, ok := args.Get(0).(*models.Route); ok {
		return route, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBLayer) CreateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockDBLayer) UpdateRoute(ctx context.Context, route *models.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *MockDBLayer) DeleteRoute(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newHandler(mockDB *MockDBLayer) *catalog_api.Handler {
	log := logger.NewLogger()
	return catalog_api.NewHandler(catalog.NewService(mockDB, log), log)
}

func testRouter(h *catalog_api.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/airports", h.ListAirports)
	r.Get("/airports/{id}", h.GetAirport)
	r.Delete("/crews/{id}", h.DeleteCrew)
	return r
}

func TestListAirportsGoesThroughService(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockDB.On("ListAirports", mock.Anything, "heath", 10, 0).
		Return([]models.Airport{{ID: 1, Name: "Heathrow", ClosestBigCity: "London"}}, 1, nil)

	router := testRouter(newHandler(mockDB))
	r := httptest.NewRequest("GET", "/airports?name=heath", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Heathrow")
	mockDB.AssertExpectations(t)
}

func TestGetAirportMissingIsNotFound(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockDB.On("GetAirport", mock.Anything, int64(42)).Return(nil, apperrors.ErrNotFound)

	router := testRouter(newHandler(mockDB))
	r := httptest.NewRequest("GET", "/airports/42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockDB.AssertExpectations(t)
}

func TestDeleteCrewGoesThroughService(t *testing.T) {
	mockDB := new(MockDBLayer)
	mockDB.On("DeleteCrew", mock.Anything, int64(7)).Return(nil)

	router := testRouter(newHandler(mockDB))
	r := httptest.NewRequest("DELETE", "/crews/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockDB.AssertExpectations(t)
}
