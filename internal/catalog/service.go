package catalog

import (
	"context"

	"flight-service/internal/apperrors"
	"flight-service/internal/logger"
	"flight-service/internal/models"
)

// DBLayer is the storage surface the catalog service needs; satisfied by
// the catalog db package and by mocks in tests.
type DBLayer interface {
	ListAirports(ctx context.Context, name string, limit, offset int) ([]models.Airport, int, error)
	GetAirport(ctx context.Context, id int64) (*models.Airport, error)
	CreateAirport(ctx context.Context, airport *models.Airport) error
	UpdateAirport(ctx context.Context, airport *models.Airport) error
	DeleteAirport(ctx context.Context, id int64) error

	ListAirplaneTypes(ctx context.Context, limit, offset int) ([]models.AirplaneType, int, error)
	GetAirplaneType(ctx context.Context, id int64) (*models.AirplaneType, error)
	CreateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error
	UpdateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error
	DeleteAirplaneType(ctx context.Context, id int64) error

	ListAirplanes(ctx context.Context, filter models.AirplaneFilter, limit, offset int) ([]models.Airplane, int, error)
	GetAirplane(ctx context.Context, id int64) (*models.Airplane, error)
	CreateAirplane(ctx context.Context, airplane *models.Airplane) error
	UpdateAirplane(ctx context.Context, airplane *models.Airplane) error
	DeleteAirplane(ctx context.Context, id int64) error

	ListCrews(ctx context.Context, search string, limit, offset int) ([]models.Crew, int, error)
	GetCrew(ctx context.Context, id int64) (*models.Crew, error)
	CreateCrew(ctx context.Context, crew *models.Crew) error
	UpdateCrew(ctx context.Context, crew *models.Crew) error
	DeleteCrew(ctx context.Context, id int64) error

	ListRoutes(ctx context.Context, limit, offset int) ([]models.Route, int, error)
	GetRoute(ctx context.Context, id int64) (*models.Route, error)
	CreateRoute(ctx context.Context, route *models.Route) error
	UpdateRoute(ctx context.Context, route *models.Route) error
	DeleteRoute(ctx context.Context, id int64) error
}

type Service struct {
	DB     DBLayer
	Logger *logger.Logger
}

func NewService(db DBLayer, log *logger.Logger) *Service {
	return &Service{DB: db, Logger: log}
}

// ---------------- AIRPORTS ----------------

func (s *Service) ListAirports(ctx context.Context, name string, limit, offset int) ([]models.Airport, int, error) {
	return s.DB.ListAirports(ctx, name, limit, offset)
}

func (s *Service) GetAirport(ctx context.Context, id int64) (*models.Airport, error) {
	return s.DB.GetAirport(ctx, id)
}

func (s *Service) DeleteAirport(ctx context.Context, id int64) error {
	return s.DB.DeleteAirport(ctx, id)
}

func (s *Service) CreateAirport(ctx context.Context, req models.AirportRequest) (*models.Airport, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldValidation(map[string]string{"name": "this field is required"})
	}
	airport := &models.Airport{Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := s.DB.CreateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return airport, nil
}

func (s *Service) UpdateAirport(ctx context.Context, id int64, req models.AirportRequest) (*models.Airport, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldValidation(map[string]string{"name": "this field is required"})
	}
	airport := &models.Airport{ID: id, Name: req.Name, ClosestBigCity: req.ClosestBigCity}
	if err := s.DB.UpdateAirport(ctx, airport); err != nil {
		return nil, err
	}
	return s.DB.GetAirport(ctx, id)
}

// ---------------- AIRPLANE TYPES ----------------

func (s *Service) ListAirplaneTypes(ctx context.Context, limit, offset int) ([]models.AirplaneType, int, error) {
	return s.DB.ListAirplaneTypes(ctx, limit, offset)
}

func (s *Service) GetAirplaneType(ctx context.Context, id int64) (*models.AirplaneType, error) {
	return s.DB.GetAirplaneType(ctx, id)
}

func (s *Service) DeleteAirplaneType(ctx context.Context, id int64) error {
	return s.DB.DeleteAirplaneType(ctx, id)
}

func (s *Service) CreateAirplaneType(ctx context.Context, req models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldValidation(map[string]string{"name": "this field is required"})
	}
	airplaneType := &models.AirplaneType{Name: req.Name}
	if err := s.DB.CreateAirplaneType(ctx, airplaneType); err != nil {
		return nil, err
	}
	return airplaneType, nil
}

func (s *Service) UpdateAirplaneType(ctx context.Context, id int64, req models.AirplaneTypeRequest) (*models.AirplaneType, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldValidation(map[string]string{"name": "this field is required"})
	}
	airplaneType := &models.AirplaneType{ID: id, Name: req.Name}
	if err := s.DB.UpdateAirplaneType(ctx, airplaneType); err != nil {
		return nil, err
	}
	return airplaneType, nil
}

// ---------------- AIRPLANES ----------------

func (s *Service) ListAirplanes(ctx context.Context, filter models.AirplaneFilter, limit, offset int) ([]models.Airplane, int, error) {
	return s.DB.ListAirplanes(ctx, filter, limit, offset)
}

func (s *Service) GetAirplane(ctx context.Context, id int64) (*models.Airplane, error) {
	return s.DB.GetAirplane(ctx, id)
}

func (s *Service) DeleteAirplane(ctx context.Context, id int64) error {
	return s.DB.DeleteAirplane(ctx, id)
}

func (s *Service) CreateAirplane(ctx context.Context, req models.AirplaneRequest) (*models.AirplaneDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	airplane := &models.Airplane{
		Name:           req.Name,
		Rows:           req.Rows,
		Seats:          req.Seats,
		AirplaneTypeID: req.AirplaneTypeID,
	}
	if err := s.DB.CreateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	created, err := s.DB.GetAirplane(ctx, airplane.ID)
	if err != nil {
		return nil, err
	}
	detail := created.ToDetail()
	return &detail, nil
}

func (s *Service) UpdateAirplane(ctx context.Context, id int64, req models.AirplaneRequest) (*models.AirplaneDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	airplane := &models.Airplane{
		ID:             id,
		Name:           req.Name,
		Rows:           req.Rows,
		Seats:          req.Seats,
		AirplaneTypeID: req.AirplaneTypeID,
	}
	if err := s.DB.UpdateAirplane(ctx, airplane); err != nil {
		return nil, err
	}
	updated, err := s.DB.GetAirplane(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := updated.ToDetail()
	return &detail, nil
}

// ---------------- CREWS ----------------

func (s *Service) ListCrews(ctx context.Context, search string, limit, offset int) ([]models.Crew, int, error) {
	return s.DB.ListCrews(ctx, search, limit, offset)
}

func (s *Service) GetCrew(ctx context.Context, id int64) (*models.Crew, error) {
	return s.DB.GetCrew(ctx, id)
}

func (s *Service) DeleteCrew(ctx context.Context, id int64) error {
	return s.DB.DeleteCrew(ctx, id)
}

func (s *Service) CreateCrew(ctx context.Context, req models.CrewRequest) (*models.Crew, error) {
	if fields := validateCrew(req); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	crew := &models.Crew{FirstName: req.FirstName, LastName: req.LastName}
	if err := s.DB.CreateCrew(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func (s *Service) UpdateCrew(ctx context.Context, id int64, req models.CrewRequest) (*models.Crew, error) {
	if fields := validateCrew(req); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	crew := &models.Crew{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	if err := s.DB.UpdateCrew(ctx, crew); err != nil {
		return nil, err
	}
	return crew, nil
}

func validateCrew(req models.CrewRequest) map[string]string {
	fields := map[string]string{}
	if req.FirstName == "" {
		fields["first_name"] = "this field is required"
	}
	if req.LastName == "" {
		fields["last_name"] = "this field is required"
	}
	return fields
}

// ---------------- ROUTES ----------------

func (s *Service) ListRoutes(ctx context.Context, limit, offset int) ([]models.Route, int, error) {
	return s.DB.ListRoutes(ctx, limit, offset)
}

func (s *Service) GetRoute(ctx context.Context, id int64) (*models.Route, error) {
	return s.DB.GetRoute(ctx, id)
}

func (s *Service) DeleteRoute(ctx context.Context, id int64) error {
	return s.DB.DeleteRoute(ctx, id)
}

func (s *Service) CreateRoute(ctx context.Context, req models.RouteRequest) (*models.RouteDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	route := &models.Route{
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}
	if err := s.DB.CreateRoute(ctx, route); err != nil {
		return nil, err
	}
	created, err := s.DB.GetRoute(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	detail := created.ToDetail()
	return &detail, nil
}

func (s *Service) UpdateRoute(ctx context.Context, id int64, req models.RouteRequest) (*models.RouteDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	route := &models.Route{
		ID:            id,
		SourceID:      req.SourceID,
		DestinationID: req.DestinationID,
		Distance:      req.Distance,
	}
	if err := s.DB.UpdateRoute(ctx, route); err != nil {
		return nil, err
	}
	updated, err := s.DB.GetRoute(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := updated.ToDetail()
	return &detail, nil
}
