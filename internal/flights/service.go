package flights

import (
	"context"
	"fmt"
	"time"

	"flight-service/internal/apperrors"
	"flight-service/internal/logger"
	"flight-service/internal/models"
)

type DBLayer interface {
	ListFlights(ctx context.Context, filter models.FlightFilter, limit, offset int) ([]models.Flight, int, error)
	GetFlight(ctx context.Context, id int64) (*models.Flight, error)
	CreateFlight(ctx context.Context, flight *models.Flight, crewIDs []int64) error
	UpdateFlight(ctx context.Context, flight *models.Flight, crewIDs []int64) error
	DeleteFlight(ctx context.Context, id int64) error
}

type Service struct {
	DB     DBLayer
	Logger *logger.Logger
}

func NewService(db DBLayer, log *logger.Logger) *Service {
	return &Service{DB: db, Logger: log}
}

// ParseFilter reads the date/source/destination query parameters. A
// malformed date is a client error.
func ParseFilter(date, source, destination string) (models.FlightFilter, error) {
	filter := models.FlightFilter{Source: source, Destination: destination}
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			return filter, apperrors.NewValidation(
				fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date))
		}
		filter.Date = &parsed
	}
	return filter, nil
}

func (s *Service) List(ctx context.Context, filter models.FlightFilter, limit, offset int) ([]models.FlightList, int, error) {
	flights, count, err := s.DB.ListFlights(ctx, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items := make([]models.FlightList, 0, len(flights))
	for i := range flights {
		items = append(items, flights[i].ToList())
	}
	return items, count, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.FlightDetail, error) {
	flight, err := s.DB.GetFlight(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := flight.ToDetail()
	return &detail, nil
}

func (s *Service) Create(ctx context.Context, req models.FlightRequest) (*models.FlightDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	flight := &models.Flight{
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if err := s.DB.CreateFlight(ctx, flight, req.CrewIDs); err != nil {
		return nil, err
	}
	s.Logger.Info("FLIGHT", fmt.Sprintf("created flight %d on route %d", flight.ID, flight.RouteID))
	return s.Get(ctx, flight.ID)
}

func (s *Service) Update(ctx context.Context, id int64, req models.FlightRequest) (*models.FlightDetail, error) {
	if fields := req.Validate(); len(fields) > 0 {
		return nil, apperrors.NewFieldValidation(fields)
	}
	flight := &models.Flight{
		ID:            id,
		RouteID:       req.RouteID,
		AirplaneID:    req.AirplaneID,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}
	if err := s.DB.UpdateFlight(ctx, flight, req.CrewIDs); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.DB.DeleteFlight(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("FLIGHT", fmt.Sprintf("deleted flight %d", id))
	return nil
}
