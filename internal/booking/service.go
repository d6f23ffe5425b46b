package booking

import (
	"context"
	"fmt"

	"flight-service/internal/apperrors"
	"flight-service/internal/booking/qr"
	"flight-service/internal/logger"
	"flight-service/internal/metrics"
	"flight-service/internal/models"
)

type DBLayer interface {
	CreateOrderWithTickets(ctx context.Context, userID int64, specs []models.TicketSpec) (*models.Order, error)
	ListOrders(ctx context.Context, userID int64, limit, offset int) ([]models.Order, int, error)
	GetOrder(ctx context.Context, id, userID int64) (*models.Order, error)
	CancelOrder(ctx context.Context, id, userID int64) error
	ListTickets(ctx context.Context, userID int64, limit, offset int) ([]models.Ticket, int, error)
	GetTicket(ctx context.Context, id, userID int64) (*models.Ticket, error)
	GetFlightAirplane(ctx context.Context, flightID int64) (*models.Airplane, error)
}

type KafkaPublisher interface {
	PublishOrderCreated(order models.Order) error
	PublishOrderCancelled(order models.Order) error
}

// Service implements order booking: seat validation, the atomic
// order-plus-tickets transaction and the downstream event publishing.
type Service struct {
	DB      DBLayer
	Kafka   KafkaPublisher
	QR      *qr.Generator
	Logger  *logger.Logger
	Metrics *metrics.Registry
}

func NewService(db DBLayer, kafka KafkaPublisher, log *logger.Logger, reg *metrics.Registry) *Service {
	return &Service{
		DB:      db,
		Kafka:   kafka,
		QR:      qr.NewGenerator(),
		Logger:  log,
		Metrics: reg,
	}
}

// PlaceOrder books every requested seat or nothing at all.
func (s *Service) PlaceOrder(ctx context.Context, userID int64, req models.OrderRequest) (*models.OrderResponse, error) {
	if len(req.Tickets) == 0 {
		s.countFailure("empty_tickets")
		return nil, apperrors.NewValidation("tickets list cannot be empty")
	}

	// Input-boundary check; the transaction repeats it before each insert
	// so the rule holds at both entry points.
	for _, spec := range req.Tickets {
		airplane, err := s.DB.GetFlightAirplane(ctx, spec.FlightID)
		if err != nil {
			s.countFailure("unknown_flight")
			return nil, err
		}
		if err := models.ValidateTicket(spec.Row, spec.Seat, airplane); err != nil {
			s.countFailure("validation")
			return nil, err
		}
	}

	order, err := s.DB.CreateOrderWithTickets(ctx, userID, req.Tickets)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			s.countFailure("validation")
		case apperrors.IsConstraint(err):
			s.countFailure("duplicate_seat")
		default:
			s.countFailure("storage")
		}
		return nil, err
	}

	s.Logger.LogBooking("CREATE", order.ID,
		fmt.Sprintf("booked %d ticket(s) for user %d", len(order.Tickets), userID))
	if s.Metrics != nil {
		s.Metrics.OrdersCreatedTotal.Inc()
		s.Metrics.TicketsBookedTotal.Add(float64(len(order.Tickets)))
	}

	// Event delivery is best effort; the booking is already committed.
	if s.Kafka != nil {
		if err := s.Kafka.PublishOrderCreated(*order); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("failed to publish order created event: %v", err))
		}
	}

	resp := order.ToResponse()
	s.attachQRCodes(order, &resp)
	return &resp, nil
}

func (s *Service) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]models.OrderResponse, int, error) {
	orders, count, err := s.DB.ListOrders(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]models.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orders[i].ToResponse())
	}
	return responses, count, nil
}

func (s *Service) GetOrder(ctx context.Context, id, userID int64) (*models.OrderResponse, error) {
	order, err := s.DB.GetOrder(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	resp := order.ToResponse()
	s.attachQRCodes(order, &resp)
	return &resp, nil
}

func (s *Service) CancelOrder(ctx context.Context, id, userID int64) error {
	order, err := s.DB.GetOrder(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.DB.CancelOrder(ctx, id, userID); err != nil {
		return err
	}
	s.Logger.LogBooking("CANCEL", id, fmt.Sprintf("cancelled by user %d", userID))
	if s.Kafka != nil {
		if err := s.Kafka.PublishOrderCancelled(*order); err != nil {
			s.Logger.Error("KAFKA", fmt.Sprintf("failed to publish order cancelled event: %v", err))
		}
	}
	return nil
}

func (s *Service) ListTickets(ctx context.Context, userID int64, limit, offset int) ([]models.TicketList, int, error) {
	tickets, count, err := s.DB.ListTickets(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	items := make([]models.TicketList, 0, len(tickets))
	for i := range tickets {
		items = append(items, tickets[i].ToList())
	}
	return items, count, nil
}

func (s *Service) GetTicket(ctx context.Context, id, userID int64) (*models.TicketList, error) {
	ticket, err := s.DB.GetTicket(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	item := ticket.ToList()
	if code, err := s.QR.ForTicketBase64(*ticket); err == nil {
		item.QRCode = code
	}
	return &item, nil
}

func (s *Service) attachQRCodes(order *models.Order, resp *models.OrderResponse) {
	for i, ticket := range order.Tickets {
		if i >= len(resp.Tickets) {
			break
		}
		code, err := s.QR.ForTicketBase64(*ticket)
		if err != nil {
			s.Logger.Warn("QR", fmt.Sprintf("failed to render QR for ticket %d: %v", ticket.ID, err))
			continue
		}
		resp.Tickets[i].QRCode = code
	}
}

func (s *Service) countFailure(reason string) {
	if s.Metrics != nil {
		s.Metrics.BookingFailuresTotal.WithLabelValues(reason).Inc()
	}
}
