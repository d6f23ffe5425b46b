package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"flight-service/internal/apperrors"
	"flight-service/internal/models"

	"github.com/uptrace/bun"
)

const duplicateSeatMsg = "this seat is already taken for this flight"

type DB struct {
	Bun *bun.DB
}

func New(bunDB *bun.DB) *DB {
	return &DB{Bun: bunDB}
}

// CreateOrderWithTickets creates one order and all of its tickets in a
// single transaction. Each ticket is validated against its flight's
// airplane before the insert; a validation failure, a missing flight or a
// duplicate seat rolls the whole order back.
func (d *DB) CreateOrderWithTickets(ctx context.Context, userID int64, specs []models.TicketSpec) (*models.Order, error) {
	order := &models.Order{UserID: userID, CreatedAt: time.Now().UTC()}

	err := d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}

		for _, spec := range specs {
			flight := new(models.Flight)
			err := tx.NewSelect().
				Model(flight).
				Relation("Airplane").
				Where("flight.id = ?", spec.FlightID).
				Scan(ctx)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return apperrors.ErrNotFound
				}
				return err
			}

			// Same rule the request boundary already ran; the write path
			// repeats it so nothing invalid can reach the insert.
			if err := models.ValidateTicket(spec.Row, spec.Seat, flight.Airplane); err != nil {
				return err
			}

			ticket := &models.Ticket{
				Row:      spec.Row,
				Seat:     spec.Seat,
				FlightID: spec.FlightID,
				OrderID:  order.ID,
			}
			if _, err := tx.NewInsert().Model(ticket).Exec(ctx); err != nil {
				return apperrors.TranslateWrite(err, duplicateSeatMsg)
			}
			order.Tickets = append(order.Tickets, ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders returns one page of the user's orders, newest first, with
// tickets and their flight summaries attached.
func (d *DB) ListOrders(ctx context.Context, userID int64, limit, offset int) ([]models.Order, int, error) {
	orders := make([]models.Order, 0)
	count, err := d.Bun.NewSelect().
		Model(&orders).
		Relation("Tickets", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("ticket.row ASC", "ticket.seat ASC")
		}).
		Relation("Tickets.Flight.Route.Source").
		Relation("Tickets.Flight.Route.Destination").
		Relation("Tickets.Flight.Airplane").
		Where("o.user_id = ?", userID).
		Order("o.created_at DESC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return orders, count, nil
}

// GetOrder fetches one order scoped to its owner; other users get a
// not-found, never a peek at someone else's booking.
func (d *DB) GetOrder(ctx context.Context, id, userID int64) (*models.Order, error) {
	order := new(models.Order)
	err := d.Bun.NewSelect().
		Model(order).
		Relation("Tickets", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("ticket.row ASC", "ticket.seat ASC")
		}).
		Relation("Tickets.Flight.Route.Source").
		Relation("Tickets.Flight.Route.Destination").
		Relation("Tickets.Flight.Airplane").
		Where("o.id = ?", id).
		Where("o.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

// CancelOrder deletes the order and its tickets, owner-scoped. The seats
// become available again immediately.
func (d *DB) CancelOrder(ctx context.Context, id, userID int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Order)(nil)).
			Where("id = ?", id).
			Where("user_id = ?", userID).
			Exec(ctx)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return apperrors.ErrNotFound
		}
		_, err = tx.NewDelete().
			Model((*models.Ticket)(nil)).
			Where("order_id = ?", id).
			Exec(ctx)
		return err
	})
}

// ---------------- TICKETS (read only) ----------------

// ListTickets pages through the user's tickets ordered by row then seat.
func (d *DB) ListTickets(ctx context.Context, userID int64, limit, offset int) ([]models.Ticket, int, error) {
	tickets := make([]models.Ticket, 0)
	count, err := d.Bun.NewSelect().
		Model(&tickets).
		Relation("Flight.Route.Source").
		Relation("Flight.Route.Destination").
		Relation("Flight.Airplane").
		Join("JOIN orders AS o ON o.id = ticket.order_id").
		Where("o.user_id = ?", userID).
		Order("ticket.row ASC", "ticket.seat ASC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return tickets, count, nil
}

func (d *DB) GetTicket(ctx context.Context, id, userID int64) (*models.Ticket, error) {
	ticket := new(models.Ticket)
	err := d.Bun.NewSelect().
		Model(ticket).
		Relation("Flight.Route.Source").
		Relation("Flight.Route.Destination").
		Relation("Flight.Airplane").
		Join("JOIN orders AS o ON o.id = ticket.order_id").
		Where("ticket.id = ?", id).
		Where("o.user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return ticket, nil
}

// GetFlightAirplane loads the airplane assigned to a flight for the
// request-boundary seat validation.
func (d *DB) GetFlightAirplane(ctx context.Context, flightID int64) (*models.Airplane, error) {
	flight := new(models.Flight)
	err := d.Bun.NewSelect().
		Model(flight).
		Relation("Airplane").
		Where("flight.id = ?", flightID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return flight.Airplane, nil
}

// CountTicketsForFlight backs the availability figure used by tests and
// the flight views.
func (d *DB) CountTicketsForFlight(ctx context.Context, flightID int64) (int, error) {
	return d.Bun.NewSelect().
		Model((*models.Ticket)(nil)).
		Where("flight_id = ?", flightID).
		Count(ctx)
}
