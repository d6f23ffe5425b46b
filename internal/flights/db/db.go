package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"flight-service/internal/apperrors"
	"flight-service/internal/models"

	"github.com/uptrace/bun"
)

// availabilityExpr computes seats remaining as capacity minus booked
// tickets. Recomputed on every query; the value is advisory only.
const availabilityExpr = "(airplane.rows * airplane.seats) - " +
	"(SELECT COUNT(*) FROM tickets AS t WHERE t.flight_id = flight.id) AS tickets_available"

type DB struct {
	Bun *bun.DB
}

func New(bunDB *bun.DB) *DB {
	// m2m queries need the join model registered up front.
	bunDB.RegisterModel((*models.FlightCrew)(nil))
	return &DB{Bun: bunDB}
}

// ListFlights applies the date/source/destination filters conjunctively
// and annotates every row with tickets_available.
func (d *DB) ListFlights(ctx context.Context, filter models.FlightFilter, limit, offset int) ([]models.Flight, int, error) {
	flights := make([]models.Flight, 0)
	q := d.Bun.NewSelect().
		Model(&flights).
		ColumnExpr("flight.*").
		ColumnExpr(availabilityExpr).
		Relation("Route.Source").
		Relation("Route.Destination").
		Relation("Airplane").
		Relation("Crew").
		Order("flight.id ASC")

	if filter.Date != nil {
		dayStart := filter.Date.Truncate(24 * time.Hour)
		q = q.Where("flight.departure_time >= ?", dayStart).
			Where("flight.departure_time < ?", dayStart.Add(24*time.Hour))
	}
	if filter.Source != "" {
		q = q.Where("LOWER(route__source.name) LIKE ?", "%"+strings.ToLower(filter.Source)+"%")
	}
	if filter.Destination != "" {
		q = q.Where("LOWER(route__destination.name) LIKE ?", "%"+strings.ToLower(filter.Destination)+"%")
	}

	count, err := q.Limit(limit).Offset(offset).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return flights, count, nil
}

// GetFlight loads the full detail graph: route with airports, airplane
// with its type, crew, booked seats and availability.
func (d *DB) GetFlight(ctx context.Context, id int64) (*models.Flight, error) {
	flight := new(models.Flight)
	err := d.Bun.NewSelect().
		Model(flight).
		ColumnExpr("flight.*").
		ColumnExpr(availabilityExpr).
		Relation("Route.Source").
		Relation("Route.Destination").
		Relation("Airplane.AirplaneType").
		Relation("Crew").
		Relation("Tickets", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("ticket.row ASC", "ticket.seat ASC")
		}).
		Where("flight.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return flight, nil
}

// CreateFlight inserts the flight and its crew assignments in one
// transaction. Route and airplane must exist.
func (d *DB) CreateFlight(ctx context.Context, flight *models.Flight, crewIDs []int64) error {
	if err := d.checkRefs(ctx, flight, crewIDs); err != nil {
		return err
	}
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(flight).Exec(ctx); err != nil {
			return err
		}
		return insertCrew(ctx, tx, flight.ID, crewIDs)
	})
}

// UpdateFlight rewrites the flight row and replaces its crew set.
func (d *DB) UpdateFlight(ctx context.Context, flight *models.Flight, crewIDs []int64) error {
	if err := d.checkRefs(ctx, flight, crewIDs); err != nil {
		return err
	}
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(flight).
			Column("route_id", "airplane_id", "departure_time", "arrival_time").
			Where("id = ?", flight.ID).
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
		if _, err := tx.NewDelete().
			Model((*models.FlightCrew)(nil)).
			Where("flight_id = ?", flight.ID).
			Exec(ctx); err != nil {
			return err
		}
		return insertCrew(ctx, tx, flight.ID, crewIDs)
	})
}

// DeleteFlight removes the flight together with its crew assignments and
// tickets (the same cascade the schema declares).
func (d *DB) DeleteFlight(ctx context.Context, id int64) error {
	return d.Bun.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.FlightCrew)(nil)).
			Where("flight_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().
			Model((*models.Ticket)(nil)).
			Where("flight_id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*models.Flight)(nil)).
			Where("id = ?", id).
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
		return nil
	})
}

func insertCrew(ctx context.Context, tx bun.Tx, flightID int64, crewIDs []int64) error {
	if len(crewIDs) == 0 {
		return nil
	}
	assignments := make([]models.FlightCrew, 0, len(crewIDs))
	for _, crewID := range crewIDs {
		assignments = append(assignments, models.FlightCrew{FlightID: flightID, CrewID: crewID})
	}
	_, err := tx.NewInsert().Model(&assignments).Exec(ctx)
	return err
}

func (d *DB) checkRefs(ctx context.Context, flight *models.Flight, crewIDs []int64) error {
	ok, err := d.Bun.NewSelect().
		Model((*models.Route)(nil)).
		Where("id = ?", flight.RouteID).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	ok, err = d.Bun.NewSelect().
		Model((*models.Airplane)(nil)).
		Where("id = ?", flight.AirplaneID).
		Exists(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	for _, crewID := range crewIDs {
		ok, err := d.Bun.NewSelect().
			Model((*models.Crew)(nil)).
			Where("id = ?", crewID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotFound
		}
	}
	return nil
}
