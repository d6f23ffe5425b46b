package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"flight-service/internal/apperrors"
	"flight-service/internal/booking/db"
	"flight-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type fixture struct {
	db     *db.DB
	flight *models.Flight
}

// setup creates the schema and one bookable flight on a 5x4 airplane.
func setup(t *testing.T) fixture {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	bunDB.RegisterModel((*models.FlightCrew)(nil))

	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Airport)(nil),
		(*models.AirplaneType)(nil),
		(*models.Airplane)(nil),
		(*models.Route)(nil),
		(*models.Flight)(nil),
		(*models.Order)(nil),
		(*models.Ticket)(nil),
	} {
		if err := bunDB.ResetModel(ctx, model); err != nil {
			t.Fatalf("failed to create tables: %v", err)
		}
	}

	source := &models.Airport{Name: "Heathrow", ClosestBigCity: "London"}
	destination := &models.Airport{Name: "Narita", ClosestBigCity: "Tokyo"}
	for _, airport := range []*models.Airport{source, destination} {
		if _, err := bunDB.NewInsert().Model(airport).Exec(ctx); err != nil {
			t.Fatalf("failed to seed airport: %v", err)
		}
	}

	airplaneType := &models.AirplaneType{Name: "Jet"}
	if _, err := bunDB.NewInsert().Model(airplaneType).Exec(ctx); err != nil {
		t.Fatalf("failed to seed airplane type: %v", err)
	}
	airplane := &models.Airplane{Name: "Boeing 777", Rows: 5, Seats: 4, AirplaneTypeID: airplaneType.ID}
	if _, err := bunDB.NewInsert().Model(airplane).Exec(ctx); err != nil {
		t.Fatalf("failed to seed airplane: %v", err)
	}

	route := &models.Route{SourceID: source.ID, DestinationID: destination.ID, Distance: 9600}
	if _, err := bunDB.NewInsert().Model(route).Exec(ctx); err != nil {
		t.Fatalf("failed to seed route: %v", err)
	}

	flight := &models.Flight{
		RouteID:       route.ID,
		AirplaneID:    airplane.ID,
		DepartureTime: time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2026, 6, 2, 20, 0, 0, 0, time.UTC),
	}
	if _, err := bunDB.NewInsert().Model(flight).Exec(ctx); err != nil {
		t.Fatalf("failed to seed flight: %v", err)
	}

	return fixture{db: db.New(bunDB), flight: flight}
}

func TestCreateOrderWithTickets(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 1},
		{FlightID: f.flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Len(t, order.Tickets, 2)

	count, err := f.db.CountTicketsForFlight(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOrderRollsBackWhenOneSeatIsInvalid(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// Second seat is out of bounds for the 5x4 airplane: nothing commits.
	_, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 1},
		{FlightID: f.flight.ID, Row: 6, Seat: 1},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "Row should be in range (1, 5), not 6")

	count, err := f.db.CountTicketsForFlight(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	orders, total, err := f.db.ListOrders(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, orders)
}

func TestDuplicateSeatIsRejected(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 2, Seat: 3},
	})
	require.NoError(t, err)

	// Another user tries the same seat on the same flight.
	_, err = f.db.CreateOrderWithTickets(ctx, 2, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 2, Seat: 3},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConstraint(err))

	count, err := f.db.CountTicketsForFlight(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOrderWithUnknownFlightRollsBack(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: 999, Row: 1, Seat: 1},
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	_, total, err := f.db.ListOrders(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestOrdersAreOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	mine, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	theirs, err := f.db.CreateOrderWithTickets(ctx, 2, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)

	orders, total, err := f.db.ListOrders(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)

	// Another user's order reads as not found.
	_, err = f.db.GetOrder(ctx, theirs.ID, 1)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	got, err := f.db.GetOrder(ctx, mine.ID, 1)
	require.NoError(t, err)
	require.Len(t, got.Tickets, 1)
	require.NotNil(t, got.Tickets[0].Flight)
	assert.Equal(t, "Heathrow", got.Tickets[0].Flight.Route.Source.Name)
}

func TestOrdersAreListedNewestFirst(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	older, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 1},
	})
	require.NoError(t, err)

	newer, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)

	// Pin the timestamps apart so the ordering does not hinge on clock
	// resolution.
	for id, createdAt := range map[int64]time.Time{
		older.ID: time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		newer.ID: time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC),
	} {
		_, err := f.db.Bun.NewUpdate().
			Model((*models.Order)(nil)).
			Set("created_at = ?", createdAt).
			Where("id = ?", id).
			Exec(ctx)
		require.NoError(t, err)
	}

	orders, total, err := f.db.ListOrders(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
}

func TestCancelOrderFreesSeats(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	order, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 3, Seat: 3},
	})
	require.NoError(t, err)

	// Someone else cannot cancel it.
	err = f.db.CancelOrder(ctx, order.ID, 2)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	require.NoError(t, f.db.CancelOrder(ctx, order.ID, 1))

	count, err := f.db.CountTicketsForFlight(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// The seat is bookable again.
	_, err = f.db.CreateOrderWithTickets(ctx, 2, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 3, Seat: 3},
	})
	assert.NoError(t, err)
}

func TestTicketsAreOwnerScoped(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	mine, err := f.db.CreateOrderWithTickets(ctx, 1, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 1},
		{FlightID: f.flight.ID, Row: 2, Seat: 1},
	})
	require.NoError(t, err)

	_, err = f.db.CreateOrderWithTickets(ctx, 2, []models.TicketSpec{
		{FlightID: f.flight.ID, Row: 1, Seat: 2},
	})
	require.NoError(t, err)

	tickets, total, err := f.db.ListTickets(ctx, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, tickets, 2)
	// Ordered by row then seat.
	assert.Equal(t, 1, tickets[0].Row)
	assert.Equal(t, 2, tickets[1].Row)

	got, err := f.db.GetTicket(ctx, mine.Tickets[0].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, mine.Tickets[0].ID, got.ID)

	_, err = f.db.GetTicket(ctx, mine.Tickets[0].ID, 2)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestGetFlightAirplane(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	airplane, err := f.db.GetFlightAirplane(ctx, f.flight.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, airplane.Rows)
	assert.Equal(t, 4, airplane.Seats)

	_, err = f.db.GetFlightAirplane(ctx, 999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
