package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"flight-service/internal/apperrors"
	"flight-service/internal/catalog/db"
	"flight-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())
	ctx := context.Background()
	for _, model := range []interface{}{
		(*models.Airport)(nil),
		(*models.AirplaneType)(nil),
		(*models.Airplane)(nil),
		(*models.Route)(nil),
		(*models.Crew)(nil),
	} {
		if err := bunDB.ResetModel(ctx, model); err != nil {
			t.Fatalf("failed to create tables: %v", err)
		}
	}

	return db.New(bunDB)
}

func TestAirportCRUD(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	airport := &models.Airport{Name: "Heathrow", ClosestBigCity: "London"}
	require.NoError(t, d.CreateAirport(ctx, airport))
	assert.NotZero(t, airport.ID)

	got, err := d.GetAirport(ctx, airport.ID)
	require.NoError(t, err)
	assert.Equal(t, "Heathrow", got.Name)
	assert.Equal(t, "London", got.ClosestBigCity)

	got.ClosestBigCity = "Greater London"
	require.NoError(t, d.UpdateAirport(ctx, got))

	got, err = d.GetAirport(ctx, airport.ID)
	require.NoError(t, err)
	assert.Equal(t, "Greater London", got.ClosestBigCity)

	require.NoError(t, d.DeleteAirport(ctx, airport.ID))
	_, err = d.GetAirport(ctx, airport.ID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestAirportNameFilter(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	for _, airport := range []*models.Airport{
		{Name: "Heathrow", ClosestBigCity: "London"},
		{Name: "Kingsford Smith", ClosestBigCity: "Sydney"},
		{Name: "Gatwick", ClosestBigCity: "London"},
	} {
		require.NoError(t, d.CreateAirport(ctx, airport))
	}

	airports, count, err := d.ListAirports(ctx, "heath", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, airports, 1)
	assert.Equal(t, "Heathrow", airports[0].Name)

	// No filter returns everything.
	_, count, err = d.ListAirports(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// Substring match is case-insensitive.
	airports, _, err = d.ListAirports(ctx, "WICK", 10, 0)
	require.NoError(t, err)
	require.Len(t, airports, 1)
	assert.Equal(t, "Gatwick", airports[0].Name)
}

func TestUpdateMissingAirportReturnsNotFound(t *testing.T) {
	d := setupTestDB(t)

	err := d.UpdateAirport(context.Background(), &models.Airport{ID: 999, Name: "Nowhere", ClosestBigCity: "Nowhere"})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	err = d.DeleteAirport(context.Background(), 999)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCrewSearch(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	for _, crew := range []*models.Crew{
		{FirstName: "Amelia", LastName: "Earhart"},
		{FirstName: "Charles", LastName: "Lindbergh"},
		{FirstName: "Bessie", LastName: "Coleman"},
	} {
		require.NoError(t, d.CreateCrew(ctx, crew))
	}

	// Search matches first name...
	crews, count, err := d.ListCrews(ctx, "amel", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, crews, 1)
	assert.Equal(t, "Amelia", crews[0].FirstName)

	// ...and last name.
	crews, _, err = d.ListCrews(ctx, "lind", 10, 0)
	require.NoError(t, err)
	require.Len(t, crews, 1)
	assert.Equal(t, "Lindbergh", crews[0].LastName)

	_, count, err = d.ListCrews(ctx, "", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAirplaneFilters(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	jet := &models.AirplaneType{Name: "Jet"}
	prop := &models.AirplaneType{Name: "Propeller"}
	require.NoError(t, d.CreateAirplaneType(ctx, jet))
	require.NoError(t, d.CreateAirplaneType(ctx, prop))

	for _, airplane := range []*models.Airplane{
		{Name: "Boeing 737", Rows: 20, Seats: 6, AirplaneTypeID: jet.ID},
		{Name: "Airbus A320", Rows: 25, Seats: 6, AirplaneTypeID: jet.ID},
		{Name: "Cessna 208", Rows: 4, Seats: 3, AirplaneTypeID: prop.ID},
	} {
		require.NoError(t, d.CreateAirplane(ctx, airplane))
	}

	airplanes, count, err := d.ListAirplanes(ctx, models.AirplaneFilter{TypeID: jet.ID}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, airplanes, 2)

	airplanes, count, err = d.ListAirplanes(ctx, models.AirplaneFilter{Name: "boeing"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, airplanes, 1)
	assert.Equal(t, "Boeing 737", airplanes[0].Name)

	// Both filters combine with AND.
	_, count, err = d.ListAirplanes(ctx, models.AirplaneFilter{TypeID: prop.ID, Name: "boeing"}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCreateAirplaneRequiresExistingType(t *testing.T) {
	d := setupTestDB(t)

	err := d.CreateAirplane(context.Background(), &models.Airplane{
		Name: "Ghost Plane", Rows: 10, Seats: 4, AirplaneTypeID: 12345,
	})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestRouteRequiresExistingAirports(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	source := &models.Airport{Name: "Heathrow", ClosestBigCity: "London"}
	require.NoError(t, d.CreateAirport(ctx, source))

	err := d.CreateRoute(ctx, &models.Route{SourceID: source.ID, DestinationID: 999, Distance: 100})
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	destination := &models.Airport{Name: "Gatwick", ClosestBigCity: "London"}
	require.NoError(t, d.CreateAirport(ctx, destination))

	route := &models.Route{SourceID: source.ID, DestinationID: destination.ID, Distance: 42}
	require.NoError(t, d.CreateRoute(ctx, route))

	got, err := d.GetRoute(ctx, route.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, got.Distance)
	require.NotNil(t, got.Source)
	require.NotNil(t, got.Destination)
	assert.Equal(t, "Heathrow", got.Source.Name)
	assert.Equal(t, "Gatwick", got.Destination.Name)
}

func TestListPagination(t *testing.T) {
	d := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, d.CreateCrew(ctx, &models.Crew{
			FirstName: "Crew", LastName: string(rune('A' + i)),
		}))
	}

	crews, count, err := d.ListCrews(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Len(t, crews, 2)
}
