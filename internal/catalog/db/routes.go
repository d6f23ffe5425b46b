package db

import (
	"context"

	"flight-service/internal/apperrors"
	"flight-service/internal/models"
)

func (d *DB) ListRoutes(ctx context.Context, limit, offset int) ([]models.Route, int, error) {
	routes := make([]models.Route, 0)
	count, err := d.Bun.NewSelect().
		Model(&routes).
		Relation("Source").
		Relation("Destination").
		Order("route.id ASC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return routes, count, nil
}

func (d *DB) GetRoute(ctx context.Context, id int64) (*models.Route, error) {
	route := new(models.Route)
	err := d.Bun.NewSelect().
		Model(route).
		Relation("Source").
		Relation("Destination").
		Where("route.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, translateRead(err)
	}
	return route, nil
}

// CreateRoute requires both airports to exist. The same airport on both
// ends is allowed.
func (d *DB) CreateRoute(ctx context.Context, route *models.Route) error {
	if err := d.checkRouteAirports(ctx, route); err != nil {
		return err
	}
	_, err := d.Bun.NewInsert().Model(route).Exec(ctx)
	return err
}

func (d *DB) UpdateRoute(ctx context.Context, route *models.Route) error {
	if err := d.checkRouteAirports(ctx, route); err != nil {
		return err
	}
	res, err := d.Bun.NewUpdate().
		Model(route).
		Column("source_id", "destination_id", "distance").
		Where("id = ?", route.ID).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) DeleteRoute(ctx context.Context, id int64) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Route)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) checkRouteAirports(ctx context.Context, route *models.Route) error {
	for _, id := range []int64{route.SourceID, route.DestinationID} {
		ok, err := d.exists(ctx, (*models.Airport)(nil), id)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrNotFound
		}
	}
	return nil
}
