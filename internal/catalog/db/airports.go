package db

import (
	"context"
	"strings"

	"flight-service/internal/models"
)

// ListAirports returns one page of airports, optionally filtered by a
// case-insensitive name substring, plus the total count for the filter.
func (d *DB) ListAirports(ctx context.Context, name string, limit, offset int) ([]models.Airport, int, error) {
	airports := make([]models.Airport, 0)
	q := d.Bun.NewSelect().Model(&airports).Order("id ASC")
	if name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	count, err := q.Limit(limit).Offset(offset).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return airports, count, nil
}

func (d *DB) GetAirport(ctx context.Context, id int64) (*models.Airport, error) {
	airport := new(models.Airport)
	err := d.Bun.NewSelect().Model(airport).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, translateRead(err)
	}
	return airport, nil
}

func (d *DB) CreateAirport(ctx context.Context, airport *models.Airport) error {
	_, err := d.Bun.NewInsert().Model(airport).Exec(ctx)
	return err
}

func (d *DB) UpdateAirport(ctx context.Context, airport *models.Airport) error {
	res, err := d.Bun.NewUpdate().
		Model(airport).
		Column("name", "closest_big_city").
		Where("id = ?", airport.ID).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) DeleteAirport(ctx context.Context, id int64) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Airport)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return requireAffected(res, err)
}
