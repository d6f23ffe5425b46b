package db

import (
	"context"
	"strings"

	"flight-service/internal/apperrors"
	"flight-service/internal/models"
)

// ---------------- AIRPLANE TYPES ----------------

func (d *DB) ListAirplaneTypes(ctx context.Context, limit, offset int) ([]models.AirplaneType, int, error) {
	types := make([]models.AirplaneType, 0)
	count, err := d.Bun.NewSelect().
		Model(&types).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return types, count, nil
}

func (d *DB) GetAirplaneType(ctx context.Context, id int64) (*models.AirplaneType, error) {
	airplaneType := new(models.AirplaneType)
	err := d.Bun.NewSelect().Model(airplaneType).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, translateRead(err)
	}
	return airplaneType, nil
}

func (d *DB) CreateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error {
	_, err := d.Bun.NewInsert().Model(airplaneType).Exec(ctx)
	return err
}

func (d *DB) UpdateAirplaneType(ctx context.Context, airplaneType *models.AirplaneType) error {
	res, err := d.Bun.NewUpdate().
		Model(airplaneType).
		Column("name").
		Where("id = ?", airplaneType.ID).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) DeleteAirplaneType(ctx context.Context, id int64) error {
	res, err := d.Bun.NewDelete().
		Model((*models.AirplaneType)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return requireAffected(res, err)
}

// ---------------- AIRPLANES ----------------

// ListAirplanes applies the type and name filters conjunctively.
func (d *DB) ListAirplanes(ctx context.Context, filter models.AirplaneFilter, limit, offset int) ([]models.Airplane, int, error) {
	airplanes := make([]models.Airplane, 0)
	q := d.Bun.NewSelect().
		Model(&airplanes).
		Relation("AirplaneType").
		Order("airplane.id ASC")
	if filter.TypeID != 0 {
		q = q.Where("airplane.airplane_type_id = ?", filter.TypeID)
	}
	if filter.Name != "" {
		q = q.Where("LOWER(airplane.name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	count, err := q.Limit(limit).Offset(offset).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return airplanes, count, nil
}

func (d *DB) GetAirplane(ctx context.Context, id int64) (*models.Airplane, error) {
	airplane := new(models.Airplane)
	err := d.Bun.NewSelect().
		Model(airplane).
		Relation("AirplaneType").
		Where("airplane.id = ?", id).
		Scan(ctx)
	if err != nil {
		return nil, translateRead(err)
	}
	return airplane, nil
}

// CreateAirplane rejects a nonexistent airplane type before inserting so
// the caller gets a not-found error rather than a raw constraint failure.
func (d *DB) CreateAirplane(ctx context.Context, airplane *models.Airplane) error {
	ok, err := d.exists(ctx, (*models.AirplaneType)(nil), airplane.AirplaneTypeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	_, err = d.Bun.NewInsert().Model(airplane).Exec(ctx)
	return err
}

func (d *DB) UpdateAirplane(ctx context.Context, airplane *models.Airplane) error {
	ok, err := d.exists(ctx, (*models.AirplaneType)(nil), airplane.AirplaneTypeID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}
	res, err := d.Bun.NewUpdate().
		Model(airplane).
		Column("name", "rows", "seats", "airplane_type_id").
		Where("id = ?", airplane.ID).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) DeleteAirplane(ctx context.Context, id int64) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Airplane)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return requireAffected(res, err)
}
