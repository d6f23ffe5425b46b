package db

import (
	"context"
	"strings"

	"flight-service/internal/models"
)

// ListCrews matches the search term against first or last name,
// case-insensitively.
func (d *DB) ListCrews(ctx context.Context, search string, limit, offset int) ([]models.Crew, int, error) {
	crews := make([]models.Crew, 0)
	q := d.Bun.NewSelect().Model(&crews).Order("id ASC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", pattern, pattern)
	}
	count, err := q.Limit(limit).Offset(offset).ScanAndCount(ctx)
	if err != nil {
		return nil, 0, err
	}
	return crews, count, nil
}

func (d *DB) GetCrew(ctx context.Context, id int64) (*models.Crew, error) {
	crew := new(models.Crew)
	err := d.Bun.NewSelect().Model(crew).Where("id = ?", id).Scan(ctx)
	if err != nil {
		return nil, translateRead(err)
	}
	return crew, nil
}

func (d *DB) CreateCrew(ctx context.Context, crew *models.Crew) error {
	_, err := d.Bun.NewInsert().Model(crew).Exec(ctx)
	return err
}

func (d *DB) UpdateCrew(ctx context.Context, crew *models.Crew) error {
	res, err := d.Bun.NewUpdate().
		Model(crew).
		Column("first_name", "last_name").
		Where("id = ?", crew.ID).
		Exec(ctx)
	return requireAffected(res, err)
}

func (d *DB) DeleteCrew(ctx context.Context, id int64) error {
	res, err := d.Bun.NewDelete().
		Model((*models.Crew)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	return requireAffected(res, err)
}
