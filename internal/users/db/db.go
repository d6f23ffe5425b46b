package db

import (
	"context"
	"database/sql"
	"errors"

	"flight-service/internal/apperrors"
	"flight-service/internal/models"

	"github.com/uptrace/bun"
)

type DB struct {
	Bun *bun.DB
}

func New(bunDB *bun.DB) *DB {
	return &DB{Bun: bunDB}
}

// CreateUser inserts a new account; a duplicate email surfaces as a
// constraint error, not a raw driver error.
func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	_, err := d.Bun.NewInsert().Model(user).Exec(ctx)
	return apperrors.TranslateWrite(err, "a user with this email already exists")
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := d.Bun.NewSelect().Model(user).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (d *DB) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := new(models.User)
	err := d.Bun.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
