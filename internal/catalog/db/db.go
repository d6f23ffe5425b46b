package db

import (
	"context"
	"database/sql"
	"errors"

	"flight-service/internal/apperrors"

	"github.com/uptrace/bun"
)

// DB is the storage layer for the catalog resources: airports, airplane
// types, airplanes, crews and routes.
type DB struct {
	Bun *bun.DB
}

func New(bunDB *bun.DB) *DB {
	return &DB{Bun: bunDB}
}

// translateRead maps sql.ErrNoRows onto the domain not-found error.
func translateRead(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return err
}

// requireAffected turns a zero-row update/delete into a not-found error.
func requireAffected(res sql.Result, err error) error {
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
}

// exists reports whether a row with the given id exists for the model.
func (d *DB) exists(ctx context.Context, model interface{}, id int64) (bool, error) {
	return d.Bun.NewSelect().Model(model).Where("id = ?", id).Exists(ctx)
}
