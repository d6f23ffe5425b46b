package utils

import (
	"net/http"
	"strconv"

	"flight-service/internal/apperrors"

	"github.com/go-chi/chi/v5"
)

// URLParamInt64 parses a numeric chi URL parameter. A non-numeric id can
// never match a stored row, so it is reported as not found.
func URLParamInt64(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrNotFound
	}
	return id, nil
}

// QueryInt64 parses an optional numeric query parameter; empty means
// absent, malformed is a client error.
func QueryInt64(r *http.Request, key string) (int64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperrors.NewValidation("invalid " + key + " value: " + strconv.Quote(raw))
	}
	return value, nil
}
