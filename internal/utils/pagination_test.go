package utils_test

import (
	"net/http/httptest"
	"testing"

	"flight-service/internal/apperrors"
	"flight-service/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageParamsDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/flight-service/orders", nil)

	params, err := utils.ParsePageParams(r, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 2, params.PageSize)
	assert.Equal(t, 2, params.Limit())
	assert.Equal(t, 0, params.Offset())
}

func TestParsePageParamsExplicit(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/flight-service/orders?page=3&page_size=5", nil)

	params, err := utils.ParsePageParams(r, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, 10, params.Offset())
}

func TestParsePageParamsCapsPageSize(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/flight-service/tickets?page_size=500", nil)

	params, err := utils.ParsePageParams(r, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, params.PageSize)
}

func TestParsePageParamsRejectsGarbage(t *testing.T) {
	for _, target := range []string{
		"/api/flight-service/orders?page=abc",
		"/api/flight-service/orders?page=0",
		"/api/flight-service/orders?page=-1",
		"/api/flight-service/orders?page_size=abc",
		"/api/flight-service/orders?page_size=0",
	} {
		r := httptest.NewRequest("GET", target, nil)
		_, err := utils.ParsePageParams(r, 2)
		assert.True(t, apperrors.IsValidation(err), "expected validation error for %s", target)
	}
}

func TestNewPagedResponse(t *testing.T) {
	params := utils.PageParams{Page: 2, PageSize: 10}
	resp := utils.NewPagedResponse(params, 25, []string{"a", "b"})

	assert.Equal(t, 25, resp.Count)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
}
