package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"flight-service/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestIssueAndParseToken(t *testing.T) {
	raw, err := auth.IssueToken(testSecret, time.Hour, 42, true)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := auth.ParseToken(testSecret, raw)
	require.NoError(t, err)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.True(t, claims.IsStaff)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	raw, err := auth.IssueToken(testSecret, time.Hour, 42, false)
	require.NoError(t, err)

	_, err = auth.ParseToken("another-secret", raw)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	raw, err := auth.IssueToken(testSecret, -time.Minute, 42, false)
	require.NoError(t, err)

	_, err = auth.ParseToken(testSecret, raw)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := auth.ParseToken(testSecret, "not-a-token")
	assert.Error(t, err)
}

func TestExtractTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/user/me", nil)
	r.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, err := auth.ExtractTokenFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)
}

func TestExtractTokenMissingHeader(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/user/me", nil)

	_, err := auth.ExtractTokenFromRequest(r)
	assert.Error(t, err)
}

func TestExtractTokenBadFormat(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/user/me", nil)
	r.Header.Set("Authorization", "Token abc")

	_, err := auth.ExtractTokenFromRequest(r)
	assert.Error(t, err)
}

func TestClaimsContextRoundTrip(t *testing.T) {
	raw, err := auth.IssueToken(testSecret, time.Hour, 7, false)
	require.NoError(t, err)
	claims, err := auth.ParseToken(testSecret, raw)
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	ctx := auth.SetClaims(r.Context(), claims)

	got := auth.ClaimsFrom(ctx)
	require.NotNil(t, got)
	userID, err := got.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	assert.Nil(t, auth.ClaimsFrom(r.Context()))
}
