package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuelstations/config"
	"fuelstations/middleware"
)

func TestRootIssuesUsableToken(t *testing.T) {
	api := setupAPI(t)

	rec := doJSON(t, api, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeMap(t, rec)
	assert.Equal(t, config.APIName, resp["name"])

	tokenStr, ok := resp["jwt"].(string)
	require.True(t, ok)
	require.NotEmpty(t, tokenStr)

	claims := &middleware.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return config.JWTKey(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	assert.Equal(t, "1234567890", claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.WithinDuration(t, claims.IssuedAt.Time.Add(config.TokenTTL()), claims.ExpiresAt.Time, time.Second)

	// The issued token must open the protected routes.
	rec = doJSON(t, api, http.MethodGet, "/stations", nil, tokenStr)
	assert.Equal(t, http.StatusOK, rec.Code)
}
