package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fuelstations/config"
	"fuelstations/middleware"
	"fuelstations/models"
	"fuelstations/routes"
)

// setupAPI wires the full router against a fresh in-memory database. The
// pool is capped at one connection so every request sees the same sqlite
// memory instance and concurrent writes serialize.
func setupAPI(t *testing.T) http.Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Station{}, &models.Pump{}))

	config.DB = db
	return routes.RegisterRoutes()
}

func authToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateToken("1234567890")
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeStation(t *testing.T, rec *httptest.ResponseRecorder) models.Station {
	t.Helper()
	var out models.Station
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func stationBody() map[string]any {
	return map[string]any{
		"id_name":   "MIGROL_100041",
		"name":      "Migrol Tankstelle",
		"latitude":  47.3943939,
		"longitude": 8.52981,
		"city":      "Zürich",
		"address":   "Scheffelstrasse 16",
	}
}

func pumpBody(stationID uint) map[string]any {
	return map[string]any{
		"id_name":    "10001",
		"fuel_type":  "BENZIN_95",
		"price":      1.68,
		"available":  true,
		"station_id": stationID,
	}
}
