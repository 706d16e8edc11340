package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/plant-telemetry/internal/config"
	"github.com/donaldgifford/plant-telemetry/internal/engine"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewServer_Routes(t *testing.T) {
	ctx := context.Background()
	log := quietLogger()
	cfg := config.Default()

	st, closeStore, err := openStore(ctx, &cfg.Database, log)
	require.NoError(t, err)
	defer closeStore()

	sn := domain.NewSensor(domain.Device{Code: "S-01", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	require.NoError(t, st.CreateSensor(ctx, sn))

	e := newServer(cfg, st, engine.NewEngine(st, engine.WithLogger(log)), log)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: `"ok"`},
		{name: "readyz", method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK, wantBody: `"ready"`},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK, wantBody: "plant_"},
		{
			name: "ingest accepted", method: http.MethodPost, path: "/api/v1/readings/ingest",
			body: `{"sensor_codigo":"S-01","valor":12}`, wantStatus: http.StatusCreated, wantBody: `"ok":true`,
		},
		{
			name: "ingest unknown sensor", method: http.MethodPost, path: "/api/v1/readings/ingest",
			body: `{"sensor_codigo":"S-99","valor":12}`, wantStatus: http.StatusBadRequest, wantBody: "sensor not found: S-99",
		},
		{name: "sensor detail", method: http.MethodGet, path: "/api/v1/sensors/S-01", wantStatus: http.StatusOK, wantBody: `"S-01"`},
		{name: "alerts", method: http.MethodGet, path: "/api/v1/alerts", wantStatus: http.StatusOK, wantBody: `"alerts"`},
		{name: "openapi", method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "plant-telemetry API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestOpenStore_Memory(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	st, closeStore, err := openStore(context.Background(), &cfg.Database, quietLogger())
	require.NoError(t, err)
	defer closeStore()

	assert.IsType(t, &store.MemoryStore{}, st)
}
