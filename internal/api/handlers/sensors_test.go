package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/plant-telemetry/internal/api/handlers"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	storeMocks "github.com/donaldgifford/plant-telemetry/internal/store/mocks"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func levelSensor() *domain.Sensor {
	sn := domain.NewSensor(domain.Device{ID: 1, Code: "S-01", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	sn.RangeMin = ptr(10.0)
	sn.RangeMax = ptr(90.0)
	return sn
}

func newSensorsAPI(t *testing.T, ms *storeMocks.MockStore) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	handlers.RegisterSensorRoutes(api, handlers.NewSensorsHandler(ms))
	return api
}

func TestSensorsHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns sensors",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSensors(mock.Anything).Return([]domain.Sensor{*levelSensor()}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"S-01"`,
		},
		{
			name: "empty catalog",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSensors(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListSensors(mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "db down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newSensorsAPI(t, ms).Get("/api/v1/sensors")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestSensorsHandler_Create(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       map[string]any
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "level sensor starts active",
			body: map[string]any{"code": "S-01", "name": "Nivel TK1", "kind": "LEVEL", "unit": "cm"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateSensor(mock.Anything, mock.MatchedBy(func(s *domain.Sensor) bool {
					return s.Code == "S-01" && s.Active
				})).Run(func(_ context.Context, s *domain.Sensor) { s.ID = 1 }).Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"active":true`,
		},
		{
			name: "pH sensor starts inactive",
			body: map[string]any{"code": "PH-01", "name": "pH TK1", "kind": "PH", "unit": "pH"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateSensor(mock.Anything, mock.MatchedBy(func(s *domain.Sensor) bool {
					return s.Kind == domain.SensorPH && !s.Active
				})).Return(nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"active":false`,
		},
		{
			name:       "inverted range",
			body:       map[string]any{"code": "S-01", "name": "Nivel", "kind": "LEVEL", "unit": "cm", "range_min": 90, "range_max": 10},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "range_min must not exceed range_max",
		},
		{
			name:       "unknown kind",
			body:       map[string]any{"code": "S-01", "name": "Nivel", "kind": "SONAR", "unit": "cm"},
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "duplicate code",
			body: map[string]any{"code": "S-01", "name": "Nivel", "kind": "LEVEL", "unit": "cm"},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().CreateSensor(mock.Anything, mock.Anything).Return(store.ErrConflict).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   "sensor S-01 already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newSensorsAPI(t, ms).Post("/api/v1/sensors", tt.body)
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestSensorsHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		setupMock      func(*storeMocks.MockStore)
		wantStatus     int
		wantOutOfRange bool
		wantBody       string
	}{
		{
			name: "latest reading out of range",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(levelSensor(), nil).Once()
				m.EXPECT().LatestReading(mock.Anything, int64(1)).
					Return(&domain.Reading{ID: 7, SensorID: 1, Value: 95, Timestamp: time.Now()}, nil).Once()
			},
			wantStatus:     http.StatusOK,
			wantOutOfRange: true,
			wantBody:       `"latest_reading"`,
		},
		{
			name: "no readings is in range",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(levelSensor(), nil).Once()
				m.EXPECT().LatestReading(mock.Anything, int64(1)).Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"code":"S-01"`,
		},
		{
			name: "unknown sensor",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "sensor not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newSensorsAPI(t, ms).Get("/api/v1/sensors/S-01")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)

			if tt.wantStatus == http.StatusOK {
				var got struct {
					OutOfRange bool `json:"out_of_range"`
				}
				require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
				assert.Equal(t, tt.wantOutOfRange, got.OutOfRange)
			}
		})
	}
}

func TestSensorsHandler_SetActive(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ph := domain.NewSensor(domain.Device{ID: 4, Code: "PH-01"}, domain.SensorPH, "pH")
	ms.EXPECT().GetSensorByCode(mock.Anything, "PH-01").Return(ph, nil).Once()
	ms.EXPECT().SetSensorActive(mock.Anything, int64(4), true).Return(nil).Once()

	resp := newSensorsAPI(t, ms).Put("/api/v1/sensors/PH-01/active", map[string]any{"active": true})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"active":true`)
}

func TestSensorsHandler_ListReadings(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(levelSensor(), nil).Once()
	ms.EXPECT().ListReadings(mock.Anything, mock.MatchedBy(func(q *store.ReadingQuery) bool {
		return *q.SensorID == 1 && q.Limit == 2 && q.Offset == 4
	})).Return([]domain.Reading{{ID: 9, SensorID: 1, Value: 12.5}}, nil).Once()

	resp := newSensorsAPI(t, ms).Get("/api/v1/sensors/S-01/readings?limit=2&offset=4")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"value":12.5`)
	assert.Contains(t, resp.Body.String(), `"limit":2`)
	assert.Contains(t, resp.Body.String(), `"offset":4`)
}

func TestSensorsHandler_ListReadings_DefaultPage(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(levelSensor(), nil).Once()
	ms.EXPECT().ListReadings(mock.Anything, mock.Anything).Return(nil, nil).Once()

	resp := newSensorsAPI(t, ms).Get("/api/v1/sensors/S-01/readings")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"readings":[]`)
	assert.Contains(t, resp.Body.String(), `"limit":50`)
}

func TestSensorsHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{
			name: "deletes sensor",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(levelSensor(), nil).Once()
				m.EXPECT().DeleteSensor(mock.Anything, int64(1)).Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "unknown sensor",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetSensorByCode(mock.Anything, "S-01").Return(nil, store.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			resp := newSensorsAPI(t, ms).Delete("/api/v1/sensors/S-01")
			assert.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
