package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/plant-telemetry/internal/normalize"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	storeMocks "github.com/donaldgifford/plant-telemetry/internal/store/mocks"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

var errInjected = errors.New("injected failure")

// plant is a catalog with sensor S-01 (no range) wired by rule GT 50 to pump
// A-01, which starts off.
type plant struct {
	store    *store.MemoryStore
	sensor   *domain.Sensor
	actuator *domain.Actuator
	rule     *domain.Rule
}

func newPlant(t *testing.T) *plant {
	t.Helper()
	ctx := context.Background()

	s := store.NewMemoryStore()
	sn := domain.NewSensor(domain.Device{Code: "S-01", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	require.NoError(t, s.CreateSensor(ctx, sn))

	act := domain.NewActuator(domain.Device{Code: "A-01", Name: "Bomba TK1"}, domain.ActuatorPump, "GPIO23")
	require.NoError(t, s.CreateActuator(ctx, act))

	rule := domain.NewRule(sn.ID, domain.CompareGT, 50, "nivel alto")
	rule.ActuatorID = &act.ID
	require.NoError(t, s.CreateRule(ctx, rule))

	return &plant{store: s, sensor: sn, actuator: act, rule: rule}
}

func (p *plant) readings(t *testing.T) []domain.Reading {
	t.Helper()
	readings, err := p.store.ListReadings(context.Background(), &store.ReadingQuery{SensorID: &p.sensor.ID})
	require.NoError(t, err)
	return readings
}

func (p *plant) alerts(t *testing.T) []domain.Alert {
	t.Helper()
	alerts, err := p.store.ListAlerts(context.Background(), &store.AlertQuery{SensorID: &p.sensor.ID})
	require.NoError(t, err)
	return alerts
}

func (p *plant) pumpOn(t *testing.T) bool {
	t.Helper()
	a, err := p.store.GetActuator(context.Background(), p.actuator.ID)
	require.NoError(t, err)
	return a.IsOn
}

// failingStore injects a failure into the ingest transaction after the
// wrapped Tx has already written.
type failingStore struct {
	*store.MemoryStore
	failAlert  bool
	failSwitch bool
}

func (s *failingStore) InTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.MemoryStore.InTx(ctx, func(tx store.Tx) error {
		return fn(&failingTx{Tx: tx, s: s})
	})
}

type failingTx struct {
	store.Tx
	s *failingStore
}

func (t *failingTx) CreateAlert(ctx context.Context, a *domain.Alert) error {
	if t.s.failAlert {
		return errInjected
	}
	return t.Tx.CreateAlert(ctx, a)
}

func (t *failingTx) SwitchActuatorOn(ctx context.Context, id int64) (bool, error) {
	if t.s.failSwitch {
		return false, errInjected
	}
	return t.Tx.SwitchActuatorOn(ctx, id)
}

func TestIngest_RuleFires(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	eng := newTestEngine(p.store)

	in, err := eng.Ingest(context.Background(), IngestRequest{
		Sensor: p.sensor,
		Value:  60,
		Unit:   "cm",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, in.Fired())
	assert.True(t, testNow.Equal(in.Reading.Timestamp), "timestamp defaults to the clock")
	assert.Equal(t, domain.SourceDevice, in.Reading.Source)
	assert.Nil(t, in.Reading.RawPayload)

	alerts := p.alerts(t)
	require.Len(t, alerts, 1)
	assert.Equal(t, "nivel alto", alerts[0].Message)
	assert.Equal(t, domain.SeverityWarn, alerts[0].Severity)
	assert.Equal(t, domain.AlertNew, alerts[0].Status)
	require.NotNil(t, alerts[0].ReadingID)
	assert.Equal(t, in.Reading.ID, *alerts[0].ReadingID)
	require.NotNil(t, alerts[0].RuleID)
	assert.Equal(t, p.rule.ID, *alerts[0].RuleID)

	assert.True(t, p.pumpOn(t))
}

func TestIngest_RuleDoesNotFire(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	eng := newTestEngine(p.store)

	in, err := eng.Ingest(context.Background(), IngestRequest{Sensor: p.sensor, Value: 40, Unit: "cm"})
	require.NoError(t, err)
	assert.Equal(t, 0, in.Fired())

	assert.Len(t, p.readings(t), 1)
	assert.Empty(t, p.alerts(t))
	assert.False(t, p.pumpOn(t))
}

func TestIngest_InactiveRuleNeverFires(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	require.NoError(t, p.store.SetRuleActive(context.Background(), p.rule.ID, false))
	eng := newTestEngine(p.store)

	for _, v := range []float64{51, 1000, -3} {
		_, err := eng.Ingest(context.Background(), IngestRequest{Sensor: p.sensor, Value: v, Unit: "cm"})
		require.NoError(t, err)
	}

	assert.Len(t, p.readings(t), 3)
	assert.Empty(t, p.alerts(t))
	assert.False(t, p.pumpOn(t))
}

func TestIngest_EachFiringCreatesAnAlert(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	ctx := context.Background()
	second := domain.NewRule(p.sensor.ID, domain.CompareGE, 55, "nivel muy alto")
	second.Severity = domain.SeverityCritical
	require.NoError(t, p.store.CreateRule(ctx, second))

	eng := newTestEngine(p.store)
	in, err := eng.Ingest(ctx, IngestRequest{Sensor: p.sensor, Value: 55, Unit: "cm"})
	require.NoError(t, err)
	assert.Equal(t, 2, in.Fired())

	alerts := p.alerts(t)
	require.Len(t, alerts, 2)
	severities := []domain.Severity{alerts[0].Severity, alerts[1].Severity}
	assert.ElementsMatch(t, []domain.Severity{domain.SeverityWarn, domain.SeverityCritical}, severities)
}

func TestIngest_LTRuleNeverSwitchesOff(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	ctx := context.Background()
	require.NoError(t, p.store.SetActuatorOn(ctx, p.actuator.ID, true))

	low := domain.NewRule(p.sensor.ID, domain.CompareLT, 10, "nivel bajo")
	low.ActuatorID = &p.actuator.ID
	require.NoError(t, p.store.CreateRule(ctx, low))

	eng := newTestEngine(p.store)
	in, err := eng.Ingest(ctx, IngestRequest{Sensor: p.sensor, Value: 2, Unit: "cm"})
	require.NoError(t, err)
	require.Equal(t, 1, in.Fired())

	var fired Outcome
	for _, out := range in.Outcomes {
		if out.Fired {
			fired = out
		}
	}
	assert.False(t, fired.Switched, "actuator was already on")
	assert.True(t, p.pumpOn(t))
}

func TestIngest_RollsBackOnFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		failAlert  bool
		failSwitch bool
	}{
		{name: "alert write fails", failAlert: true},
		{name: "actuator write fails", failSwitch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newPlant(t)
			fs := &failingStore{MemoryStore: p.store, failAlert: tt.failAlert, failSwitch: tt.failSwitch}
			eng := newTestEngine(fs)

			in, err := eng.Ingest(context.Background(), IngestRequest{Sensor: p.sensor, Value: 60, Unit: "cm"})
			require.ErrorIs(t, err, errInjected)
			assert.Nil(t, in)

			assert.Empty(t, p.readings(t))
			assert.Empty(t, p.alerts(t))
			assert.False(t, p.pumpOn(t))
		})
	}
}

func TestIngest_InvalidRequest(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t))

	_, err := eng.Ingest(context.Background(), IngestRequest{Value: 1})
	require.ErrorIs(t, err, ErrInvalidRequest)

	_, err = eng.Ingest(context.Background(), IngestRequest{Sensor: testSensor(), Value: math.NaN()})
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestIngest_PersistenceFailureWithMocks(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mt := storeMocks.NewMockTx(t)

	ms.EXPECT().InTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(store.Tx) error) error {
			return fn(mt)
		}).Once()
	mt.EXPECT().CreateReading(mock.Anything, mock.Anything).Return(errInjected).Once()

	eng := newTestEngine(ms)
	_, err := eng.Ingest(context.Background(), IngestRequest{Sensor: testSensor(), Value: 1, Unit: "cm"})
	require.ErrorIs(t, err, errInjected)
	assert.Contains(t, err.Error(), "S-01")
}

func TestIngest_RawPayloadSnapshot(t *testing.T) {
	t.Parallel()

	p := newPlant(t)
	eng := newTestEngine(p.store)

	recorded := time.Date(2025, 11, 18, 4, 30, 0, 0, time.UTC)
	in, err := eng.Ingest(context.Background(), IngestRequest{
		Sensor:    p.sensor,
		Value:     12,
		Unit:      "cm",
		Timestamp: recorded,
		Source:    domain.SourceManual,
		Raw: map[string]any{
			"sensor_codigo": "S-01",
			"valor":         12,
			"fecha_hora":    recorded,
			"extra": map[string]any{
				"samples": []any{recorded, 1.5},
			},
		},
	})
	require.NoError(t, err)

	got, err := p.store.GetReading(context.Background(), in.Reading.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SourceManual, got.Source)
	assert.JSONEq(t, `{
		"sensor_codigo": "S-01",
		"valor": 12,
		"fecha_hora": "2025-11-18T04:30:00Z",
		"extra": {"samples": ["2025-11-18T04:30:00Z", 1.5]}
	}`, string(got.RawPayload))
}

func TestIngestPayload(t *testing.T) {
	t.Parallel()

	t.Run("valid payload is normalized then ingested", func(t *testing.T) {
		t.Parallel()

		p := newPlant(t)
		eng := newTestEngine(p.store)

		in, err := eng.IngestPayload(context.Background(), map[string]any{
			"sensor_codigo": "S-01",
			"valor":         "55",
			"unidad":        "cm",
			"fecha_hora":    "2025-11-18T00:00:00Z",
		})
		require.NoError(t, err)
		assert.InDelta(t, 55.0, in.Reading.Value, 1e-9)
		assert.True(t, time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC).Equal(in.Reading.Timestamp))
		assert.True(t, p.pumpOn(t))
	})

	t.Run("validation error is propagated and nothing is written", func(t *testing.T) {
		t.Parallel()

		p := newPlant(t)
		eng := newTestEngine(p.store)

		_, err := eng.IngestPayload(context.Background(), map[string]any{
			"sensor_codigo": "S-01",
			"unidad":        "cm",
		})
		require.ErrorIs(t, err, normalize.ErrMissingField)
		assert.Empty(t, p.readings(t))
	})

	t.Run("inactive sensor still accepts readings", func(t *testing.T) {
		t.Parallel()

		p := newPlant(t)
		require.NoError(t, p.store.SetSensorActive(context.Background(), p.sensor.ID, false))
		eng := newTestEngine(p.store)

		_, err := eng.IngestPayload(context.Background(), map[string]any{
			"sensor_codigo": "S-01", "valor": 1, "unidad": "cm",
		})
		require.NoError(t, err)
		assert.Len(t, p.readings(t), 1)
	})
}

func TestJSONSafe(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 2, 29, 23, 59, 59, 500, time.FixedZone("CLT", -3*3600))

	got := jsonSafe(map[string]any{
		"at":     ts,
		"atPtr":  &ts,
		"nilPtr": (*time.Time)(nil),
		"nested": []any{map[string]any{"at": ts}},
		"nan":    math.NaN(),
		"num":    json.Number("1.50"),
		"plain":  "x",
	})

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"at": "2024-02-29T23:59:59.0000005-03:00",
		"atPtr": "2024-02-29T23:59:59.0000005-03:00",
		"nilPtr": null,
		"nested": [{"at": "2024-02-29T23:59:59.0000005-03:00"}],
		"nan": "NaN",
		"num": 1.50,
		"plain": "x"
	}`, string(b))
}
