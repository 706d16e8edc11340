//go:build integration

package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("plant_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr, 4)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func seedCatalog(t *testing.T, s store.Store, code string) (*domain.Sensor, *domain.Actuator) {
	t.Helper()
	ctx := context.Background()

	sn := domain.NewSensor(domain.Device{Code: code, Name: "Level " + code}, domain.SensorLevel, "cm")
	lo, hi := 10.0, 90.0
	sn.RangeMin, sn.RangeMax = &lo, &hi
	require.NoError(t, s.CreateSensor(ctx, sn))

	act := domain.NewActuator(domain.Device{Code: "PUMP-" + code, Name: "Pump"}, domain.ActuatorPump, "relay-1")
	require.NoError(t, s.CreateActuator(ctx, act))

	return sn, act
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))
}

func TestPostgresStore_Sensors(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, _ := seedCatalog(t, s, "LVL-01")

	t.Run("round trip", func(t *testing.T) {
		got, err := s.GetSensorByCode(ctx, "LVL-01")
		require.NoError(t, err)
		assert.Equal(t, sn.ID, got.ID)
		assert.Equal(t, domain.SensorLevel, got.Kind)
		require.NotNil(t, got.RangeMax)
		assert.InDelta(t, 90.0, *got.RangeMax, 1e-9)
		assert.True(t, got.Active)
	})

	t.Run("duplicate code", func(t *testing.T) {
		dup := domain.NewSensor(domain.Device{Code: "LVL-01", Name: "dup"}, domain.SensorLevel, "cm")
		assert.ErrorIs(t, s.CreateSensor(ctx, dup), store.ErrConflict)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.GetSensorByCode(ctx, "nonexistent")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("toggle active", func(t *testing.T) {
		require.NoError(t, s.SetSensorActive(ctx, sn.ID, false))
		got, err := s.GetSensor(ctx, sn.ID)
		require.NoError(t, err)
		assert.False(t, got.Active)
	})
}

func TestPostgresStore_IngestTransaction(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, act := seedCatalog(t, s, "LVL-02")

	rule := domain.NewRule(sn.ID, domain.CompareGT, 80, "level high")
	rule.ActuatorID = &act.ID
	require.NoError(t, s.CreateRule(ctx, rule))

	recorded := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	var readingID int64
	err := s.InTx(ctx, func(tx store.Tx) error {
		rd := &domain.Reading{
			SensorID:   sn.ID,
			Value:      85,
			Unit:       "cm",
			Timestamp:  recorded,
			Source:     domain.SourceDevice,
			RawPayload: json.RawMessage(`{"sensor_codigo":"LVL-02","valor":85}`),
		}
		if err := tx.CreateReading(ctx, rd); err != nil {
			return err
		}
		readingID = rd.ID

		rules, err := tx.ListActiveRules(ctx, sn.ID)
		if err != nil {
			return err
		}
		require.Len(t, rules, 1)

		if err := tx.CreateAlert(ctx, &domain.Alert{
			SensorID:  sn.ID,
			ReadingID: &rd.ID,
			RuleID:    &rules[0].ID,
			Severity:  rules[0].Severity,
			Message:   rules[0].ActionMessage,
			Status:    domain.AlertNew,
		}); err != nil {
			return err
		}

		wasOn, err := tx.SwitchActuatorOn(ctx, act.ID)
		assert.False(t, wasOn)
		return err
	})
	require.NoError(t, err)

	got, err := s.GetReading(ctx, readingID)
	require.NoError(t, err)
	assert.True(t, recorded.Equal(got.Timestamp))
	assert.JSONEq(t, `{"sensor_codigo":"LVL-02","valor":85}`, string(got.RawPayload))

	alerts, err := s.ListAlerts(ctx, &store.AlertQuery{SensorID: &sn.ID})
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityWarn, alerts[0].Severity)

	pump, err := s.GetActuator(ctx, act.ID)
	require.NoError(t, err)
	assert.True(t, pump.IsOn)
}

func TestPostgresStore_IngestRollback(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, act := seedCatalog(t, s, "LVL-03")

	boom := errors.New("boom")
	err := s.InTx(ctx, func(tx store.Tx) error {
		if err := tx.CreateReading(ctx, &domain.Reading{
			SensorID:  sn.ID,
			Value:     95,
			Unit:      "cm",
			Timestamp: time.Now().UTC(),
			Source:    domain.SourceDevice,
		}); err != nil {
			return err
		}
		if _, err := tx.SwitchActuatorOn(ctx, act.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.LatestReading(ctx, sn.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	pump, err := s.GetActuator(ctx, act.ID)
	require.NoError(t, err)
	assert.False(t, pump.IsOn)
}

func TestPostgresStore_DeleteActuatorKeepsRule(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, act := seedCatalog(t, s, "LVL-04")

	rule := domain.NewRule(sn.ID, domain.CompareLT, 15, "level low")
	rule.ActuatorID = &act.ID
	require.NoError(t, s.CreateRule(ctx, rule))

	require.NoError(t, s.DeleteActuator(ctx, act.ID))

	rules, err := s.ListRules(ctx, &sn.ID)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Nil(t, rules[0].ActuatorID)
}

func TestPostgresStore_DeleteSensorCascades(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, act := seedCatalog(t, s, "LVL-20")

	rule := domain.NewRule(sn.ID, domain.CompareGT, 80, "level high")
	rule.ActuatorID = &act.ID
	require.NoError(t, s.CreateRule(ctx, rule))

	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		rd := &domain.Reading{SensorID: sn.ID, Value: 85, Unit: "cm", Timestamp: time.Now().UTC(), Source: domain.SourceDevice}
		if err := tx.CreateReading(ctx, rd); err != nil {
			return err
		}
		return tx.CreateAlert(ctx, &domain.Alert{
			SensorID:  sn.ID,
			ReadingID: &rd.ID,
			RuleID:    &rule.ID,
			Severity:  domain.SeverityWarn,
			Message:   "level high",
			Status:    domain.AlertNew,
		})
	}))

	require.NoError(t, s.DeleteSensor(ctx, sn.ID))

	_, err := s.GetSensor(ctx, sn.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.LatestReading(ctx, sn.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	rules, err := s.ListRules(ctx, &sn.ID)
	require.NoError(t, err)
	assert.Empty(t, rules)

	alerts, err := s.ListAlerts(ctx, &store.AlertQuery{SensorID: &sn.ID})
	require.NoError(t, err)
	assert.Empty(t, alerts)

	_, err = s.GetActuator(ctx, act.ID)
	require.NoError(t, err)

	require.ErrorIs(t, s.DeleteSensor(ctx, sn.ID), store.ErrNotFound)
}

func TestPostgresStore_ListReadingsOrder(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	sn, _ := seedCatalog(t, s, "LVL-05")

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.InTx(ctx, func(tx store.Tx) error {
		for i, off := range []time.Duration{time.Hour, 0, 2 * time.Hour} {
			if err := tx.CreateReading(ctx, &domain.Reading{
				SensorID:  sn.ID,
				Value:     float64(i),
				Unit:      "cm",
				Timestamp: base.Add(off),
				Source:    domain.SourceSimulated,
			}); err != nil {
				return err
			}
		}
		return nil
	}))

	readings, err := s.ListReadings(ctx, &store.ReadingQuery{SensorID: &sn.ID})
	require.NoError(t, err)
	require.Len(t, readings, 3)
	assert.InDelta(t, 2.0, readings[0].Value, 1e-9)
	assert.InDelta(t, 0.0, readings[1].Value, 1e-9)
	assert.InDelta(t, 1.0, readings[2].Value, 1e-9)
	assert.Nil(t, readings[0].RawPayload)
}
