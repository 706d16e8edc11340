package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

func ptr[T any](v T) *T { return &v }

func TestReadingPayload(t *testing.T) {
	t.Parallel()

	got := readingPayload("TK1-LVL", "82.5", "", "2025-11-18T04:30:00Z", "MANUAL")
	assert.Equal(t, map[string]any{
		"sensor_codigo": "TK1-LVL",
		"valor":         82.5,
		"fecha_hora":    "2025-11-18T04:30:00Z",
		"origen":        "MANUAL",
	}, got)

	got = readingPayload("TK1-LVL", "high", "cm", "", "")
	assert.Equal(t, "high", got["valor"])
	assert.Equal(t, "cm", got["unidad"])
}

func TestFormatRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-", formatRange(nil, nil))
	assert.Equal(t, "10..90", formatRange(ptr(10.0), ptr(90.0)))
	assert.Equal(t, "*..7.5", formatRange(nil, ptr(7.5)))
	assert.Equal(t, "0.5..*", formatRange(ptr(0.5), nil))
}

func TestPrintSensorTable(t *testing.T) {
	t.Parallel()

	sn := domain.NewSensor(domain.Device{Code: "TK1-LVL", Name: "Nivel TK1"}, domain.SensorLevel, "cm")
	sn.RangeMin, sn.RangeMax = ptr(10.0), ptr(90.0)

	var buf bytes.Buffer
	require.NoError(t, printSensorTable(&buf, []domain.Sensor{*sn}))

	out := buf.String()
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "TK1-LVL")
	assert.Contains(t, out, "10..90")
}

func TestPrintActuatorTable(t *testing.T) {
	t.Parallel()

	a := domain.NewActuator(domain.Device{Code: "TK1-PUMP", Name: "Bomba TK1"}, domain.ActuatorPump, "GPIO23")
	a.IsOn = true

	var buf bytes.Buffer
	require.NoError(t, printActuatorTable(&buf, []domain.Actuator{*a}))
	assert.Contains(t, buf.String(), "GPIO23")
	assert.Contains(t, buf.String(), "on")
}

func TestPrintRuleTable(t *testing.T) {
	t.Parallel()

	r := domain.NewRule(1, domain.CompareGE, 80, "nivel alto")
	r.ID = 12

	var buf bytes.Buffer
	require.NoError(t, printRuleTable(&buf, []domain.Rule{*r}))
	assert.Contains(t, buf.String(), "GE 80")
	assert.Contains(t, buf.String(), "WARN")
}

func TestPrintReadingTable(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 11, 18, 4, 30, 0, 0, time.UTC)
	readings := []domain.Reading{{ID: 7, Value: 42.25, Unit: "cm", Timestamp: ts, Source: domain.SourceDevice}}

	var buf bytes.Buffer
	require.NoError(t, printReadingTable(&buf, readings))
	assert.Contains(t, buf.String(), "2025-11-18 04:30:00")
	assert.Contains(t, buf.String(), "42.25")
	assert.Contains(t, buf.String(), "DEVICE")
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
