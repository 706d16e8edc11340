// Package normalize validates untrusted reading submissions and coerces them
// into typed reading requests.
package normalize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// Payload keys understood by the normalizer. Any other key is carried only in
// the raw payload snapshot.
const (
	FieldSensorCode = "sensor_codigo"
	FieldValue      = "valor"
	FieldUnit       = "unidad"
	FieldTimestamp  = "fecha_hora"
	FieldSource     = "origen"
)

// SensorLookup resolves a sensor by its device code. It returns an error
// wrapping store.ErrNotFound when no sensor has the code.
type SensorLookup interface {
	GetSensorByCode(ctx context.Context, code string) (*domain.Sensor, error)
}

// NormalizedReading is a validated submission ready for ingestion.
type NormalizedReading struct {
	Sensor    *domain.Sensor
	Value     float64
	Unit      string
	Timestamp time.Time
	Source    domain.Source
}

// Normalizer validates reading payloads against the sensor catalog.
type Normalizer struct {
	lookup SensorLookup
	now    func() time.Time
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithClock overrides the clock used when a payload carries no timestamp.
func WithClock(now func() time.Time) Option {
	return func(n *Normalizer) {
		n.now = now
	}
}

// New creates a Normalizer backed by the given catalog lookup.
func New(lookup SensorLookup, opts ...Option) *Normalizer {
	n := &Normalizer{
		lookup: lookup,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize checks a payload in a fixed order: required keys, timestamp,
// sensor lookup, value, then source. The first failure is returned as a
// *ValidationError. Catalog failures other than not-found are wrapped and
// returned as ordinary errors.
//
// Normalize has no side effects and does not check whether the sensor is
// active.
func (n *Normalizer) Normalize(ctx context.Context, payload map[string]any) (*NormalizedReading, error) {
	for _, field := range []string{FieldSensorCode, FieldValue, FieldUnit} {
		if _, ok := payload[field]; !ok {
			return nil, missing(field)
		}
	}

	code, err := sensorCode(payload[FieldSensorCode])
	if err != nil {
		return nil, err
	}
	unit, err := requiredString(payload, FieldUnit)
	if err != nil {
		return nil, err
	}

	ts, err := n.timestamp(payload[FieldTimestamp])
	if err != nil {
		return nil, err
	}

	sensor, err := n.lookup.GetSensorByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, &ValidationError{Field: FieldSensorCode, Detail: code, Err: ErrSensorNotFound}
		}
		return nil, fmt.Errorf("looking up sensor %s: %w", code, err)
	}

	value, ok := ToFloat(payload[FieldValue])
	if !ok {
		return nil, &ValidationError{Field: FieldValue, Err: ErrInvalidValue}
	}

	source, err := parseSource(payload[FieldSource])
	if err != nil {
		return nil, err
	}

	return &NormalizedReading{
		Sensor:    sensor,
		Value:     value,
		Unit:      unit,
		Timestamp: ts,
		Source:    source,
	}, nil
}

// requiredString returns a string field. A null value counts as missing.
func requiredString(payload map[string]any, field string) (string, error) {
	v := payload[field]
	if v == nil {
		return "", missing(field)
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidField(field)
	}
	return s, nil
}

// sensorCode accepts a string code or an integral number, which is formatted
// as its decimal text.
func sensorCode(v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", missing(FieldSensorCode)
	case string:
		return c, nil
	case json.Number:
		if _, err := c.Int64(); err == nil {
			return c.String(), nil
		}
	case float64:
		if c == math.Trunc(c) && !math.IsInf(c, 0) {
			return strconv.FormatFloat(c, 'f', -1, 64), nil
		}
	case int:
		return strconv.Itoa(c), nil
	case int64:
		return strconv.FormatInt(c, 10), nil
	}
	return "", invalidField(FieldSensorCode)
}

func (n *Normalizer) timestamp(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return n.now(), nil
	case time.Time:
		return t, nil
	case string:
		if strings.TrimSpace(t) == "" {
			return n.now(), nil
		}
		ts, err := ParseTimestamp(t)
		if err != nil {
			return time.Time{}, &ValidationError{Field: FieldTimestamp, Detail: t, Err: ErrInvalidTimestamp}
		}
		return ts, nil
	default:
		return time.Time{}, &ValidationError{Field: FieldTimestamp, Err: ErrInvalidTimestamp}
	}
}

// timestampLayouts are tried in order. Layouts without a zone parse as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02 15:04:05-0700",
	"2006-01-02T15:04:05-07",
	"2006-01-02 15:04:05-07",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02 15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseTimestamp parses an ISO-8601 date or date-time. Fractional seconds are
// accepted wherever seconds are.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}

// ToFloat coerces a decoded JSON value to a finite float64. Booleans are not
// numbers.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// sourceAliases maps accepted origin spellings to sources.
var sourceAliases = map[string]domain.Source{
	"device":    domain.SourceDevice,
	"esp32":     domain.SourceDevice,
	"manual":    domain.SourceManual,
	"simulated": domain.SourceSimulated,
	"simulada":  domain.SourceSimulated,
}

func parseSource(v any) (domain.Source, error) {
	if v == nil {
		return domain.SourceDevice, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ValidationError{Field: FieldSource, Detail: fmt.Sprint(v), Err: ErrInvalidSource}
	}

	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return domain.SourceDevice, nil
	}
	if src, ok := sourceAliases[normalized]; ok {
		return src, nil
	}
	return "", &ValidationError{Field: FieldSource, Detail: s, Err: ErrInvalidSource}
}
