package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	"github.com/donaldgifford/plant-telemetry/internal/normalize"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// IngestRequest describes one reading to persist.
type IngestRequest struct {
	Sensor *domain.Sensor
	Value  float64
	Unit   string
	// Timestamp defaults to the engine clock when zero.
	Timestamp time.Time
	// Source defaults to DEVICE when empty.
	Source domain.Source
	// Raw is the submitted payload. It is stored after date and time values
	// are converted to RFC 3339 strings. A nil Raw is stored as NULL.
	Raw map[string]any
}

// Ingestion is a committed reading and the rule outcomes it produced.
type Ingestion struct {
	Sensor   *domain.Sensor
	Reading  *domain.Reading
	Outcomes []Outcome
}

// Fired returns the number of rules that fired.
func (in *Ingestion) Fired() int {
	var n int
	for i := range in.Outcomes {
		if in.Outcomes[i].Fired {
			n++
		}
	}
	return n
}

// Ingest persists the reading and evaluates the sensor's rules against it in
// one transaction. On error nothing from the call is visible.
func (eng *Engine) Ingest(ctx context.Context, req IngestRequest) (*Ingestion, error) {
	if req.Sensor == nil {
		return nil, fmt.Errorf("%w: no sensor", ErrInvalidRequest)
	}
	if math.IsNaN(req.Value) || math.IsInf(req.Value, 0) {
		return nil, fmt.Errorf("%w: non-finite value %v", ErrInvalidRequest, req.Value)
	}

	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	raw, err := encodeRaw(req.Raw)
	if err != nil {
		return nil, err
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = eng.now()
	}
	source := req.Source
	if source == "" {
		source = domain.SourceDevice
	}

	var (
		reading  *domain.Reading
		outcomes []Outcome
	)
	err = eng.store.InTx(ctx, func(tx store.Tx) error {
		reading = &domain.Reading{
			SensorID:   req.Sensor.ID,
			Value:      req.Value,
			Unit:       req.Unit,
			Timestamp:  ts,
			Source:     source,
			RawPayload: raw,
		}
		if err := tx.CreateReading(ctx, reading); err != nil {
			return fmt.Errorf("creating reading: %w", err)
		}

		out, err := eng.Evaluate(ctx, tx, req.Sensor, reading)
		if err != nil {
			return err
		}
		outcomes = out
		return nil
	})
	if err != nil {
		metrics.IngestionErrorsTotal.Inc()
		eng.log.Error("ingestion failed", "sensor", req.Sensor.Code, "error", err)
		return nil, fmt.Errorf("ingesting reading for sensor %s: %w", req.Sensor.Code, err)
	}

	metrics.ReadingsIngestedTotal.WithLabelValues(string(source)).Inc()
	recordOutcomes(outcomes)

	result := &Ingestion{Sensor: req.Sensor, Reading: reading, Outcomes: outcomes}
	eng.log.Info("reading ingested",
		"sensor", req.Sensor.Code,
		"reading", reading.ID,
		"value", reading.Value,
		"rules", len(outcomes),
		"fired", result.Fired(),
	)

	return result, nil
}

// IngestPayload normalizes an untrusted payload and ingests it. Validation
// failures are returned as *normalize.ValidationError.
func (eng *Engine) IngestPayload(ctx context.Context, payload map[string]any) (*Ingestion, error) {
	nr, err := eng.normalizer.Normalize(ctx, payload)
	if err != nil {
		if normalize.IsValidation(err) {
			metrics.IngestRejectedTotal.WithLabelValues(rejectReason(err)).Inc()
		} else {
			metrics.IngestionErrorsTotal.Inc()
			eng.log.Error("normalization failed", "error", err)
		}
		return nil, err
	}

	return eng.Ingest(ctx, IngestRequest{
		Sensor:    nr.Sensor,
		Value:     nr.Value,
		Unit:      nr.Unit,
		Timestamp: nr.Timestamp,
		Source:    nr.Source,
		Raw:       payload,
	})
}

// encodeRaw converts a payload into the stored JSON snapshot.
func encodeRaw(raw map[string]any) (json.RawMessage, error) {
	if raw == nil {
		return nil, nil
	}
	b, err := json.Marshal(jsonSafe(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: encoding raw payload: %w", ErrInvalidRequest, err)
	}
	return b, nil
}

// jsonSafe walks v and replaces values JSON cannot carry faithfully: times
// become RFC 3339 strings and non-finite floats become their text form.
func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.Format(time.RFC3339Nano)
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return strconv.FormatFloat(t, 'g', -1, 64)
		}
		return t
	case float32:
		f := float64(t)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return strconv.FormatFloat(f, 'g', -1, 32)
		}
		return t
	default:
		return v
	}
}
