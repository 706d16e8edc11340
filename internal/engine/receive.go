package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	"github.com/donaldgifford/plant-telemetry/internal/normalize"
)

// ResultKind classifies the outcome of Receive.
type ResultKind string

// Result kinds. Invalid submissions are the caller's fault; Failed means the
// reading could not be persisted.
const (
	ResultAccepted ResultKind = "accepted"
	ResultInvalid  ResultKind = "invalid"
	ResultFailed   ResultKind = "failed"
)

// Messages returned to submitters for non-validation failures.
const (
	MsgInvalidJSON   = "invalid JSON"
	MsgInternalError = "internal error"
)

// IngestResult is the structured answer to a submission. It marshals to the
// ingress response body.
type IngestResult struct {
	OK         bool       `json:"ok"`
	ReadingID  int64      `json:"id,omitempty"`
	SensorCode string     `json:"sensor,omitempty"`
	Error      string     `json:"error,omitempty"`
	Kind       ResultKind `json:"-"`
}

// Receive is the single ingress operation: it decodes a JSON object,
// normalizes it, and ingests the reading. An empty body is treated as an
// empty object. It never returns an error; failures are described by the
// result.
func (eng *Engine) Receive(ctx context.Context, body []byte) IngestResult {
	payload, err := decodePayload(body)
	if err != nil {
		metrics.IngestRejectedTotal.WithLabelValues("invalid_json").Inc()
		eng.log.Debug("rejected submission", "error", err)
		return IngestResult{Error: MsgInvalidJSON, Kind: ResultInvalid}
	}

	in, err := eng.IngestPayload(ctx, payload)
	if err != nil {
		if normalize.IsValidation(err) {
			eng.log.Debug("rejected submission", "error", err)
			return IngestResult{Error: err.Error(), Kind: ResultInvalid}
		}
		return IngestResult{Error: MsgInternalError, Kind: ResultFailed}
	}

	return IngestResult{
		OK:         true,
		ReadingID:  in.Reading.ID,
		SensorCode: in.Sensor.Code,
		Kind:       ResultAccepted,
	}
}

// decodePayload parses body as exactly one JSON object. Numbers are kept as
// json.Number so the raw snapshot preserves their original text.
func decodePayload(body []byte) (map[string]any, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("payload is not an object")
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after payload")
	}

	return payload, nil
}

// rejectReason maps a validation failure to a metric label.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, normalize.ErrMissingField):
		return "missing_field"
	case errors.Is(err, normalize.ErrInvalidField):
		return "invalid_field"
	case errors.Is(err, normalize.ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, normalize.ErrSensorNotFound):
		return "sensor_not_found"
	case errors.Is(err, normalize.ErrInvalidValue):
		return "invalid_value"
	case errors.Is(err, normalize.ErrInvalidSource):
		return "invalid_source"
	default:
		return "other"
	}
}
