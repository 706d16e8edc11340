// Package engine ingests sensor readings and reacts to them. Each reading is
// persisted together with the alerts and actuator changes its rules trigger,
// inside a single store transaction.
package engine

import (
	"errors"
	"log/slog"
	"time"

	"github.com/donaldgifford/plant-telemetry/internal/normalize"
	"github.com/donaldgifford/plant-telemetry/internal/store"
)

// ErrInvalidRequest is returned by Ingest for requests that cannot describe a
// reading, such as a missing sensor or a non-finite value.
var ErrInvalidRequest = errors.New("invalid ingest request")

// Engine orchestrates normalization, ingestion and rule evaluation.
type Engine struct {
	store      store.Store
	normalizer *normalize.Normalizer
	log        *slog.Logger
	now        func() time.Time
}

// NewEngine creates a new Engine backed by s, which also serves as the sensor
// catalog for payload normalization.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store: s,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.normalizer = normalize.New(s, normalize.WithClock(eng.now))
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock sets the clock used to default reading timestamps.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}
