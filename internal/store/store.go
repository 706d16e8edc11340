// Package store defines the datastore abstraction for plant-telemetry.
// All business logic depends on the Store and Tx interfaces, never on
// concrete implementations. This enables mock-based testing without a
// running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// Lookup and write errors shared by all Store implementations.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// ReadingQuery defines optional filters for reading queries. Results are
// always ordered most recent first.
type ReadingQuery struct {
	SensorID *int64
	Limit    int // default 50
	Offset   int
}

// AlertQuery defines optional filters for alert queries. Results are always
// ordered most recent first.
type AlertQuery struct {
	SensorID *int64
	Status   *domain.AlertStatus
	Limit    int // default 50
	Offset   int
}

// Store defines all data access operations for plant-telemetry.
type Store interface {
	// Sensors
	CreateSensor(ctx context.Context, s *domain.Sensor) error
	GetSensor(ctx context.Context, id int64) (*domain.Sensor, error)
	GetSensorByCode(ctx context.Context, code string) (*domain.Sensor, error)
	ListSensors(ctx context.Context) ([]domain.Sensor, error)
	SetSensorActive(ctx context.Context, id int64, active bool) error
	DeleteSensor(ctx context.Context, id int64) error

	// Actuators
	CreateActuator(ctx context.Context, a *domain.Actuator) error
	GetActuator(ctx context.Context, id int64) (*domain.Actuator, error)
	GetActuatorByCode(ctx context.Context, code string) (*domain.Actuator, error)
	ListActuators(ctx context.Context) ([]domain.Actuator, error)
	SetActuatorOn(ctx context.Context, id int64, on bool) error
	DeleteActuator(ctx context.Context, id int64) error

	// Rules
	CreateRule(ctx context.Context, r *domain.Rule) error
	ListRules(ctx context.Context, sensorID *int64) ([]domain.Rule, error)
	SetRuleActive(ctx context.Context, id int64, active bool) error

	// Readings
	GetReading(ctx context.Context, id int64) (*domain.Reading, error)
	ListReadings(ctx context.Context, q *ReadingQuery) ([]domain.Reading, error)
	LatestReading(ctx context.Context, sensorID int64) (*domain.Reading, error)

	// Alerts
	ListAlerts(ctx context.Context, q *AlertQuery) ([]domain.Alert, error)

	// Unit of work
	InTx(ctx context.Context, fn func(tx Tx) error) error

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// Tx is the set of writes applied when a reading is ingested. Everything
// done through a Tx commits or rolls back together.
type Tx interface {
	CreateReading(ctx context.Context, r *domain.Reading) error
	ListActiveRules(ctx context.Context, sensorID int64) ([]domain.Rule, error)
	CreateAlert(ctx context.Context, a *domain.Alert) error
	// SwitchActuatorOn sets the actuator on and reports whether it was
	// already on. The actuator row is locked until the transaction ends.
	SwitchActuatorOn(ctx context.Context, actuatorID int64) (wasOn bool, err error)
}
