// Package domain defines the core telemetry and control types for the plant.
package domain

import (
	"encoding/json"
	"time"
)

// SensorKind represents what a sensor measures.
type SensorKind string

// Sensor kind constants.
const (
	SensorLevel    SensorKind = "LEVEL"
	SensorInfrared SensorKind = "INFRARED"
	SensorPH       SensorKind = "PH"
	SensorOther    SensorKind = "OTHER"
)

// ActuatorKind represents the type of controllable device.
type ActuatorKind string

// Actuator kind constants.
const (
	ActuatorPump  ActuatorKind = "PUMP"
	ActuatorValve ActuatorKind = "VALVE"
	ActuatorAlarm ActuatorKind = "ALARM"
	ActuatorOther ActuatorKind = "OTHER"
)

// Source identifies where a reading came from.
type Source string

// Source constants.
const (
	SourceDevice    Source = "DEVICE"
	SourceManual    Source = "MANUAL"
	SourceSimulated Source = "SIMULATED"
)

// Severity is the importance of an alert.
type Severity string

// Severity constants.
const (
	SeverityInfo     Severity = "INFO"
	SeverityWarn     Severity = "WARN"
	SeverityCritical Severity = "CRITICAL"
)

// AlertStatus tracks an alert through the operator workflow.
type AlertStatus string

// Alert status constants.
const (
	AlertNew        AlertStatus = "NEW"
	AlertInProgress AlertStatus = "IN_PROGRESS"
	AlertResolved   AlertStatus = "RESOLVED"
)

// Device holds the attributes shared by sensors and actuators.
type Device struct {
	ID          int64     `json:"id"                    db:"id"`
	Code        string    `json:"code"                  db:"code"`
	Name        string    `json:"name"                  db:"name"`
	Location    string    `json:"location"              db:"location"`
	Description string    `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"created_at"            db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"            db:"updated_at"`
}

// Sensor is a telemetry-producing device with an optional operating range.
type Sensor struct {
	Device

	Kind       SensorKind `json:"kind"                db:"kind"`
	Unit       string     `json:"unit"                db:"unit"`
	Model      string     `json:"model,omitempty"     db:"model"`
	RangeMin   *float64   `json:"range_min,omitempty" db:"range_min"`
	RangeMax   *float64   `json:"range_max,omitempty" db:"range_max"`
	TankCode   *string    `json:"tank_code,omitempty" db:"tank_code"`
	IsCritical bool       `json:"is_critical"         db:"is_critical"`
	Active     bool       `json:"active"              db:"active"`
}

// NewSensor builds a sensor ready to be stored. Sensors start active, except
// pH sensors which require manual activation.
func NewSensor(dev Device, kind SensorKind, unit string) *Sensor {
	return &Sensor{
		Device: dev,
		Kind:   kind,
		Unit:   unit,
		Active: kind != SensorPH,
	}
}

// OutOfRange reports whether v lies strictly outside the sensor's bounds.
// A missing bound is unbounded on that side.
func (s *Sensor) OutOfRange(v float64) bool {
	if s.RangeMin != nil && v < *s.RangeMin {
		return true
	}
	if s.RangeMax != nil && v > *s.RangeMax {
		return true
	}
	return false
}

// IsOutOfRange evaluates the sensor's current value, taken from its latest
// reading. A sensor without readings is never out of range.
func (s *Sensor) IsOutOfRange(latest *Reading) bool {
	if latest == nil {
		return false
	}
	return s.OutOfRange(latest.Value)
}

// Actuator is a controllable device with a binary on/off state.
type Actuator struct {
	Device

	Kind       ActuatorKind `json:"kind"                  db:"kind"`
	Channel    string       `json:"channel"               db:"channel"`
	PowerWatts *float64     `json:"power_watts,omitempty" db:"power_watts"`
	TankCode   *string      `json:"tank_code,omitempty"   db:"tank_code"`
	IsOn       bool         `json:"is_on"                 db:"is_on"`
}

// NewActuator builds an actuator in the off state.
func NewActuator(dev Device, kind ActuatorKind, channel string) *Actuator {
	return &Actuator{
		Device:  dev,
		Kind:    kind,
		Channel: channel,
	}
}

// IsPump reports whether the actuator drives a pump.
func (a *Actuator) IsPump() bool {
	return a.Kind == ActuatorPump
}

// PumpState returns a human-readable pump state.
func (a *Actuator) PumpState() string {
	if !a.IsPump() {
		return "not a pump"
	}
	if a.IsOn {
		return "on"
	}
	return "off"
}

// Reading is one immutable telemetry sample from a sensor.
type Reading struct {
	ID         int64           `json:"id"                    db:"id"`
	SensorID   int64           `json:"sensor_id"             db:"sensor_id"`
	Value      float64         `json:"value"                 db:"value"`
	Unit       string          `json:"unit"                  db:"unit"`
	Timestamp  time.Time       `json:"timestamp"             db:"timestamp"`
	Source     Source          `json:"source"                db:"source"`
	RawPayload json.RawMessage `json:"raw_payload,omitempty" db:"raw_payload"`
	CreatedAt  time.Time       `json:"created_at"            db:"created_at"`
}

// IsOutOfRange reports whether the reading's value is outside the bounds of
// the sensor that produced it.
func (r *Reading) IsOutOfRange(s *Sensor) bool {
	if s == nil {
		return false
	}
	return s.OutOfRange(r.Value)
}

// Alert records a rule having fired.
type Alert struct {
	ID        int64       `json:"id"                   db:"id"`
	SensorID  int64       `json:"sensor_id"            db:"sensor_id"`
	ReadingID *int64      `json:"reading_id,omitempty" db:"reading_id"`
	RuleID    *int64      `json:"rule_id,omitempty"    db:"rule_id"`
	Severity  Severity    `json:"severity"             db:"severity"`
	Message   string      `json:"message"              db:"message"`
	Status    AlertStatus `json:"status"               db:"status"`
	CreatedAt time.Time   `json:"created_at"           db:"created_at"`
}

// Rule is a standing threshold condition bound to a sensor, optionally wired
// to an actuator that is switched on when the rule fires.
type Rule struct {
	ID            int64      `json:"id"                    db:"id"`
	SensorID      int64      `json:"sensor_id"             db:"sensor_id"`
	ActuatorID    *int64     `json:"actuator_id,omitempty" db:"actuator_id"`
	Comparator    Comparator `json:"comparator"            db:"comparator"`
	Threshold     float64    `json:"threshold"             db:"threshold"`
	ActionMessage string     `json:"action_message"        db:"action_message"`
	Severity      Severity   `json:"severity"              db:"severity"`
	Active        bool       `json:"active"                db:"active"`
	CreatedAt     time.Time  `json:"created_at"            db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"            db:"updated_at"`
}

// NewRule builds an active rule with the default WARN severity.
func NewRule(sensorID int64, cmp Comparator, threshold float64, message string) *Rule {
	return &Rule{
		SensorID:      sensorID,
		Comparator:    cmp,
		Threshold:     threshold,
		ActionMessage: message,
		Severity:      SeverityWarn,
		Active:        true,
	}
}

// Valid reports whether the severity is a known value.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarn, SeverityCritical:
		return true
	default:
		return false
	}
}

// Valid reports whether the sensor kind is a known value.
func (k SensorKind) Valid() bool {
	switch k {
	case SensorLevel, SensorInfrared, SensorPH, SensorOther:
		return true
	default:
		return false
	}
}

// Valid reports whether the actuator kind is a known value.
func (k ActuatorKind) Valid() bool {
	switch k {
	case ActuatorPump, ActuatorValve, ActuatorAlarm, ActuatorOther:
		return true
	default:
		return false
	}
}

// Valid reports whether the alert status is a known value.
func (s AlertStatus) Valid() bool {
	switch s {
	case AlertNew, AlertInProgress, AlertResolved:
		return true
	default:
		return false
	}
}
