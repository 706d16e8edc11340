package main

import "errors"

// KnownMetrics is the set of metric names exported by plant-telemetry plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"plant_http_request_duration_seconds": true,
	"plant_http_requests_total":           true,
	"plant_http_rate_limited_total":       true,

	// Health metrics.
	"plant_healthz_up": true,
	"plant_readyz_up":  true,

	// Ingestion metrics.
	"plant_readings_ingested_total":    true,
	"plant_ingest_rejected_total":      true,
	"plant_ingestion_errors_total":     true,
	"plant_ingestion_duration_seconds": true,

	// Rule engine metrics.
	"plant_rule_evaluations_total":  true,
	"plant_alerts_created_total":    true,
	"plant_actuator_switches_total": true,

	// MQTT metrics.
	"plant_mqtt_messages_total": true,

	// Recording rules.
	"plant:http_requests:rate5m":     true,
	"plant:http_errors:rate5m":       true,
	"plant:readings_ingested:rate5m": true,
	"plant:ingest_rejected:rate5m":   true,
	"plant:ingestion_errors:rate5m":  true,
	"plant:alerts_created:rate5m":    true,
	"plant:mqtt_failed:rate5m":       true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
