package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// Outcome is the result of evaluating one rule against a reading.
type Outcome struct {
	RuleID int64
	Fired  bool

	// Set when the rule fired.
	AlertID  int64
	Severity domain.Severity

	// Set when the fired rule drives an actuator. Switched is false when the
	// actuator was already on.
	ActuatorID *int64
	Switched   bool

	// Err is a comparison failure. A rule with Err set did not fire.
	Err error
}

// Evaluate runs every active rule of the sensor against the reading inside
// tx. Rules are independent: each one that fires creates its own alert and,
// if it has an actuator, switches that actuator on. Actuators are never
// switched off.
//
// A rule that cannot be compared does not fire and is reported through its
// Outcome. Persistence failures abort evaluation and are returned.
func (eng *Engine) Evaluate(
	ctx context.Context,
	tx store.Tx,
	sensor *domain.Sensor,
	reading *domain.Reading,
) ([]Outcome, error) {
	rules, err := tx.ListActiveRules(ctx, sensor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing active rules for sensor %s: %w", sensor.Code, err)
	}

	outcomes := make([]Outcome, 0, len(rules))
	for i := range rules {
		out, err := eng.evaluateRule(ctx, tx, &rules[i], reading)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
	}

	return outcomes, nil
}

func (eng *Engine) evaluateRule(
	ctx context.Context,
	tx store.Tx,
	rule *domain.Rule,
	reading *domain.Reading,
) (Outcome, error) {
	out := Outcome{RuleID: rule.ID}

	fired, err := rule.Comparator.Compare(reading.Value, rule.Threshold)
	if err != nil {
		eng.log.Debug("rule not evaluated",
			"rule", rule.ID,
			"comparator", rule.Comparator,
			"value", reading.Value,
			"threshold", rule.Threshold,
			"error", err,
		)
		out.Err = err
		return out, nil
	}
	if !fired {
		return out, nil
	}
	out.Fired = true

	severity := rule.Severity
	if severity == "" {
		severity = domain.SeverityWarn
	}

	alert := &domain.Alert{
		SensorID:  rule.SensorID,
		ReadingID: &reading.ID,
		RuleID:    &rule.ID,
		Severity:  severity,
		Message:   rule.ActionMessage,
		Status:    domain.AlertNew,
	}
	if err := tx.CreateAlert(ctx, alert); err != nil {
		return out, fmt.Errorf("creating alert for rule %d: %w", rule.ID, err)
	}
	out.AlertID = alert.ID
	out.Severity = severity

	if rule.ActuatorID == nil {
		return out, nil
	}

	wasOn, err := tx.SwitchActuatorOn(ctx, *rule.ActuatorID)
	if err != nil {
		return out, fmt.Errorf("switching actuator for rule %d: %w", rule.ID, err)
	}
	out.ActuatorID = rule.ActuatorID
	out.Switched = !wasOn

	return out, nil
}

// recordOutcomes updates metrics for a committed ingestion.
func recordOutcomes(outcomes []Outcome) {
	for i := range outcomes {
		out := &outcomes[i]
		switch {
		case out.Err != nil:
			metrics.RuleEvaluationsTotal.WithLabelValues("error").Inc()
		case !out.Fired:
			metrics.RuleEvaluationsTotal.WithLabelValues("skipped").Inc()
		default:
			metrics.RuleEvaluationsTotal.WithLabelValues("fired").Inc()
			metrics.AlertsCreatedTotal.WithLabelValues(string(out.Severity)).Inc()
			if out.ActuatorID != nil {
				metrics.ActuatorSwitchesTotal.WithLabelValues("rule", "on").Inc()
			}
		}
	}
}
