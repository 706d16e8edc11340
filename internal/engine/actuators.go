package engine

import (
	"context"
	"fmt"

	"github.com/donaldgifford/plant-telemetry/internal/metrics"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// SetActuator applies an explicit on/off transition to the actuator with the
// given code and returns its new state. This is the only way an actuator is
// switched off.
func (eng *Engine) SetActuator(ctx context.Context, code string, on bool) (*domain.Actuator, error) {
	a, err := eng.store.GetActuatorByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("getting actuator %s: %w", code, err)
	}

	if err := eng.store.SetActuatorOn(ctx, a.ID, on); err != nil {
		return nil, fmt.Errorf("switching actuator %s: %w", code, err)
	}
	a.IsOn = on

	state := "off"
	if on {
		state = "on"
	}
	metrics.ActuatorSwitchesTotal.WithLabelValues("manual", state).Inc()
	eng.log.Info("actuator switched", "actuator", code, "state", state)

	return a, nil
}
