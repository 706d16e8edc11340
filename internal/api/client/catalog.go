package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// SensorRequest contains the fields the API accepts when registering a sensor.
type SensorRequest struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Location    string            `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Kind        domain.SensorKind `json:"kind"`
	Unit        string            `json:"unit"`
	Model       string            `json:"model,omitempty"`
	RangeMin    *float64          `json:"range_min,omitempty"`
	RangeMax    *float64          `json:"range_max,omitempty"`
	TankCode    *string           `json:"tank_code,omitempty"`
	IsCritical  bool              `json:"is_critical,omitempty"`
}

// SensorDetail is a sensor with its latest reading and range state.
type SensorDetail struct {
	domain.Sensor

	LatestReading *domain.Reading `json:"latest_reading,omitempty"`
	OutOfRange    bool            `json:"out_of_range"`
}

// ActuatorRequest contains the fields the API accepts when registering an
// actuator.
type ActuatorRequest struct {
	Code        string              `json:"code"`
	Name        string              `json:"name"`
	Location    string              `json:"location,omitempty"`
	Description string              `json:"description,omitempty"`
	Kind        domain.ActuatorKind `json:"kind"`
	Channel     string              `json:"channel"`
	PowerWatts  *float64            `json:"power_watts,omitempty"`
	TankCode    *string             `json:"tank_code,omitempty"`
}

// RuleRequest contains the fields the API accepts when creating a rule.
type RuleRequest struct {
	SensorCode    string            `json:"sensor_code"`
	ActuatorCode  string            `json:"actuator_code,omitempty"`
	Comparator    domain.Comparator `json:"comparator"`
	Threshold     float64           `json:"threshold"`
	ActionMessage string            `json:"action_message"`
	Severity      domain.Severity   `json:"severity,omitempty"`
	Active        *bool             `json:"active,omitempty"`
}

// ListSensors returns all sensors.
func (c *Client) ListSensors(ctx context.Context) ([]domain.Sensor, error) {
	var sensors []domain.Sensor
	if err := c.get(ctx, "/api/v1/sensors", &sensors); err != nil {
		return nil, err
	}
	return sensors, nil
}

// GetSensor returns a sensor by code with its current state.
func (c *Client) GetSensor(ctx context.Context, code string) (*SensorDetail, error) {
	var d SensorDetail
	if err := c.get(ctx, "/api/v1/sensors/"+url.PathEscape(code), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CreateSensor registers a sensor.
func (c *Client) CreateSensor(ctx context.Context, req *SensorRequest) (*domain.Sensor, error) {
	var created domain.Sensor
	if err := c.post(ctx, "/api/v1/sensors", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetSensorActive activates or deactivates a sensor.
func (c *Client) SetSensorActive(ctx context.Context, code string, active bool) (*domain.Sensor, error) {
	var sn domain.Sensor
	body := map[string]bool{"active": active}
	if err := c.put(ctx, fmt.Sprintf("/api/v1/sensors/%s/active", url.PathEscape(code)), body, &sn); err != nil {
		return nil, err
	}
	return &sn, nil
}

// DeleteSensor deletes a sensor and everything recorded for it.
func (c *Client) DeleteSensor(ctx context.Context, code string) error {
	return c.del(ctx, "/api/v1/sensors/"+url.PathEscape(code), nil)
}

// ListActuators returns all actuators.
func (c *Client) ListActuators(ctx context.Context) ([]domain.Actuator, error) {
	var actuators []domain.Actuator
	if err := c.get(ctx, "/api/v1/actuators", &actuators); err != nil {
		return nil, err
	}
	return actuators, nil
}

// GetActuator returns an actuator by code.
func (c *Client) GetActuator(ctx context.Context, code string) (*domain.Actuator, error) {
	var a domain.Actuator
	if err := c.get(ctx, "/api/v1/actuators/"+url.PathEscape(code), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateActuator registers an actuator.
func (c *Client) CreateActuator(ctx context.Context, req *ActuatorRequest) (*domain.Actuator, error) {
	var created domain.Actuator
	if err := c.post(ctx, "/api/v1/actuators", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SwitchActuator turns an actuator on or off.
func (c *Client) SwitchActuator(ctx context.Context, code string, on bool) (*domain.Actuator, error) {
	state := "off"
	if on {
		state = "on"
	}
	var a domain.Actuator
	if err := c.post(ctx, fmt.Sprintf("/api/v1/actuators/%s/%s", url.PathEscape(code), state), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteActuator deletes an actuator by code.
func (c *Client) DeleteActuator(ctx context.Context, code string) error {
	return c.del(ctx, "/api/v1/actuators/"+url.PathEscape(code), nil)
}

// ListRules returns rules, optionally only those of one sensor.
func (c *Client) ListRules(ctx context.Context, sensorCode string) ([]domain.Rule, error) {
	var rules []domain.Rule
	path := "/api/v1/rules" + pageQuery(0, 0, map[string]string{"sensor": sensorCode})
	if err := c.get(ctx, path, &rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// CreateRule creates a threshold rule.
func (c *Client) CreateRule(ctx context.Context, req *RuleRequest) (*domain.Rule, error) {
	var created domain.Rule
	if err := c.post(ctx, "/api/v1/rules", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// SetRuleActive activates or deactivates a rule.
func (c *Client) SetRuleActive(ctx context.Context, id int64, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, "/api/v1/rules/"+strconv.FormatInt(id, 10)+"/active", body, nil)
}
