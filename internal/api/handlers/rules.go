package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// RulesHandler handles threshold rule management.
type RulesHandler struct {
	store store.Store
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(s store.Store) *RulesHandler {
	return &RulesHandler{store: s}
}

// --- Input/Output types ---

// ListRulesInput filters rules.
type ListRulesInput struct {
	Sensor string `query:"sensor" doc:"Filter by sensor code"`
}

// ListRulesOutput is the response for listing rules.
type ListRulesOutput struct {
	Body []domain.Rule
}

// CreateRuleInput is the request to create a rule.
type CreateRuleInput struct {
	Body struct {
		SensorCode    string            `json:"sensor_code"             minLength:"1" doc:"Sensor the rule watches" example:"S-01"`
		ActuatorCode  string            `json:"actuator_code,omitempty" doc:"Actuator switched on when the rule fires" example:"A-01"`
		Comparator    domain.Comparator `json:"comparator"              enum:"GT,LT,GE,LE,EQ" doc:"Comparison applied as value <op> threshold"`
		Threshold     float64           `json:"threshold"               doc:"Threshold compared against each reading"`
		ActionMessage string            `json:"action_message"          minLength:"1" maxLength:"255" doc:"Alert message"`
		Severity      domain.Severity   `json:"severity,omitempty"      enum:"INFO,WARN,CRITICAL," doc:"Alert severity (default WARN)"`
		Active        *bool             `json:"active,omitempty"        doc:"Whether the rule is evaluated (default true)"`
	}
}

// RuleOutput is the response for a single rule.
type RuleOutput struct {
	Body domain.Rule
}

// SetRuleActiveInput activates or deactivates a rule.
type SetRuleActiveInput struct {
	ID   int64 `path:"id" doc:"Rule ID" minimum:"1"`
	Body struct {
		Active bool `json:"active" doc:"Whether the rule is evaluated"`
	}
}

// SetRuleActiveOutput is the response for toggling a rule.
type SetRuleActiveOutput struct {
	Body StatusResponse
}

// --- Handlers ---

// ListRules returns rules, optionally for one sensor.
func (h *RulesHandler) ListRules(ctx context.Context, input *ListRulesInput) (*ListRulesOutput, error) {
	var sensorID *int64
	if input.Sensor != "" {
		sn, err := h.store.GetSensorByCode(ctx, input.Sensor)
		if err != nil {
			return nil, storeError("sensor", err)
		}
		sensorID = &sn.ID
	}

	rules, err := h.store.ListRules(ctx, sensorID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list rules: " + err.Error())
	}
	if rules == nil {
		rules = []domain.Rule{}
	}
	return &ListRulesOutput{Body: rules}, nil
}

// CreateRule binds a threshold rule to a sensor and optionally an actuator.
func (h *RulesHandler) CreateRule(ctx context.Context, input *CreateRuleInput) (*RuleOutput, error) {
	b := input.Body
	sn, err := h.store.GetSensorByCode(ctx, b.SensorCode)
	if err != nil {
		return nil, storeError("sensor", err)
	}

	r := domain.NewRule(sn.ID, b.Comparator, b.Threshold, b.ActionMessage)
	if b.Severity != "" {
		r.Severity = b.Severity
	}
	if b.Active != nil {
		r.Active = *b.Active
	}

	if b.ActuatorCode != "" {
		a, err := h.store.GetActuatorByCode(ctx, b.ActuatorCode)
		if err != nil {
			return nil, storeError("actuator", err)
		}
		r.ActuatorID = &a.ID
	}

	if err := h.store.CreateRule(ctx, r); err != nil {
		return nil, storeError("rule", err)
	}
	return &RuleOutput{Body: *r}, nil
}

// SetRuleActive toggles whether a rule is evaluated.
func (h *RulesHandler) SetRuleActive(ctx context.Context, input *SetRuleActiveInput) (*SetRuleActiveOutput, error) {
	if err := h.store.SetRuleActive(ctx, input.ID, input.Body.Active); err != nil {
		return nil, storeError("rule", err)
	}
	return &SetRuleActiveOutput{Body: StatusResponse{Status: "updated"}}, nil
}

// RegisterRuleRoutes registers rule endpoints with the Huma API.
func RegisterRuleRoutes(api huma.API, h *RulesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rules",
		Method:      http.MethodGet,
		Path:        "/api/v1/rules",
		Summary:     "List rules",
		Description: "Returns threshold rules, optionally filtered by sensor code.",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListRules)

	huma.Register(api, huma.Operation{
		OperationID:   "create-rule",
		Method:        http.MethodPost,
		Path:          "/api/v1/rules",
		Summary:       "Create a rule",
		Description:   "Creates a threshold rule evaluated against every new reading of the sensor.",
		Tags:          []string{"rules"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound},
	}, h.CreateRule)

	huma.Register(api, huma.Operation{
		OperationID: "set-rule-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/rules/{id}/active",
		Summary:     "Activate or deactivate a rule",
		Tags:        []string{"rules"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetRuleActive)
}
