package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// ActuatorSwitcher applies manual on/off transitions.
type ActuatorSwitcher interface {
	SetActuator(ctx context.Context, code string, on bool) (*domain.Actuator, error)
}

// ActuatorsHandler handles the actuator catalog and manual control.
type ActuatorsHandler struct {
	store    store.Store
	switcher ActuatorSwitcher
}

// NewActuatorsHandler creates a new ActuatorsHandler.
func NewActuatorsHandler(s store.Store, sw ActuatorSwitcher) *ActuatorsHandler {
	return &ActuatorsHandler{store: s, switcher: sw}
}

// --- Input/Output types ---

// ListActuatorsOutput is the response for listing actuators.
type ListActuatorsOutput struct {
	Body []domain.Actuator
}

// CreateActuatorInput is the request to register an actuator.
type CreateActuatorInput struct {
	Body struct {
		Code        string              `json:"code"                  minLength:"1" maxLength:"50" doc:"Unique device code" example:"A-01"`
		Name        string              `json:"name"                  minLength:"1" maxLength:"100" doc:"Display name"`
		Location    string              `json:"location,omitempty"    doc:"Physical location"`
		Description string              `json:"description,omitempty" doc:"Free-form notes"`
		Kind        domain.ActuatorKind `json:"kind"                  enum:"PUMP,VALVE,ALARM,OTHER" doc:"Device type"`
		Channel     string              `json:"channel"               minLength:"1" maxLength:"50" doc:"Control channel" example:"GPIO23"`
		PowerWatts  *float64            `json:"power_watts,omitempty" minimum:"0" doc:"Rated power"`
		TankCode    *string             `json:"tank_code,omitempty"   doc:"Tank the actuator serves"`
	}
}

// ActuatorOutput is the response for a single actuator.
type ActuatorOutput struct {
	Body domain.Actuator
}

// ActuatorCodeInput selects an actuator by code.
type ActuatorCodeInput struct {
	Code string `path:"code" doc:"Actuator code"`
}

// --- Handlers ---

// ListActuators returns all actuators.
func (h *ActuatorsHandler) ListActuators(ctx context.Context, _ *struct{}) (*ListActuatorsOutput, error) {
	actuators, err := h.store.ListActuators(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list actuators: " + err.Error())
	}
	if actuators == nil {
		actuators = []domain.Actuator{}
	}
	return &ListActuatorsOutput{Body: actuators}, nil
}

// CreateActuator registers an actuator in the off state.
func (h *ActuatorsHandler) CreateActuator(ctx context.Context, input *CreateActuatorInput) (*ActuatorOutput, error) {
	b := input.Body
	a := domain.NewActuator(domain.Device{
		Code:        b.Code,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
	}, b.Kind, b.Channel)
	a.PowerWatts = b.PowerWatts
	a.TankCode = b.TankCode

	if err := h.store.CreateActuator(ctx, a); err != nil {
		return nil, storeError("actuator "+b.Code, err)
	}
	return &ActuatorOutput{Body: *a}, nil
}

// GetActuator returns an actuator by code.
func (h *ActuatorsHandler) GetActuator(ctx context.Context, input *ActuatorCodeInput) (*ActuatorOutput, error) {
	a, err := h.store.GetActuatorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("actuator", err)
	}
	return &ActuatorOutput{Body: *a}, nil
}

// SwitchOn turns an actuator on.
func (h *ActuatorsHandler) SwitchOn(ctx context.Context, input *ActuatorCodeInput) (*ActuatorOutput, error) {
	return h.set(ctx, input.Code, true)
}

// SwitchOff turns an actuator off.
func (h *ActuatorsHandler) SwitchOff(ctx context.Context, input *ActuatorCodeInput) (*ActuatorOutput, error) {
	return h.set(ctx, input.Code, false)
}

func (h *ActuatorsHandler) set(ctx context.Context, code string, on bool) (*ActuatorOutput, error) {
	a, err := h.switcher.SetActuator(ctx, code, on)
	if err != nil {
		return nil, storeError("actuator", err)
	}
	return &ActuatorOutput{Body: *a}, nil
}

// DeleteActuator removes an actuator. Rules bound to it keep firing alerts
// without an action.
func (h *ActuatorsHandler) DeleteActuator(ctx context.Context, input *ActuatorCodeInput) (*struct{}, error) {
	a, err := h.store.GetActuatorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("actuator", err)
	}
	if err := h.store.DeleteActuator(ctx, a.ID); err != nil {
		return nil, storeError("actuator", err)
	}
	return &struct{}{}, nil
}

// RegisterActuatorRoutes registers actuator endpoints with the Huma API.
func RegisterActuatorRoutes(api huma.API, h *ActuatorsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-actuators",
		Method:      http.MethodGet,
		Path:        "/api/v1/actuators",
		Summary:     "List actuators",
		Tags:        []string{"actuators"},
	}, h.ListActuators)

	huma.Register(api, huma.Operation{
		OperationID:   "create-actuator",
		Method:        http.MethodPost,
		Path:          "/api/v1/actuators",
		Summary:       "Register an actuator",
		Description:   "Creates an actuator in the off state.",
		Tags:          []string{"actuators"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict},
	}, h.CreateActuator)

	huma.Register(api, huma.Operation{
		OperationID: "get-actuator",
		Method:      http.MethodGet,
		Path:        "/api/v1/actuators/{code}",
		Summary:     "Get an actuator by code",
		Tags:        []string{"actuators"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetActuator)

	huma.Register(api, huma.Operation{
		OperationID: "switch-actuator-on",
		Method:      http.MethodPost,
		Path:        "/api/v1/actuators/{code}/on",
		Summary:     "Switch an actuator on",
		Tags:        []string{"actuators"},
		Errors:      []int{http.StatusNotFound},
	}, h.SwitchOn)

	huma.Register(api, huma.Operation{
		OperationID: "switch-actuator-off",
		Method:      http.MethodPost,
		Path:        "/api/v1/actuators/{code}/off",
		Summary:     "Switch an actuator off",
		Description: "Manual control is the only way an actuator is switched off.",
		Tags:        []string{"actuators"},
		Errors:      []int{http.StatusNotFound},
	}, h.SwitchOff)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-actuator",
		Method:        http.MethodDelete,
		Path:          "/api/v1/actuators/{code}",
		Summary:       "Delete an actuator",
		Description:   "Deletes an actuator. Rules that referenced it are kept without an action.",
		Tags:          []string{"actuators"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteActuator)
}
