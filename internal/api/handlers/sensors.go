package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// SensorsHandler handles the sensor catalog and its readings.
type SensorsHandler struct {
	store store.Store
}

// NewSensorsHandler creates a new SensorsHandler.
func NewSensorsHandler(s store.Store) *SensorsHandler {
	return &SensorsHandler{store: s}
}

// --- Input/Output types ---

// ListSensorsOutput is the response for listing sensors.
type ListSensorsOutput struct {
	Body []domain.Sensor
}

// CreateSensorInput is the request to register a sensor.
type CreateSensorInput struct {
	Body struct {
		Code        string            `json:"code"                  minLength:"1" maxLength:"50" doc:"Unique device code" example:"S-01"`
		Name        string            `json:"name"                  minLength:"1" maxLength:"100" doc:"Display name"`
		Location    string            `json:"location,omitempty"    doc:"Physical location"`
		Description string            `json:"description,omitempty" doc:"Free-form notes"`
		Kind        domain.SensorKind `json:"kind"                  enum:"LEVEL,INFRARED,PH,OTHER" doc:"What the sensor measures"`
		Unit        string            `json:"unit"                  minLength:"1" maxLength:"20" doc:"Unit of measure" example:"cm"`
		Model       string            `json:"model,omitempty"       doc:"Hardware model"`
		RangeMin    *float64          `json:"range_min,omitempty"   doc:"Lower bound of normal operation"`
		RangeMax    *float64          `json:"range_max,omitempty"   doc:"Upper bound of normal operation"`
		TankCode    *string           `json:"tank_code,omitempty"   doc:"Tank the sensor is mounted on"`
		IsCritical  bool              `json:"is_critical,omitempty" doc:"Whether the sensor is critical"`
	}
}

// SensorOutput is the response for a single sensor.
type SensorOutput struct {
	Body domain.Sensor
}

// SensorCodeInput selects a sensor by code.
type SensorCodeInput struct {
	Code string `path:"code" doc:"Sensor code"`
}

// SensorDetail is a sensor with its current state.
type SensorDetail struct {
	domain.Sensor

	LatestReading *domain.Reading `json:"latest_reading,omitempty"`
	OutOfRange    bool            `json:"out_of_range"`
}

// GetSensorOutput is the response for getting a sensor.
type GetSensorOutput struct {
	Body SensorDetail
}

// SetSensorActiveInput activates or deactivates a sensor.
type SetSensorActiveInput struct {
	Code string `path:"code" doc:"Sensor code"`
	Body struct {
		Active bool `json:"active" doc:"Whether the sensor is active"`
	}
}

// ListSensorReadingsInput pages through a sensor's readings.
type ListSensorReadingsInput struct {
	Code   string `path:"code"    doc:"Sensor code"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListReadingsOutput is a page of readings, most recent first.
type ListReadingsOutput struct {
	Body struct {
		Readings []domain.Reading `json:"readings"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// --- Handlers ---

// ListSensors returns all sensors.
func (h *SensorsHandler) ListSensors(ctx context.Context, _ *struct{}) (*ListSensorsOutput, error) {
	sensors, err := h.store.ListSensors(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list sensors: " + err.Error())
	}
	if sensors == nil {
		sensors = []domain.Sensor{}
	}
	return &ListSensorsOutput{Body: sensors}, nil
}

// CreateSensor registers a sensor. pH sensors start inactive.
func (h *SensorsHandler) CreateSensor(ctx context.Context, input *CreateSensorInput) (*SensorOutput, error) {
	b := input.Body
	if b.RangeMin != nil && b.RangeMax != nil && *b.RangeMin > *b.RangeMax {
		return nil, huma.Error422UnprocessableEntity("range_min must not exceed range_max")
	}

	sn := domain.NewSensor(domain.Device{
		Code:        b.Code,
		Name:        b.Name,
		Location:    b.Location,
		Description: b.Description,
	}, b.Kind, b.Unit)
	sn.Model = b.Model
	sn.RangeMin = b.RangeMin
	sn.RangeMax = b.RangeMax
	sn.TankCode = b.TankCode
	sn.IsCritical = b.IsCritical

	if err := h.store.CreateSensor(ctx, sn); err != nil {
		return nil, storeError("sensor "+b.Code, err)
	}
	return &SensorOutput{Body: *sn}, nil
}

// GetSensor returns a sensor with its latest reading and range state.
func (h *SensorsHandler) GetSensor(ctx context.Context, input *SensorCodeInput) (*GetSensorOutput, error) {
	sn, err := h.store.GetSensorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("sensor", err)
	}

	latest, err := h.store.LatestReading(ctx, sn.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error500InternalServerError("failed to get latest reading: " + err.Error())
	}

	return &GetSensorOutput{Body: SensorDetail{
		Sensor:        *sn,
		LatestReading: latest,
		OutOfRange:    sn.IsOutOfRange(latest),
	}}, nil
}

// SetSensorActive toggles whether a sensor is active.
func (h *SensorsHandler) SetSensorActive(ctx context.Context, input *SetSensorActiveInput) (*SensorOutput, error) {
	sn, err := h.store.GetSensorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("sensor", err)
	}
	if err := h.store.SetSensorActive(ctx, sn.ID, input.Body.Active); err != nil {
		return nil, storeError("sensor", err)
	}
	sn.Active = input.Body.Active
	return &SensorOutput{Body: *sn}, nil
}

// DeleteSensor removes a sensor together with its readings, rules and
// alerts.
func (h *SensorsHandler) DeleteSensor(ctx context.Context, input *SensorCodeInput) (*struct{}, error) {
	sn, err := h.store.GetSensorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("sensor", err)
	}
	if err := h.store.DeleteSensor(ctx, sn.ID); err != nil {
		return nil, storeError("sensor", err)
	}
	return &struct{}{}, nil
}

// ListSensorReadings returns a sensor's readings, most recent first.
func (h *SensorsHandler) ListSensorReadings(
	ctx context.Context,
	input *ListSensorReadingsInput,
) (*ListReadingsOutput, error) {
	sn, err := h.store.GetSensorByCode(ctx, input.Code)
	if err != nil {
		return nil, storeError("sensor", err)
	}

	q := &store.ReadingQuery{SensorID: &sn.ID, Limit: input.Limit, Offset: input.Offset}
	readings, err := h.store.ListReadings(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list readings: " + err.Error())
	}
	if readings == nil {
		readings = []domain.Reading{}
	}

	resp := &ListReadingsOutput{}
	resp.Body.Readings = readings
	resp.Body.Limit, resp.Body.Offset = store.ClampPage(q.Limit, q.Offset)
	return resp, nil
}

// RegisterSensorRoutes registers sensor endpoints with the Huma API.
func RegisterSensorRoutes(api huma.API, h *SensorsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-sensors",
		Method:      http.MethodGet,
		Path:        "/api/v1/sensors",
		Summary:     "List sensors",
		Description: "Returns every registered sensor.",
		Tags:        []string{"sensors"},
	}, h.ListSensors)

	huma.Register(api, huma.Operation{
		OperationID:   "create-sensor",
		Method:        http.MethodPost,
		Path:          "/api/v1/sensors",
		Summary:       "Register a sensor",
		Description:   "Creates a sensor. pH sensors are created inactive and must be activated explicitly.",
		Tags:          []string{"sensors"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict, http.StatusUnprocessableEntity},
	}, h.CreateSensor)

	huma.Register(api, huma.Operation{
		OperationID: "get-sensor",
		Method:      http.MethodGet,
		Path:        "/api/v1/sensors/{code}",
		Summary:     "Get a sensor by code",
		Description: "Returns a sensor with its latest reading and whether that reading is out of range.",
		Tags:        []string{"sensors"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetSensor)

	huma.Register(api, huma.Operation{
		OperationID: "set-sensor-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/sensors/{code}/active",
		Summary:     "Activate or deactivate a sensor",
		Tags:        []string{"sensors"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetSensorActive)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-sensor",
		Method:        http.MethodDelete,
		Path:          "/api/v1/sensors/{code}",
		Summary:       "Delete a sensor",
		Description:   "Deletes a sensor with its readings, rules and alerts.",
		Tags:          []string{"sensors"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteSensor)

	huma.Register(api, huma.Operation{
		OperationID: "list-sensor-readings",
		Method:      http.MethodGet,
		Path:        "/api/v1/sensors/{code}/readings",
		Summary:     "List a sensor's readings",
		Description: "Returns readings for the sensor, most recent first.",
		Tags:        []string{"readings"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListSensorReadings)
}
