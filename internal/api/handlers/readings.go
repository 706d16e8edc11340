package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// ReadingsHandler handles reading lookups.
type ReadingsHandler struct {
	store store.Store
}

// NewReadingsHandler creates a new ReadingsHandler.
func NewReadingsHandler(s store.Store) *ReadingsHandler {
	return &ReadingsHandler{store: s}
}

// GetReadingInput selects a reading by ID.
type GetReadingInput struct {
	ID int64 `path:"id" doc:"Reading ID" minimum:"1"`
}

// ReadingDetail is a reading with its range state against its sensor.
type ReadingDetail struct {
	domain.Reading

	SensorCode string `json:"sensor_code"`
	OutOfRange bool   `json:"out_of_range"`
}

// GetReadingOutput is the response for getting a reading.
type GetReadingOutput struct {
	Body ReadingDetail
}

// GetReading returns a reading and whether it lies outside its sensor's range.
func (h *ReadingsHandler) GetReading(ctx context.Context, input *GetReadingInput) (*GetReadingOutput, error) {
	r, err := h.store.GetReading(ctx, input.ID)
	if err != nil {
		return nil, storeError("reading", err)
	}

	sn, err := h.store.GetSensor(ctx, r.SensorID)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to get sensor: " + err.Error())
	}

	return &GetReadingOutput{Body: ReadingDetail{
		Reading:    *r,
		SensorCode: sn.Code,
		OutOfRange: r.IsOutOfRange(sn),
	}}, nil
}

// RegisterReadingRoutes registers reading endpoints with the Huma API.
func RegisterReadingRoutes(api huma.API, h *ReadingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-reading",
		Method:      http.MethodGet,
		Path:        "/api/v1/readings/{id}",
		Summary:     "Get a reading by ID",
		Description: "Returns a single reading with its out-of-range state.",
		Tags:        []string{"readings"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetReading)
}
