package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// AlertsHandler handles alert queries.
type AlertsHandler struct {
	store store.Store
}

// NewAlertsHandler creates a new AlertsHandler.
func NewAlertsHandler(s store.Store) *AlertsHandler {
	return &AlertsHandler{store: s}
}

// ListAlertsInput filters alerts.
type ListAlertsInput struct {
	Sensor string `query:"sensor" doc:"Filter by sensor code"`
	Status string `query:"status" doc:"Filter by status"               enum:"NEW,IN_PROGRESS,RESOLVED,"`
	Limit  int    `query:"limit"  doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListAlertsOutput is a page of alerts, most recent first.
type ListAlertsOutput struct {
	Body struct {
		Alerts []domain.Alert `json:"alerts"`
		Limit  int            `json:"limit"`
		Offset int            `json:"offset"`
	}
}

// ListAlerts returns alerts, most recent first.
func (h *AlertsHandler) ListAlerts(ctx context.Context, input *ListAlertsInput) (*ListAlertsOutput, error) {
	q := &store.AlertQuery{Limit: input.Limit, Offset: input.Offset}

	if input.Sensor != "" {
		sn, err := h.store.GetSensorByCode(ctx, input.Sensor)
		if err != nil {
			return nil, storeError("sensor", err)
		}
		q.SensorID = &sn.ID
	}

	if input.Status != "" {
		status := domain.AlertStatus(input.Status)
		q.Status = &status
	}

	alerts, err := h.store.ListAlerts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("failed to list alerts: " + err.Error())
	}
	if alerts == nil {
		alerts = []domain.Alert{}
	}

	resp := &ListAlertsOutput{}
	resp.Body.Alerts = alerts
	resp.Body.Limit, resp.Body.Offset = store.ClampPage(q.Limit, q.Offset)
	return resp, nil
}

// RegisterAlertRoutes registers alert endpoints with the Huma API.
func RegisterAlertRoutes(api huma.API, h *AlertsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/v1/alerts",
		Summary:     "List alerts",
		Description: "Returns alerts created by fired rules, most recent first.",
		Tags:        []string{"alerts"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListAlerts)
}
