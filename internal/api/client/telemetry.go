package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/plant-telemetry/pkg/types"
)

// IngestResponse is the ingress endpoint's answer.
type IngestResponse struct {
	OK         bool   `json:"ok"`
	ReadingID  int64  `json:"id,omitempty"`
	SensorCode string `json:"sensor,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ReadingDetail is a reading with its range state.
type ReadingDetail struct {
	domain.Reading

	SensorCode string `json:"sensor_code"`
	OutOfRange bool   `json:"out_of_range"`
}

// ReadingPage is a page of readings, most recent first.
type ReadingPage struct {
	Readings []domain.Reading `json:"readings"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// AlertPage is a page of alerts, most recent first.
type AlertPage struct {
	Alerts []domain.Alert `json:"alerts"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// AlertFilter narrows ListAlerts.
type AlertFilter struct {
	SensorCode string
	Status     domain.AlertStatus
	Limit      int
	Offset     int
}

// SubmitReading posts a raw payload to the ingress endpoint. A rejected
// submission returns the decoded response together with the API error.
func (c *Client) SubmitReading(ctx context.Context, payload map[string]any) (*IngestResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling payload: %w", err)
	}

	var res IngestResponse
	err = c.doRaw(ctx, http.MethodPost, "/api/v1/readings/ingest", body, &res)

	var apiErr *APIError
	if errors.As(err, &apiErr) && json.Unmarshal(apiErr.Body, &res) == nil && res.Error != "" {
		return &res, fmt.Errorf("reading rejected (HTTP %d): %s", apiErr.StatusCode, res.Error)
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetReading returns a reading by ID.
func (c *Client) GetReading(ctx context.Context, id int64) (*ReadingDetail, error) {
	var d ReadingDetail
	if err := c.get(ctx, "/api/v1/readings/"+strconv.FormatInt(id, 10), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ListSensorReadings returns a page of a sensor's readings.
func (c *Client) ListSensorReadings(ctx context.Context, code string, limit, offset int) (*ReadingPage, error) {
	var page ReadingPage
	path := fmt.Sprintf("/api/v1/sensors/%s/readings", url.PathEscape(code)) + pageQuery(limit, offset, nil)
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ListAlerts returns a page of alerts.
func (c *Client) ListAlerts(ctx context.Context, f AlertFilter) (*AlertPage, error) {
	var page AlertPage
	path := "/api/v1/alerts" + pageQuery(f.Limit, f.Offset, map[string]string{
		"sensor": f.SensorCode,
		"status": string(f.Status),
	})
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
