package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const baseReadingsSelect = `SELECT id, sensor_id, value, unit, recorded_at, source, raw_payload, created_at
FROM readings`

const baseAlertsSelect = `SELECT id, sensor_id, reading_id, rule_id, severity, message, status, created_at
FROM alerts`

// ClampPage returns the limit and offset a query applies: a non-positive
// limit becomes the default, limits above the maximum are capped and
// negative offsets become zero.
func ClampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, max(offset, 0)
}

// ToSQL builds the data query for a reading query and its positional
// parameters. Readings come back most recent first.
func (q *ReadingQuery) ToSQL() (string, []any) {
	var conditions []string
	var args []any

	if q.SensorID != nil {
		args = append(args, *q.SensorID)
		conditions = append(conditions, fmt.Sprintf("sensor_id = $%d", len(args)))
	}

	limit, offset := ClampPage(q.Limit, q.Offset)

	return fmt.Sprintf(
		"%s%s ORDER BY recorded_at DESC, id DESC LIMIT %d OFFSET %d",
		baseReadingsSelect, where(conditions), limit, offset,
	), args
}

// ToSQL builds the data query for an alert query and its positional
// parameters. Alerts come back most recent first.
func (q *AlertQuery) ToSQL() (string, []any) {
	var conditions []string
	var args []any

	if q.SensorID != nil {
		args = append(args, *q.SensorID)
		conditions = append(conditions, fmt.Sprintf("sensor_id = $%d", len(args)))
	}

	if q.Status != nil {
		args = append(args, string(*q.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	limit, offset := ClampPage(q.Limit, q.Offset)

	return fmt.Sprintf(
		"%s%s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d",
		baseAlertsSelect, where(conditions), limit, offset,
	), args
}

func where(conditions []string) string {
	if len(conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conditions, " AND ")
}
