// Package handlers implements the HTTP surface of plant-telemetry: the
// reading ingress endpoint and probes on Echo, and the catalog and query
// API on Huma.
package handlers

import (
	"errors"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/plant-telemetry/internal/store"
)

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// storeError maps a store failure to an API error.
func storeError(what string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound(what + " not found")
	case errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict(what + " already exists")
	default:
		return huma.Error500InternalServerError(fmt.Sprintf("%s: %v", what, err))
	}
}
