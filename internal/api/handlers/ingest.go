package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/plant-telemetry/internal/engine"
)

// IngestPath is where devices submit readings.
const IngestPath = "/api/v1/readings/ingest"

// DefaultMaxBodyBytes caps a submission when no limit is configured.
const DefaultMaxBodyBytes int64 = 64 << 10

// Receiver accepts one raw reading submission.
type Receiver interface {
	Receive(ctx context.Context, body []byte) engine.IngestResult
}

// IngestHandler serves the reading ingress endpoint.
type IngestHandler struct {
	receiver Receiver
	maxBody  int64
	log      *slog.Logger
}

// IngestOption configures an IngestHandler.
type IngestOption func(*IngestHandler)

// WithMaxBodyBytes caps the accepted request body size.
func WithMaxBodyBytes(n int64) IngestOption {
	return func(h *IngestHandler) {
		if n > 0 {
			h.maxBody = n
		}
	}
}

// WithIngestLogger sets the logger for the handler.
func WithIngestLogger(l *slog.Logger) IngestOption {
	return func(h *IngestHandler) {
		h.log = l
	}
}

// NewIngestHandler creates a new IngestHandler.
func NewIngestHandler(r Receiver, opts ...IngestOption) *IngestHandler {
	h := &IngestHandler{
		receiver: r,
		maxBody:  DefaultMaxBodyBytes,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Ingest accepts a JSON reading. Only POST is allowed; every answer carries
// the {"ok":...} body.
func (h *IngestHandler) Ingest(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		return c.JSON(http.StatusMethodNotAllowed, engine.IngestResult{Error: "method not allowed"})
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, h.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, engine.IngestResult{Error: "payload too large"})
		}
		h.log.Warn("reading request body", "error", err)
		return c.JSON(http.StatusBadRequest, engine.IngestResult{Error: engine.MsgInvalidJSON})
	}

	res := h.receiver.Receive(c.Request().Context(), body)

	switch res.Kind {
	case engine.ResultAccepted:
		return c.JSON(http.StatusCreated, res)
	case engine.ResultInvalid:
		return c.JSON(http.StatusBadRequest, res)
	default:
		return c.JSON(http.StatusInternalServerError, res)
	}
}

// RegisterIngestRoutes mounts the ingress endpoint for every method so that
// non-POST requests get the ingress 405 body.
func RegisterIngestRoutes(e *echo.Echo, h *IngestHandler, mw ...echo.MiddlewareFunc) {
	e.Any(IngestPath, h.Ingest, mw...)
}
