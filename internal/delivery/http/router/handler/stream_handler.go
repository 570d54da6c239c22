package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"packline/config"
	deliverycontext "packline/internal/delivery/context"
	"packline/internal/delivery/http/middleware"
	"packline/internal/delivery/http/response"
	"packline/internal/domain/entity"
	"packline/internal/domain/service"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	Config     *config.Config
	AssemblyUC usecase.AssemblyUsecase
	Relay      service.EventRelay
	Logger     *slog.Logger
}

// StreamHandler serves live assembly progress over Server-Sent Events.
type StreamHandler struct {
	config     *config.Config
	assemblyUC usecase.AssemblyUsecase
	relay      service.EventRelay
	logger     *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		config:     params.Config,
		assemblyUC: params.AssemblyUC,
		relay:      params.Relay,
		logger:     params.Logger,
	}
}

// Stream opens an SSE subscription on a bundle. The subscriber is registered
// before the first byte is written, then a synthetic connected event carrying
// the current session snapshot is sent so the viewer renders immediately
// instead of waiting for the next scan. Closing the connection removes the
// subscriber's mailbox; other subscribers on the same bundle are unaffected.
func (h *StreamHandler) Stream(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	bundleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	ctx := c.Request().Context()

	session, err := h.assemblyUC.GetSession(ctx, orgID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	subscriberID := uuid.New().String()
	if err := h.relay.Subscribe(bundleID, subscriberID); err != nil {
		return response.HandleAppError(c, err)
	}
	defer h.relay.Unsubscribe(bundleID, subscriberID)

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	logger.Info("stream subscriber connected",
		slog.String("bundle_id", bundleID.String()),
		slog.String("subscriber_id", subscriberID),
	)

	if err := writeSSEEvent(res, entity.NewConnectedEvent(session)); err != nil {
		return nil
	}

	ticker := time.NewTicker(h.config.Stream.PollIntervalOrDefault())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("stream subscriber disconnected",
				slog.String("bundle_id", bundleID.String()),
				slog.String("subscriber_id", subscriberID),
			)

			return nil
		case <-ticker.C:
			for _, event := range h.relay.Drain(bundleID, subscriberID) {
				if err := writeSSEEvent(res, event); err != nil {
					return nil
				}
			}
		}
	}
}

// writeSSEEvent frames one event per the SSE wire format and flushes it so
// the viewer sees it without waiting for the buffer to fill.
func writeSSEEvent(res *echo.Response, event *entity.AssemblyEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(res, "event: %s\ndata: %s\n\n", event.Type, data); err != nil {
		return err
	}

	res.Flush()

	return nil
}
