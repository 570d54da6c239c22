// Package handler contains the Pub/Sub push handlers for the fulfillment worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"packline/config"
	deliverycontext "packline/internal/delivery/context"
	"packline/internal/domain/constants"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/service"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// FulfillmentHandler handles Pub/Sub push messages carrying bundle completion announcements
type FulfillmentHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	fulfillmentUC  usecase.FulfillmentUsecase
}

// FulfillmentHandlerParams holds dependencies for the FulfillmentHandler
type FulfillmentHandlerParams struct {
	fx.In

	Config        *config.Config
	Logger        *slog.Logger
	FulfillmentUC usecase.FulfillmentUsecase
}

// NewFulfillmentHandler creates a new Pub/Sub push handler for fulfillment
func NewFulfillmentHandler(params FulfillmentHandlerParams) *FulfillmentHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &FulfillmentHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		fulfillmentUC:  params.FulfillmentUC,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *FulfillmentHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse completion announcement
	var event service.BundleCompletedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse completion event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing bundle completion",
		slog.String("bundle_id", event.BundleID.String()),
		slog.String("org_id", event.OrgID.String()),
		slog.Int("target_count", event.TargetCount),
	)

	if err := h.markSold(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to mark bundle sold",
			slog.String("bundle_id", event.BundleID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Bundle marked sold",
		slog.String("bundle_id", event.BundleID.String()),
	)

	return c.NoContent(http.StatusOK)
}

// markSold advances the bundle to sold, classifying failures for retry.
// A missing bundle is acked: redelivering it can never succeed. A bundle not
// yet visible as completed is retried to cover read-replica lag between the
// scan path and this worker.
func (h *FulfillmentHandler) markSold(ctx context.Context, event *service.BundleCompletedEvent) error {
	if event.BundleID == uuid.Nil {
		return errors.New("completion event missing bundle id")
	}

	err := h.fulfillmentUC.MarkSold(ctx, event.BundleID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerrors.ErrBundleNotFound):
		return errors.WithStack(err)
	case errors.Is(err, domainerrors.ErrBundleNotCompleted):
		return newRetryableError(errors.WithStack(err))
	default:
		return newRetryableError(errors.WithStack(err))
	}
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *FulfillmentHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.BundleCompletedEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
