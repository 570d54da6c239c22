package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"packline/config"
	"packline/internal/delivery/http/middleware"
	"packline/internal/domain/entity"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/infra/relay"
	mockUsecase "packline/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStreamHandler(t *testing.T) (*StreamHandler, *mockUsecase.MockAssemblyUsecase, *relay.Relay) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eventRelay := relay.New(time.Minute, 16, logger)
	t.Cleanup(eventRelay.Close)

	assemblyUC := mockUsecase.NewMockAssemblyUsecase(t)

	h := NewStreamHandler(StreamHandlerParams{
		Config: &config.Config{
			Stream: &config.StreamConfig{PollInterval: 10 * time.Millisecond},
		},
		AssemblyUC: assemblyUC,
		Relay:      eventRelay,
		Logger:     logger,
	})

	return h, assemblyUC, eventRelay
}

func newStreamContext(t *testing.T, ctx context.Context, orgID uuid.UUID, bundleID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/bundles/"+bundleID.String()+"/stream", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bundleID.String())
	c.Set(middleware.ContextKeyOrgID, orgID)

	return c, rec
}

func TestStreamHandler_Stream_SendsConnectedSnapshotThenDrainedEvents(t *testing.T) {
	t.Parallel()

	h, assemblyUC, eventRelay := newTestStreamHandler(t)
	orgID := uuid.New()
	bundleID := uuid.New()

	session := &entity.AssemblySession{
		BundleID:     bundleID,
		Status:       entity.BundleStatusAssembling,
		ScannedCount: 2,
		TargetCount:  6,
		Remaining:    4,
	}

	assemblyUC.EXPECT().
		GetSession(mock.Anything, orgID, bundleID).
		Return(session, nil).
		Once()

	ctx, cancel := context.WithCancel(context.Background())
	c, rec := newStreamContext(t, ctx, orgID, bundleID)

	// The subscriber registers before the first byte is written, so an event
	// published shortly after the handler starts must be delivered.
	go func() {
		time.Sleep(50 * time.Millisecond)
		next := *session
		next.ScannedCount = 3
		next.Remaining = 3
		_ = eventRelay.Publish(bundleID, entity.NewProgressEvent(entity.EventTypeScanSuccess, &next))

		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	require.NoError(t, h.Stream(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: connected")
	assert.Contains(t, body, `"scannedCount":2`)
	assert.Contains(t, body, "event: scan_success")
	assert.Contains(t, body, `"scannedCount":3`)
}

func TestStreamHandler_Stream_UnknownBundleAnswersNotFound(t *testing.T) {
	t.Parallel()

	h, assemblyUC, _ := newTestStreamHandler(t)
	orgID := uuid.New()
	bundleID := uuid.New()

	assemblyUC.EXPECT().
		GetSession(mock.Anything, orgID, bundleID).
		Return(nil, domainerrors.ErrBundleNotFound).
		Once()

	c, rec := newStreamContext(t, context.Background(), orgID, bundleID)

	require.NoError(t, h.Stream(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamHandler_Stream_DisconnectRemovesOnlyOwnMailbox(t *testing.T) {
	t.Parallel()

	h, assemblyUC, eventRelay := newTestStreamHandler(t)
	orgID := uuid.New()
	bundleID := uuid.New()

	session := &entity.AssemblySession{
		BundleID:    bundleID,
		Status:      entity.BundleStatusAssembling,
		TargetCount: 6,
	}

	assemblyUC.EXPECT().
		GetSession(mock.Anything, orgID, bundleID).
		Return(session, nil).
		Once()

	// A second, independent subscriber on the same bundle.
	require.NoError(t, eventRelay.Subscribe(bundleID, "other-viewer"))

	ctx, cancel := context.WithCancel(context.Background())
	c, _ := newStreamContext(t, ctx, orgID, bundleID)

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	require.NoError(t, h.Stream(c))

	// The handler's own subscription is gone, the other viewer's mailbox
	// still receives events.
	require.NoError(t, eventRelay.Publish(bundleID, entity.NewProgressEvent(entity.EventTypeScanSuccess, session)))
	events := eventRelay.Drain(bundleID, "other-viewer")
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventTypeScanSuccess, events[0].Type)
}
