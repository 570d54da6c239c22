package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"packline/internal/delivery/http/middleware"
	"packline/internal/delivery/http/validator"
	"packline/internal/domain/entity"
	mockUsecase "packline/internal/mocks/usecase"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newScanContext(t *testing.T, orgID uuid.UUID, bundleID string, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/bundles/"+bundleID+"/scan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bundleID)
	if orgID != uuid.Nil {
		c.Set(middleware.ContextKeyOrgID, orgID)
	}

	return c, rec
}

func newTestScanHandler(t *testing.T) (*ScanHandler, *mockUsecase.MockAssemblyUsecase) {
	t.Helper()

	assemblyUC := mockUsecase.NewMockAssemblyUsecase(t)
	h := NewScanHandler(ScanHandlerParams{
		AssemblyUC: assemblyUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, assemblyUC
}

func TestScanHandler_Scan_AcceptedAnswersOK(t *testing.T) {
	t.Parallel()

	h, assemblyUC := newTestScanHandler(t)
	orgID := uuid.New()
	bundleID := uuid.New()

	session := &entity.AssemblySession{
		BundleID:     bundleID,
		Status:       entity.BundleStatusAssembling,
		ScannedCount: 3,
		TargetCount:  6,
		Remaining:    3,
	}

	assemblyUC.EXPECT().
		Scan(mock.Anything, orgID, bundleID, "unit-qr-001").
		Return(&usecase.ScanResult{Accepted: true, Session: session}, nil).
		Once()

	c, rec := newScanContext(t, orgID, bundleID.String(), `{"scanned_text":"unit-qr-001"}`)

	require.NoError(t, h.Scan(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool               `json:"success"`
		Data    usecase.ScanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.True(t, envelope.Data.Accepted)
	require.NotNil(t, envelope.Data.Session)
	assert.Equal(t, 3, envelope.Data.Session.ScannedCount)
}

func TestScanHandler_Scan_RejectionIsStillOK(t *testing.T) {
	t.Parallel()

	h, assemblyUC := newTestScanHandler(t)
	orgID := uuid.New()
	bundleID := uuid.New()

	assemblyUC.EXPECT().
		Scan(mock.Anything, orgID, bundleID, "unit-qr-001").
		Return(&usecase.ScanResult{
			Accepted: false,
			Reason:   entity.RejectReasonAlreadyAssigned,
			Message:  "此單位已被其他組合箱認領",
		}, nil).
		Once()

	c, rec := newScanContext(t, orgID, bundleID.String(), `{"scanned_text":"unit-qr-001"}`)

	require.NoError(t, h.Scan(c))
	// A rejected claim is a normal outcome for a scanning terminal.
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data usecase.ScanResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.Accepted)
	assert.Equal(t, entity.RejectReasonAlreadyAssigned, envelope.Data.Reason)
}

func TestScanHandler_Scan_RejectsInvalidBundleID(t *testing.T) {
	t.Parallel()

	h, _ := newTestScanHandler(t)

	c, rec := newScanContext(t, uuid.New(), "not-a-uuid", `{"scanned_text":"unit-qr-001"}`)

	require.NoError(t, h.Scan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScanHandler_Scan_RejectsEmptyScannedText(t *testing.T) {
	t.Parallel()

	h, _ := newTestScanHandler(t)

	c, rec := newScanContext(t, uuid.New(), uuid.New().String(), `{"scanned_text":""}`)

	require.NoError(t, h.Scan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScanHandler_Scan_RequiresOrganization(t *testing.T) {
	t.Parallel()

	h, _ := newTestScanHandler(t)

	c, rec := newScanContext(t, uuid.Nil, uuid.New().String(), `{"scanned_text":"unit-qr-001"}`)

	require.NoError(t, h.Scan(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
