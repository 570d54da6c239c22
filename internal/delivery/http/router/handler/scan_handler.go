package handler

import (
	"log/slog"
	"net/http"

	"packline/internal/delivery/http/middleware"
	"packline/internal/delivery/http/response"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	AssemblyUC usecase.AssemblyUsecase
	Logger     *slog.Logger
}

// ScanHandler holds dependencies for the scan submission handler
type ScanHandler struct {
	assemblyUC usecase.AssemblyUsecase
	logger     *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		assemblyUC: params.AssemblyUC,
		logger:     params.Logger,
	}
}

// ScanRequest represents the raw text read off a unit's QR label
type ScanRequest struct {
	ScannedText string `json:"scanned_text" validate:"required"`
}

// Scan handles one scan submission against a bundle. Rejections are normal
// outcomes for a scanning terminal, so both accepted and rejected scans
// answer 200 with the result body; HTTP errors are reserved for malformed
// requests and systemic failures.
func (h *ScanHandler) Scan(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	bundleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	var req ScanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid scan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.assemblyUC.Scan(c.Request().Context(), orgID, bundleID, req.ScannedText)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Scan processed")
}
