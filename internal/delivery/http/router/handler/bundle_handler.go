// Package handler contains the HTTP handlers for the assembly API.
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

// BundleHandlerParams holds dependencies for BundleHandler, injected by Fx.
type BundleHandlerParams struct {
	fx.In

	BundleUC   usecase.BundleUsecase
	AssemblyUC usecase.AssemblyUsecase
	Logger     *slog.Logger
}

// BundleHandler holds dependencies for bundle setup and receiving handlers
type BundleHandler struct {
	bundleUC   usecase.BundleUsecase
	assemblyUC usecase.AssemblyUsecase
	logger     *slog.Logger
}

// NewBundleHandler is the constructor for BundleHandler
func NewBundleHandler(params BundleHandlerParams) *BundleHandler {
	return &BundleHandler{
		bundleUC:   params.BundleUC,
		assemblyUC: params.AssemblyUC,
		logger:     params.Logger,
	}
}

// CreateBundleRequest represents the request body for setting up a bundle
type CreateBundleRequest struct {
	ProductID   string `json:"product_id" validate:"required,uuid"`
	TargetCount int    `json:"target_count" validate:"required,gt=0"`
	PackSize    int    `json:"pack_size" validate:"required,gt=0"`
}

// RegisterUnitRequest represents the request body for inbound receiving
type RegisterUnitRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	QRCode    string `json:"qr_code" validate:"omitempty,max=255"`
}

// CreateBundle handles bundle setup
func (h *BundleHandler) CreateBundle(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	var req CreateBundleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bundle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	bundle, err := h.bundleUC.CreateBundle(c.Request().Context(), orgID, &usecase.CreateBundleInput{
		ProductID:   productID,
		TargetCount: req.TargetCount,
		PackSize:    req.PackSize,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bundle, "Bundle created successfully")
}

// GetBundle handles retrieving a bundle's assembly session
func (h *BundleHandler) GetBundle(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	bundleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	session, err := h.assemblyUC.GetSession(c.Request().Context(), orgID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session, "Assembly session retrieved successfully")
}

// ListBundleUnits handles retrieving the units claimed by a bundle
func (h *BundleHandler) ListBundleUnits(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	bundleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid bundle ID")
	}

	units, err := h.bundleUC.ListBundleUnits(c.Request().Context(), orgID, bundleID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, units, "Bundle units retrieved successfully")
}

// RegisterUnit handles inbound receiving of one physical unit
func (h *BundleHandler) RegisterUnit(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	var req RegisterUnitRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid unit input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	unit, err := h.bundleUC.RegisterUnit(c.Request().Context(), orgID, &usecase.RegisterUnitInput{
		ProductID: productID,
		QRCode:    req.QRCode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, unit, "Unit registered successfully")
}

// UnitLabel handles rendering the printable QR label for a unit
func (h *BundleHandler) UnitLabel(c echo.Context) error {
	orgID, ok := middleware.GetOrgID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Organization missing from request context")
	}

	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid unit ID")
	}

	png, err := h.bundleUC.UnitLabel(c.Request().Context(), orgID, unitID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
