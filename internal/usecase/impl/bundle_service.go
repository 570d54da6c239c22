package impl

import (
	"context"
	"log/slog"

	deliverycontext "packline/internal/delivery/context"
	"packline/internal/domain/entity"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	"packline/internal/domain/service"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bundleService implements the BundleUsecase interface. It covers bundle setup
// and inbound receiving, the two flows that run before any scanning starts.
type bundleService struct {
	bundleRepo repository.BundleRepository
	unitRepo   repository.UnitRepository
	labels     service.LabelService
	logger     *slog.Logger
}

// BundleServiceParams holds dependencies for BundleService, injected by Fx.
type BundleServiceParams struct {
	fx.In

	BundleRepo repository.BundleRepository
	UnitRepo   repository.UnitRepository
	Labels     service.LabelService
	Logger     *slog.Logger
}

// NewBundleService is the constructor for bundleService.
func NewBundleService(params BundleServiceParams) usecase.BundleUsecase {
	return &bundleService{
		bundleRepo: params.BundleRepo,
		unitRepo:   params.UnitRepo,
		labels:     params.Labels,
		logger:     params.Logger,
	}
}

// CreateBundle sets up a new pending bundle after checking the pack configuration.
func (srv *bundleService) CreateBundle(ctx context.Context, orgID uuid.UUID, input *usecase.CreateBundleInput) (*entity.Bundle, error) {
	if input.PackSize <= 0 || input.TargetCount <= 0 || input.TargetCount%input.PackSize != 0 {
		return nil, domainerrors.ErrInvalidPackConfig
	}

	bundle := &entity.Bundle{
		ID:          uuid.New(),
		OrgID:       orgID,
		ProductID:   input.ProductID,
		Status:      entity.BundleStatusPending,
		TargetCount: input.TargetCount,
		PackSize:    input.PackSize,
	}

	if err := srv.bundleRepo.CreateBundle(ctx, bundle); err != nil {
		return nil, errors.Wrap(err, "failed to create bundle")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("bundle created",
		slog.String("bundle_id", bundle.ID.String()),
		slog.String("product_id", bundle.ProductID.String()),
		slog.Int("target_count", bundle.TargetCount),
		slog.Int("pack_size", bundle.PackSize),
	)

	return bundle, nil
}

// RegisterUnit records one physically received unit. When the input carries no
// QR code a fresh one is generated, so pre-labeled and unlabeled stock both work.
func (srv *bundleService) RegisterUnit(ctx context.Context, orgID uuid.UUID, input *usecase.RegisterUnitInput) (*entity.Unit, error) {
	qrCode := input.QRCode
	if qrCode == "" {
		qrCode = uuid.New().String()
	}

	unit := &entity.Unit{
		ID:        uuid.New(),
		OrgID:     orgID,
		ProductID: input.ProductID,
		QRCode:    qrCode,
	}

	if err := srv.unitRepo.CreateUnit(ctx, unit); err != nil {
		if errors.Is(err, repository.ErrDuplicateQRCode) {
			return nil, domainerrors.ErrDuplicateQRCode
		}

		return nil, errors.Wrap(err, "failed to create unit")
	}

	return unit, nil
}

// UnitLabel renders the printable QR label PNG for a registered unit.
func (srv *bundleService) UnitLabel(ctx context.Context, orgID, unitID uuid.UUID) ([]byte, error) {
	unit, err := srv.unitRepo.FindUnitByID(ctx, unitID)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return nil, domainerrors.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by ID")
	}
	if unit.OrgID != orgID {
		return nil, domainerrors.ErrUnitNotFound
	}

	png, err := srv.labels.GenerateUnitLabel(unit.QRCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate unit label")
	}

	return png, nil
}

// ListBundleUnits returns every unit claimed by the bundle.
func (srv *bundleService) ListBundleUnits(ctx context.Context, orgID, bundleID uuid.UUID) ([]*entity.Unit, error) {
	bundle, err := srv.bundleRepo.FindBundleByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return nil, domainerrors.ErrBundleNotFound
		}

		return nil, errors.Wrap(err, "failed to find bundle by ID")
	}
	if bundle.OrgID != orgID {
		return nil, domainerrors.ErrBundleNotFound
	}

	units, err := srv.unitRepo.FindUnitsByBundle(ctx, bundleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bundle units")
	}

	return units, nil
}
