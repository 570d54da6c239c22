package impl

import (
	"context"
	"log/slog"

	deliverycontext "packline/internal/delivery/context"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// fulfillmentService implements the FulfillmentUsecase interface.
type fulfillmentService struct {
	bundleRepo repository.BundleRepository
	logger     *slog.Logger
}

// FulfillmentServiceParams holds dependencies for FulfillmentService, injected by Fx.
type FulfillmentServiceParams struct {
	fx.In

	BundleRepo repository.BundleRepository
	Logger     *slog.Logger
}

// NewFulfillmentService is the constructor for fulfillmentService.
func NewFulfillmentService(params FulfillmentServiceParams) usecase.FulfillmentUsecase {
	return &fulfillmentService{
		bundleRepo: params.BundleRepo,
		logger:     params.Logger,
	}
}

// MarkSold advances a completed bundle to sold. Completion announcements can
// be delivered more than once, so an already sold bundle is treated as done.
func (srv *fulfillmentService) MarkSold(ctx context.Context, bundleID uuid.UUID) error {
	err := srv.bundleRepo.MarkSold(ctx, bundleID)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrBundleNotFound):
		return domainerrors.ErrBundleNotFound
	case errors.Is(err, repository.ErrBundleNotCompleted):
		return domainerrors.ErrBundleNotCompleted
	default:
		return errors.Wrap(err, "failed to mark bundle sold")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("bundle marked sold",
		slog.String("bundle_id", bundleID.String()),
	)

	return nil
}
