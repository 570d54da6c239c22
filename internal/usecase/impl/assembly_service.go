// Package impl contains the implementation of the application's business logic.
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

// Sentinel errors used to abort the claim transaction; both are translated
// into typed rejections, never surfaced to callers.
var (
	errClaimLost    = errors.New("unit was claimed concurrently")
	errBundleFilled = errors.New("bundle stopped accepting scans concurrently")
)

// assemblyService implements the AssemblyUsecase interface. It is the assembly
// coordination engine: unit claim validation, the bundle state machine and
// event publication live here.
type assemblyService struct {
	txManager  repository.TransactionManager
	bundleRepo repository.BundleRepository
	unitRepo   repository.UnitRepository
	relay      service.EventRelay
	bridge     service.EventBridge
	labels     service.LabelService
	logger     *slog.Logger
}

// AssemblyServiceParams holds dependencies for AssemblyService, injected by Fx.
type AssemblyServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BundleRepo repository.BundleRepository
	UnitRepo   repository.UnitRepository
	Relay      service.EventRelay
	Bridge     service.EventBridge
	Labels     service.LabelService
	Logger     *slog.Logger
}

// NewAssemblyService is the constructor for assemblyService.
func NewAssemblyService(params AssemblyServiceParams) usecase.AssemblyUsecase {
	return &assemblyService{
		txManager:  params.TxManager,
		bundleRepo: params.BundleRepo,
		unitRepo:   params.UnitRepo,
		relay:      params.Relay,
		bridge:     params.Bridge,
		labels:     params.Labels,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *assemblyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Scan runs the full claim protocol for one scanned unit.
//
// Validation reads happen outside the transaction; the authoritative decision
// is the atomic conditional claim inside it. The scanned-count increment and
// the status transition are applied in the same transaction as the claim, so
// "count reached target" and "status = completed" are never observably
// inconsistent, and a claim whose bundle filled up concurrently is rolled back.
func (srv *assemblyService) Scan(ctx context.Context, orgID, bundleID uuid.UUID, scannedText string) (*usecase.ScanResult, error) {
	bundle, err := srv.bundleRepo.FindBundleByID(ctx, bundleID)
	if err != nil {
		if errors.Is(err, repository.ErrBundleNotFound) {
			return srv.reject(ctx, bundleID, entity.RejectReasonNotFound, domainerrors.ErrBundleNotFound.Message()), nil
		}

		return nil, errors.Wrap(err, "failed to find bundle by ID")
	}
	if bundle.OrgID != orgID {
		// Cross-organization bundles are indistinguishable from missing ones.
		return srv.reject(ctx, bundleID, entity.RejectReasonNotFound, domainerrors.ErrBundleNotFound.Message()), nil
	}

	if !bundle.Status.AcceptsScans() {
		return srv.reject(ctx, bundleID, entity.RejectReasonBundleNotAssembling, domainerrors.ErrBundleNotAssembling.Message()), nil
	}

	qrCode, err := srv.labels.ParseUnitQR(scannedText)
	if err != nil {
		return srv.reject(ctx, bundleID, entity.RejectReasonNotFound, domainerrors.ErrInvalidQRPayload.Message()), nil
	}

	unit, err := srv.unitRepo.FindUnitByQRCode(ctx, qrCode)
	if err != nil {
		if errors.Is(err, repository.ErrUnitNotFound) {
			return srv.reject(ctx, bundleID, entity.RejectReasonNotFound, domainerrors.ErrUnitNotFound.Message()), nil
		}

		return nil, errors.Wrap(err, "failed to find unit by QR code")
	}
	if unit.OrgID != orgID {
		return srv.reject(ctx, bundleID, entity.RejectReasonNotFound, domainerrors.ErrUnitNotFound.Message()), nil
	}

	if unit.ProductID != bundle.ProductID {
		return srv.reject(ctx, bundleID, entity.RejectReasonWrongProduct, domainerrors.ErrWrongProduct.Message()), nil
	}

	// Fast path only; the conditional write below is the authoritative check.
	if unit.IsAssigned() {
		return srv.reject(ctx, bundleID, entity.RejectReasonAlreadyAssigned, domainerrors.ErrUnitAlreadyAssigned.Message()), nil
	}

	prevStatus := bundle.Status
	var updated *entity.Bundle

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		claimed, claimErr := repoFactory.NewUnitRepository().ClaimUnit(ctx, unit.ID, bundleID)
		if claimErr != nil {
			return errors.Wrap(claimErr, "failed to claim unit")
		}
		if !claimed {
			return errClaimLost
		}

		progressed, progressErr := repoFactory.NewBundleRepository().ApplyScanProgress(ctx, bundleID)
		if progressErr != nil {
			if errors.Is(progressErr, repository.ErrBundleNotAssembling) {
				// Another terminal filled the bundle between our read and this
				// write; rolling back releases the claim.
				return errBundleFilled
			}

			return errors.Wrap(progressErr, "failed to apply scan progress")
		}

		updated = progressed

		return nil
	})
	switch {
	case errors.Is(err, errClaimLost):
		return srv.reject(ctx, bundleID, entity.RejectReasonAlreadyAssigned, domainerrors.ErrUnitAlreadyAssigned.Message()), nil
	case errors.Is(err, errBundleFilled):
		return srv.reject(ctx, bundleID, entity.RejectReasonBundleNotAssembling, domainerrors.ErrBundleNotAssembling.Message()), nil
	case err != nil:
		return nil, errors.Wrap(err, "claim transaction failed")
	}

	session := updated.Snapshot()
	srv.publishProgress(ctx, updated, prevStatus, session)

	return &usecase.ScanResult{
		Accepted: true,
		Session:  session,
	}, nil
}

// GetSession returns the bundle's current assembly session snapshot.
func (srv *assemblyService) GetSession(ctx context.Context, orgID, bundleID uuid.UUID) (*entity.AssemblySession, error) {
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

	return bundle.Snapshot(), nil
}

// reject records a refused claim: state is unchanged and exactly one
// scan_error event is offered to the bundle's watchers.
func (srv *assemblyService) reject(ctx context.Context, bundleID uuid.UUID, reason entity.RejectReason, message string) *usecase.ScanResult {
	if err := srv.relay.Publish(bundleID, entity.NewScanErrorEvent(message)); err != nil {
		srv.log(ctx).Warn("failed to publish scan_error event",
			slog.String("bundle_id", bundleID.String()),
			slog.String("reason", reason.String()),
			slog.Any("error", err),
		)
	}

	return &usecase.ScanResult{
		Accepted: false,
		Reason:   reason,
		Message:  message,
	}
}

// publishProgress emits exactly one event for an accepted claim. The bundle
// and unit mutations are already committed; event delivery is best-effort and
// never rolls them back.
func (srv *assemblyService) publishProgress(ctx context.Context, bundle *entity.Bundle, prevStatus entity.BundleStatus, session *entity.AssemblySession) {
	eventType := entity.EventTypeScanSuccess
	switch {
	case bundle.Status == entity.BundleStatusCompleted:
		eventType = entity.EventTypeAssemblyComplete
	case prevStatus == entity.BundleStatusPending:
		eventType = entity.EventTypePhaseTransition
	}

	if err := srv.relay.Publish(bundle.ID, entity.NewProgressEvent(eventType, session)); err != nil {
		srv.log(ctx).Warn("failed to publish progress event",
			slog.String("bundle_id", bundle.ID.String()),
			slog.String("event_type", eventType.String()),
			slog.Any("error", err),
		)
	}

	if bundle.Status != entity.BundleStatusCompleted {
		return
	}

	completedAt := bundle.UpdatedAt
	announcement := &service.BundleCompletedEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		BundleID:    bundle.ID,
		OrgID:       bundle.OrgID,
		ProductID:   bundle.ProductID,
		TargetCount: bundle.TargetCount,
		PackSize:    bundle.PackSize,
		CompletedAt: completedAt,
	}
	if err := srv.bridge.PublishBundleCompleted(ctx, announcement); err != nil {
		srv.log(ctx).Warn("failed to announce completed bundle to fulfillment",
			slog.String("bundle_id", bundle.ID.String()),
			slog.Any("error", err),
		)
	}
}
