package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"packline/internal/domain/entity"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	"packline/internal/domain/service"
	mockRepo "packline/internal/mocks/repository"
	mockService "packline/internal/mocks/service"
	"packline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// assemblyServiceFixtures holds all test dependencies for assembly service tests.
type assemblyServiceFixtures struct {
	service    usecase.AssemblyUsecase
	txManager  *mockRepo.MockTransactionManager
	bundleRepo *mockRepo.MockBundleRepository
	unitRepo   *mockRepo.MockUnitRepository
	relay      *mockService.MockEventRelay
	bridge     *mockService.MockEventBridge
	labels     *mockService.MockLabelService
}

func createTestAssemblyService(t *testing.T) assemblyServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	bundleRepo := mockRepo.NewMockBundleRepository(t)
	unitRepo := mockRepo.NewMockUnitRepository(t)
	relay := mockService.NewMockEventRelay(t)
	bridge := mockService.NewMockEventBridge(t)
	labels := mockService.NewMockLabelService(t)

	service := NewAssemblyService(AssemblyServiceParams{
		TxManager:  txManager,
		BundleRepo: bundleRepo,
		UnitRepo:   unitRepo,
		Relay:      relay,
		Bridge:     bridge,
		Labels:     labels,
		Logger:     newDiscardLogger(),
	})

	return assemblyServiceFixtures{
		service:    service,
		txManager:  txManager,
		bundleRepo: bundleRepo,
		unitRepo:   unitRepo,
		relay:      relay,
		bridge:     bridge,
		labels:     labels,
	}
}

// bindTxRepos makes the transaction manager run the claim callback against the
// given transaction-scoped repository mocks.
func bindTxRepos(t *testing.T, fx assemblyServiceFixtures, ctx context.Context, bundleRepo repository.BundleRepository, unitRepo repository.UnitRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUnitRepository().Return(unitRepo).Maybe()
	factory.EXPECT().NewBundleRepository().Return(bundleRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func assemblingBundle(orgID uuid.UUID) *entity.Bundle {
	return &entity.Bundle{
		ID:           uuid.New(),
		OrgID:        orgID,
		ProductID:    uuid.New(),
		Status:       entity.BundleStatusAssembling,
		TargetCount:  6,
		ScannedCount: 2,
		PackSize:     3,
	}
}

func unassignedUnit(bundle *entity.Bundle) *entity.Unit {
	return &entity.Unit{
		ID:        uuid.New(),
		OrgID:     bundle.OrgID,
		ProductID: bundle.ProductID,
		QRCode:    "unit-qr-001",
	}
}

func TestAssemblyService_Scan_AcceptedClaim(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)

	updated := *bundle
	updated.ScannedCount = 3

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(true, nil)
	txBundleRepo.EXPECT().ApplyScanProgress(ctx, bundle.ID).Return(&updated, nil)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanSuccess
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Accepted)
	require.NotNil(t, result.Session)
	assert.Equal(t, 3, result.Session.ScannedCount)
	assert.Equal(t, 3, result.Session.Remaining)
	assert.Equal(t, entity.BundleStatusAssembling, result.Session.Status)
}

func TestAssemblyService_Scan_FirstScanEmitsPhaseTransition(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	bundle.Status = entity.BundleStatusPending
	bundle.ScannedCount = 0
	unit := unassignedUnit(bundle)

	updated := *bundle
	updated.Status = entity.BundleStatusAssembling
	updated.ScannedCount = 1

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(true, nil)
	txBundleRepo.EXPECT().ApplyScanProgress(ctx, bundle.ID).Return(&updated, nil)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypePhaseTransition
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, entity.BundleStatusAssembling, result.Session.Status)
}

func TestAssemblyService_Scan_FinalScanEmitsAssemblyComplete(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	bundle.ScannedCount = bundle.TargetCount - 1
	unit := unassignedUnit(bundle)

	updated := *bundle
	updated.Status = entity.BundleStatusCompleted
	updated.ScannedCount = bundle.TargetCount

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(true, nil)
	txBundleRepo.EXPECT().ApplyScanProgress(ctx, bundle.ID).Return(&updated, nil)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeAssemblyComplete &&
				event.Payload != nil &&
				event.Payload.Remaining == 0
		})).
		Return(nil)

	fx.bridge.EXPECT().
		PublishBundleCompleted(ctx, mock.MatchedBy(func(event *service.BundleCompletedEvent) bool {
			return event.BundleID == bundle.ID && event.OrgID == orgID
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
	assert.Equal(t, entity.BundleStatusCompleted, result.Session.Status)
	assert.Equal(t, 0, result.Session.Remaining)
}

func TestAssemblyService_Scan_RejectsAssignedUnitWithoutTransaction(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)
	otherBundleID := uuid.New()
	unit.AssignedBundleID = &otherBundleID

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonAlreadyAssigned, result.Reason)
	assert.Nil(t, result.Session)
}

func TestAssemblyService_Scan_RejectsWhenClaimLostInTransaction(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(false, nil)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonAlreadyAssigned, result.Reason)
}

func TestAssemblyService_Scan_RejectsWhenBundleFilledConcurrently(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(true, nil)
	txBundleRepo.EXPECT().ApplyScanProgress(ctx, bundle.ID).Return(nil, repository.ErrBundleNotAssembling)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonBundleNotAssembling, result.Reason)
}

func TestAssemblyService_Scan_RejectsWrongProduct(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)
	unit.ProductID = uuid.New()

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonWrongProduct, result.Reason)
}

func TestAssemblyService_Scan_RejectsCompletedBundle(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	bundle.Status = entity.BundleStatusCompleted
	bundle.ScannedCount = bundle.TargetCount

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, "unit-qr-001")
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonBundleNotAssembling, result.Reason)
}

func TestAssemblyService_Scan_RejectsBundleFromOtherOrganization(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	bundle := assemblingBundle(uuid.New())

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, uuid.New(), bundle.ID, "unit-qr-001")
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonNotFound, result.Reason)
}

func TestAssemblyService_Scan_RejectsUnknownUnit(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR("ghost-qr").Return("ghost-qr", nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, "ghost-qr").Return(nil, repository.ErrUnitNotFound)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, "ghost-qr")
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonNotFound, result.Reason)
}

func TestAssemblyService_Scan_RejectsMalformedQRPayload(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR("%%%").Return("", domainerrors.ErrInvalidQRPayload)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.MatchedBy(func(event *entity.AssemblyEvent) bool {
			return event.Type == entity.EventTypeScanError
		})).
		Return(nil)

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, "%%%")
	require.NoError(t, err)
	assert.False(t, result.Accepted)
	assert.Equal(t, entity.RejectReasonNotFound, result.Reason)
	assert.Equal(t, domainerrors.ErrInvalidQRPayload.Message(), result.Message)
}

func TestAssemblyService_Scan_RelayFailureDoesNotFailScan(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)
	unit := unassignedUnit(bundle)

	updated := *bundle
	updated.ScannedCount = 3

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)
	fx.labels.EXPECT().ParseUnitQR(unit.QRCode).Return(unit.QRCode, nil)
	fx.unitRepo.EXPECT().FindUnitByQRCode(ctx, unit.QRCode).Return(unit, nil)

	txBundleRepo := mockRepo.NewMockBundleRepository(t)
	txUnitRepo := mockRepo.NewMockUnitRepository(t)
	txUnitRepo.EXPECT().ClaimUnit(ctx, unit.ID, bundle.ID).Return(true, nil)
	txBundleRepo.EXPECT().ApplyScanProgress(ctx, bundle.ID).Return(&updated, nil)
	bindTxRepos(t, fx, ctx, txBundleRepo, txUnitRepo)

	fx.relay.EXPECT().
		Publish(bundle.ID, mock.Anything).
		Return(errors.New("relay closed"))

	result, err := fx.service.Scan(ctx, orgID, bundle.ID, unit.QRCode)
	require.NoError(t, err)
	assert.True(t, result.Accepted)
}

func TestAssemblyService_GetSession_Success(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	orgID := uuid.New()
	bundle := assemblingBundle(orgID)

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)

	session, err := fx.service.GetSession(ctx, orgID, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, bundle.ID, session.BundleID)
	assert.Equal(t, bundle.ScannedCount, session.ScannedCount)
	assert.Equal(t, bundle.TargetCount-bundle.ScannedCount, session.Remaining)
}

func TestAssemblyService_GetSession_NotFound(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	bundleID := uuid.New()

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundleID).Return(nil, repository.ErrBundleNotFound)

	session, err := fx.service.GetSession(ctx, uuid.New(), bundleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotFound)
	assert.Nil(t, session)
}

func TestAssemblyService_GetSession_OtherOrganizationLooksMissing(t *testing.T) {
	fx := createTestAssemblyService(t)

	ctx := context.Background()
	bundle := assemblingBundle(uuid.New())

	fx.bundleRepo.EXPECT().FindBundleByID(ctx, bundle.ID).Return(bundle, nil)

	session, err := fx.service.GetSession(ctx, uuid.New(), bundle.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotFound)
	assert.Nil(t, session)
}
