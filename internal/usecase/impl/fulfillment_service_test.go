package impl

import (
	"context"
	"testing"

	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	mockRepo "packline/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFulfillmentService(t *testing.T) (*mockRepo.MockBundleRepository, *fulfillmentService) {
	bundleRepo := mockRepo.NewMockBundleRepository(t)
	service := NewFulfillmentService(FulfillmentServiceParams{
		BundleRepo: bundleRepo,
		Logger:     newDiscardLogger(),
	})

	return bundleRepo, service.(*fulfillmentService)
}

func TestFulfillmentService_MarkSold_Success(t *testing.T) {
	bundleRepo, service := createTestFulfillmentService(t)

	ctx := context.Background()
	bundleID := uuid.New()

	bundleRepo.EXPECT().MarkSold(ctx, bundleID).Return(nil)

	require.NoError(t, service.MarkSold(ctx, bundleID))
}

func TestFulfillmentService_MarkSold_NotCompleted(t *testing.T) {
	bundleRepo, service := createTestFulfillmentService(t)

	ctx := context.Background()
	bundleID := uuid.New()

	bundleRepo.EXPECT().MarkSold(ctx, bundleID).Return(repository.ErrBundleNotCompleted)

	err := service.MarkSold(ctx, bundleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotCompleted)
}

func TestFulfillmentService_MarkSold_NotFound(t *testing.T) {
	bundleRepo, service := createTestFulfillmentService(t)

	ctx := context.Background()
	bundleID := uuid.New()

	bundleRepo.EXPECT().MarkSold(ctx, bundleID).Return(repository.ErrBundleNotFound)

	err := service.MarkSold(ctx, bundleID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrBundleNotFound)
}

func TestFulfillmentService_MarkSold_RepositoryFailure(t *testing.T) {
	bundleRepo, service := createTestFulfillmentService(t)

	ctx := context.Background()
	bundleID := uuid.New()

	bundleRepo.EXPECT().MarkSold(ctx, bundleID).Return(errors.New("connection reset"))

	err := service.MarkSold(ctx, bundleID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrBundleNotFound)
}
