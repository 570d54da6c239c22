// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"packline/internal/domain/entity"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	"packline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bundleRepository implements the repository.BundleRepository interface.
type bundleRepository struct {
	db *gorm.DB
}

// NewBundleRepository is the constructor for bundleRepository.
func NewBundleRepository(db *gorm.DB) repository.BundleRepository {
	return &bundleRepository{
		db: db,
	}
}

// CreateBundle persists a new pending bundle.
func (repo *bundleRepository) CreateBundle(ctx context.Context, bundle *entity.Bundle) error {
	bundleM := fromBundleDomain(bundle)

	if err := repo.db.WithContext(ctx).Create(bundleM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrBundleCreationFailed.WrapMessage("invalid bundle configuration")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bundle")
	}

	// Update the entity with generated values
	bundle.ID = bundleM.ID
	bundle.CreatedAt = bundleM.CreatedAt
	bundle.UpdatedAt = bundleM.UpdatedAt

	return nil
}

// FindBundleByID retrieves a bundle by its unique ID.
func (repo *bundleRepository) FindBundleByID(ctx context.Context, id uuid.UUID) (*entity.Bundle, error) {
	var bundleM model.BundleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bundleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBundleNotFound
		}

		return nil, errors.Wrap(err, "failed to find bundle by ID")
	}

	return toBundleDomain(&bundleM), nil
}

// ApplyScanProgress advances the bundle by one accepted claim in a single
// conditional UPDATE. The status CASE and the guard both read the pre-update
// scanned_count, so the increment, the phase transition and the overshoot
// check are evaluated together by the database.
func (repo *bundleRepository) ApplyScanProgress(ctx context.Context, id uuid.UUID) (*entity.Bundle, error) {
	now := time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.BundleModel{}).
		Where("id = ? AND status IN ? AND scanned_count < target_count",
			id,
			[]string{entity.BundleStatusPending.String(), entity.BundleStatusAssembling.String()},
		).
		Updates(map[string]any{
			"scanned_count": gorm.Expr("scanned_count + 1"),
			"status": gorm.Expr(
				"CASE WHEN scanned_count + 1 >= target_count THEN ? ELSE ? END",
				entity.BundleStatusCompleted.String(),
				entity.BundleStatusAssembling.String(),
			),
			"last_scan_at": now,
			"updated_at":   now,
		})
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to apply scan progress")
	}

	if result.RowsAffected == 0 {
		var bundleM model.BundleModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", id).
			First(&bundleM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrBundleNotFound
			}

			return nil, errors.Wrap(err, "failed to find bundle after rejected progress update")
		}

		return nil, repository.ErrBundleNotAssembling
	}

	var bundleM model.BundleModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bundleM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload bundle after progress update")
	}

	return toBundleDomain(&bundleM), nil
}

// MarkSold advances a completed bundle to sold with a conditional UPDATE.
// An already sold bundle is a no-op so delivery retries stay idempotent.
func (repo *bundleRepository) MarkSold(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BundleModel{}).
		Where("id = ? AND status = ?", id, entity.BundleStatusCompleted.String()).
		Update("status", entity.BundleStatusSold.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark bundle sold")
	}

	if result.RowsAffected > 0 {
		return nil
	}

	var bundleM model.BundleModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bundleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrBundleNotFound
		}

		return errors.Wrap(err, "failed to find bundle after rejected sold update")
	}

	if bundleM.Status == entity.BundleStatusSold.String() {
		return nil
	}

	return repository.ErrBundleNotCompleted
}

// --- Mapper Functions ---

// toBundleDomain converts a GORM BundleModel to a domain Bundle entity.
func toBundleDomain(data *model.BundleModel) *entity.Bundle {
	if data == nil {
		return nil
	}

	return &entity.Bundle{
		ID:           data.ID,
		OrgID:        data.OrgID,
		ProductID:    data.ProductID,
		Status:       entity.BundleStatus(data.Status),
		TargetCount:  data.TargetCount,
		ScannedCount: data.ScannedCount,
		PackSize:     data.PackSize,
		LastScanAt:   data.LastScanAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromBundleDomain converts a domain Bundle entity to a GORM BundleModel.
func fromBundleDomain(data *entity.Bundle) *model.BundleModel {
	if data == nil {
		return nil
	}

	return &model.BundleModel{
		ID:           data.ID,
		OrgID:        data.OrgID,
		ProductID:    data.ProductID,
		Status:       data.Status.String(),
		TargetCount:  data.TargetCount,
		ScannedCount: data.ScannedCount,
		PackSize:     data.PackSize,
		LastScanAt:   data.LastScanAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
