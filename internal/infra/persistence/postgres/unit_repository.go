// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"packline/internal/domain/entity"
	domainerrors "packline/internal/domain/errors"
	"packline/internal/domain/repository"
	"packline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// unitRepository implements the repository.UnitRepository interface.
type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository is the constructor for unitRepository.
func NewUnitRepository(db *gorm.DB) repository.UnitRepository {
	return &unitRepository{
		db: db,
	}
}

// CreateUnit persists a newly received unit.
func (repo *unitRepository) CreateUnit(ctx context.Context, unit *entity.Unit) error {
	unitM := fromUnitDomain(unit)

	if err := repo.db.WithContext(ctx).Create(unitM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateQRCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUnitCreationFailed.WrapMessage("missing required unit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create unit")
	}

	// Update the entity with generated values
	unit.ID = unitM.ID
	unit.ReceivedAt = unitM.CreatedAt
	unit.UpdatedAt = unitM.UpdatedAt

	return nil
}

// FindUnitByID retrieves a unit by its unique ID.
func (repo *unitRepository) FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error) {
	var unitM model.UnitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by ID")
	}

	return toUnitDomain(&unitM), nil
}

// FindUnitByQRCode resolves a scanned QR code to its unit.
func (repo *unitRepository) FindUnitByQRCode(ctx context.Context, qrCode string) (*entity.Unit, error) {
	var unitM model.UnitModel

	if err := repo.db.WithContext(ctx).
		Where("qr_code = ?", qrCode).
		First(&unitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUnitNotFound
		}

		return nil, errors.Wrap(err, "failed to find unit by QR code")
	}

	return toUnitDomain(&unitM), nil
}

// ClaimUnit binds the unit to the bundle with one conditional UPDATE. The
// IS NULL guard is evaluated by the database together with the write, so two
// concurrent claims on the same unit can never both see RowsAffected == 1.
func (repo *unitRepository) ClaimUnit(ctx context.Context, unitID, bundleID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UnitModel{}).
		Where("id = ? AND assigned_bundle_id IS NULL", unitID).
		Update("assigned_bundle_id", bundleID)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to claim unit")
	}

	return result.RowsAffected == 1, nil
}

// FindUnitsByBundle retrieves every unit claimed by the given bundle.
func (repo *unitRepository) FindUnitsByBundle(ctx context.Context, bundleID uuid.UUID) ([]*entity.Unit, error) {
	var unitModels []*model.UnitModel

	if err := repo.db.WithContext(ctx).
		Where("assigned_bundle_id = ?", bundleID).
		Order("updated_at ASC").
		Find(&unitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find units by bundle")
	}

	units := make([]*entity.Unit, 0, len(unitModels))
	for _, unitM := range unitModels {
		units = append(units, toUnitDomain(unitM))
	}

	return units, nil
}

// --- Mapper Functions ---

// toUnitDomain converts a GORM UnitModel to a domain Unit entity.
func toUnitDomain(data *model.UnitModel) *entity.Unit {
	if data == nil {
		return nil
	}

	return &entity.Unit{
		ID:               data.ID,
		OrgID:            data.OrgID,
		ProductID:        data.ProductID,
		QRCode:           data.QRCode,
		AssignedBundleID: data.AssignedBundleID,
		ReceivedAt:       data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUnitDomain converts a domain Unit entity to a GORM UnitModel.
func fromUnitDomain(data *entity.Unit) *model.UnitModel {
	if data == nil {
		return nil
	}

	return &model.UnitModel{
		ID:               data.ID,
		OrgID:            data.OrgID,
		ProductID:        data.ProductID,
		QRCode:           data.QRCode,
		AssignedBundleID: data.AssignedBundleID,
		CreatedAt:        data.ReceivedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
