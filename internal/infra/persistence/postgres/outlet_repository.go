package postgres

import (
	"context"

	"fieldforce/internal/domain/entity"
	domainerrors "fieldforce/internal/domain/errors"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// outletRepository implements the repository.OutletRepository interface.
type outletRepository struct {
	db *gorm.DB
}

// NewOutletRepository is the constructor for outletRepository.
func NewOutletRepository(db *gorm.DB) repository.OutletRepository {
	return &outletRepository{
		db: db,
	}
}

// CreateOutlet persists a new outlet.
func (repo *outletRepository) CreateOutlet(ctx context.Context, outlet *entity.Outlet) error {
	outletM := fromOutletDomain(outlet)

	if err := repo.db.WithContext(ctx).Create(outletM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("outlet already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create outlet")
	}

	outlet.ID = outletM.ID
	outlet.CreatedAt = outletM.CreatedAt
	outlet.UpdatedAt = outletM.UpdatedAt

	return nil
}

// FindOutletByID retrieves an outlet by its unique ID.
func (repo *outletRepository) FindOutletByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	var outletM model.OutletModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&outletM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOutletNotFound
		}

		return nil, errors.Wrap(err, "failed to find outlet by ID")
	}

	return toOutletDomain(&outletM), nil
}

// FindActiveOutlets retrieves all active outlets.
func (repo *outletRepository) FindActiveOutlets(ctx context.Context) ([]*entity.Outlet, error) {
	var outletModels []*model.OutletModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&outletModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active outlets")
	}

	outlets := make([]*entity.Outlet, 0, len(outletModels))
	for _, outletM := range outletModels {
		outlets = append(outlets, toOutletDomain(outletM))
	}

	return outlets, nil
}

// FindOutletsByDistributor retrieves all outlets served by a distributor.
func (repo *outletRepository) FindOutletsByDistributor(ctx context.Context, distributorID uuid.UUID) ([]*entity.Outlet, error) {
	var outletModels []*model.OutletModel

	if err := repo.db.WithContext(ctx).
		Where("distributor_id = ?", distributorID).
		Order("name ASC").
		Find(&outletModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find outlets by distributor")
	}

	outlets := make([]*entity.Outlet, 0, len(outletModels))
	for _, outletM := range outletModels {
		outlets = append(outlets, toOutletDomain(outletM))
	}

	return outlets, nil
}

// UpdateOutlet updates an existing outlet record.
func (repo *outletRepository) UpdateOutlet(ctx context.Context, outlet *entity.Outlet) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OutletModel{}).
		Where("id = ?", outlet.ID).
		Updates(map[string]any{
			"name":         outlet.Name,
			"full_address": outlet.FullAddress,
			"latitude":     outlet.Latitude,
			"longitude":    outlet.Longitude,
			"is_active":    outlet.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update outlet")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOutletNotFound
	}

	return nil
}

// toOutletDomain converts a GORM OutletModel to a domain Outlet entity.
func toOutletDomain(data *model.OutletModel) *entity.Outlet {
	if data == nil {
		return nil
	}

	return &entity.Outlet{
		ID:            data.ID,
		DistributorID: data.DistributorID,
		Name:          data.Name,
		FullAddress:   data.FullAddress,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RadiusMeters:  data.RadiusMeters,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromOutletDomain converts a domain Outlet entity to a GORM OutletModel.
func fromOutletDomain(data *entity.Outlet) *model.OutletModel {
	if data == nil {
		return nil
	}

	return &model.OutletModel{
		ID:            data.ID,
		DistributorID: data.DistributorID,
		Name:          data.Name,
		FullAddress:   data.FullAddress,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		RadiusMeters:  data.RadiusMeters,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
