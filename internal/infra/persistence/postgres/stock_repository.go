package postgres

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stockRepository implements the repository.StockRepository interface.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// ListStock retrieves the full catalog for a distributor.
func (repo *stockRepository) ListStock(ctx context.Context, distributorID uuid.UUID) ([]*entity.SKUCatalogEntry, error) {
	var stockModels []*model.SKUStockModel

	if err := repo.db.WithContext(ctx).
		Where("distributor_id = ?", distributorID).
		Order("name ASC").
		Find(&stockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stock")
	}

	entries := make([]*entity.SKUCatalogEntry, 0, len(stockModels))
	for _, stockM := range stockModels {
		entries = append(entries, toStockDomain(stockM))
	}

	return entries, nil
}

// FindSKUByID retrieves a single catalog entry.
func (repo *stockRepository) FindSKUByID(ctx context.Context, skuID uuid.UUID) (*entity.SKUCatalogEntry, error) {
	var stockM model.SKUStockModel

	if err := repo.db.WithContext(ctx).
		Where("sku_id = ?", skuID).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSKUNotFound
		}

		return nil, errors.Wrap(err, "failed to find SKU by ID")
	}

	return toStockDomain(&stockM), nil
}

// DecrementStock atomically subtracts units from a SKU's stock. The guard
// on the current quantity makes concurrent submissions race-safe: the
// losing transaction sees zero affected rows instead of driving the stock
// negative.
func (repo *stockRepository) DecrementStock(ctx context.Context, skuID uuid.UUID, units int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SKUStockModel{}).
		Where("sku_id = ? AND stock_quantity >= ?", skuID, units).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", units))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.SKUStockModel{}).
			Where("sku_id = ?", skuID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check SKU existence")
		}
		if count == 0 {
			return repository.ErrSKUNotFound
		}

		return repository.ErrStockConflict
	}

	return nil
}

// toStockDomain converts a GORM SKUStockModel to a domain SKUCatalogEntry.
func toStockDomain(data *model.SKUStockModel) *entity.SKUCatalogEntry {
	if data == nil {
		return nil
	}

	return &entity.SKUCatalogEntry{
		SKUID:         data.SKUID,
		DistributorID: data.DistributorID,
		Name:          data.Name,
		MRP:           data.MRP,
		PTR:           data.PTR,
		UnitsPerCase:  data.UnitsPerCase,
		StockQuantity: data.StockQuantity,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
