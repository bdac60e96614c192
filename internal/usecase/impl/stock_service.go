package impl

import (
	"context"

	"fieldforce/internal/domain/entity"
	"fieldforce/internal/domain/repository"
	"fieldforce/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// stockService implements the StockUsecase interface.
type stockService struct {
	stockRepo repository.StockRepository
}

// NewStockService is the constructor for stockService.
func NewStockService(stockRepo repository.StockRepository) usecase.StockUsecase {
	return &stockService{stockRepo: stockRepo}
}

// ListStock returns the full catalog for a distributor.
func (srv *stockService) ListStock(ctx context.Context, distributorID uuid.UUID) ([]*entity.SKUCatalogEntry, error) {
	entries, err := srv.stockRepo.ListStock(ctx, distributorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock")
	}

	return entries, nil
}
