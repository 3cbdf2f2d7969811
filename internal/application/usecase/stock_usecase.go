package usecase

import (
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

// StockUseCase lecturas del estado derivado de existencias.
type StockUseCase struct {
	repo repository.StockLevelRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockLevelRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// ListByStore devuelve las existencias de todos los productos de una tienda.
func (uc *StockUseCase) ListByStore(storeID string) (*dto.StockListResponse, error) {
	levels, err := uc.repo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLevelResponse, 0, len(levels))
	for _, l := range levels {
		items = append(items, dto.StockLevelResponse{
			StoreID:   l.StoreID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UpdatedAt: l.UpdatedAt,
		})
	}
	return &dto.StockListResponse{StoreID: storeID, Items: items}, nil
}
