package usecase

import (
	"github.com/tu-usuario/store-ledger/internal/application/dto"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

// TransactionUseCase lecturas del libro mayor. El alta va siempre por el motor
// de posting, nunca por acá.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// GetByID obtiene un asiento con su detalle (nil si no existe).
func (uc *TransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	trx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if trx == nil {
		return nil, nil
	}
	items, err := uc.repo.ListLineItems(trx.ID)
	if err != nil {
		return nil, err
	}
	out := toTransactionResponse(trx)
	for _, it := range items {
		out.Items = append(out.Items, dto.LineItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return out, nil
}

// List lista asientos, más reciente primero, con paginación.
func (uc *TransactionUseCase) List(limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, trx := range list {
		items = append(items, *toTransactionResponse(trx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:        t.ID,
		TrxType:   t.TrxType,
		StoreID:   t.StoreID,
		CreatedBy: t.CreatedByID,
		PartyID:   t.PartyID,
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
	}
}
