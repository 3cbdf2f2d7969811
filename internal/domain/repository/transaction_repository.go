package repository

import "github.com/tu-usuario/store-ledger/internal/domain/entity"

// TransactionRepository define el puerto del libro mayor.
// Los asientos son append-only: no hay Update ni Delete.
type TransactionRepository interface {
	Create(trx *entity.Transaction) error
	CreateLineItem(item *entity.TransactionLineItem) error
	GetByID(id string) (*entity.Transaction, error)
	List(limit, offset int) ([]*entity.Transaction, error)
	ListLineItems(transactionID string) ([]*entity.TransactionLineItem, error)
}
