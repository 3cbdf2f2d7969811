package ledger

import (
	"context"

	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del posting: o se
// persisten asiento, line item y stock juntos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		trxRepo repository.TransactionRepository,
		stockRepo repository.StockLevelRepository,
	) error) error
}
