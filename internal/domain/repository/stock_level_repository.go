package repository

import "github.com/tu-usuario/store-ledger/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/ajustar existencias por
// tienda+producto. Si el par no tiene fila aún, Get y GetForUpdate devuelven
// una fila con Quantity = 0 (el upsert posterior la crea).
type StockLevelRepository interface {
	Get(storeID, productID string) (*entity.StockLevel, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx para
	// serializar postings concurrentes sobre el mismo par.
	GetForUpdate(storeID, productID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	ListByStore(storeID string) ([]*entity.StockLevel, error)
}
