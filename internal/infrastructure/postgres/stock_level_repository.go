package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL
// (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador de existencias. Pasar pool o tx.
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene las existencias de un producto en una tienda. Si el par no tiene
// fila aún, devuelve una con Quantity = 0.
func (r *StockLevelRepo) Get(storeID, productID string) (*entity.StockLevel, error) {
	query := `
		SELECT store_id, product_id, quantity, updated_at
		FROM stock_levels WHERE store_id = $1 AND product_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, storeID, productID).Scan(
		&s.StoreID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{StoreID: storeID, ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene las existencias y bloquea la fila (SELECT FOR UPDATE)
// hasta el cierre de la transacción. Dos postings concurrentes sobre el mismo
// par se serializan en este punto. Si el par no tiene fila aún, se inserta una
// en cero antes de bloquear: sin eso, dos primeros movimientos concurrentes no
// tendrían fila que bloquear y uno pisaría al otro. La fila en cero se
// revierte junto con la transacción si el posting termina rechazado.
func (r *StockLevelRepo) GetForUpdate(storeID, productID string) (*entity.StockLevel, error) {
	seed := `
		INSERT INTO stock_levels (store_id, product_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (store_id, product_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), seed, storeID, productID); err != nil {
		return nil, fmt.Errorf("seed stock level: %w", err)
	}
	query := `
		SELECT store_id, product_id, quantity, updated_at
		FROM stock_levels WHERE store_id = $1 AND product_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, storeID, productID).Scan(
		&s.StoreID, &s.ProductID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{StoreID: storeID, ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad de existencias del par tienda+producto.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (store_id, product_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, level.StoreID, level.ProductID, level.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

// ListByStore devuelve las existencias de todos los productos de una tienda.
func (r *StockLevelRepo) ListByStore(storeID string) ([]*entity.StockLevel, error) {
	query := `
		SELECT store_id, product_id, quantity, updated_at
		FROM stock_levels WHERE store_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list stock levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLevel
	for rows.Next() {
		var s entity.StockLevel
		if err := rows.Scan(&s.StoreID, &s.ProductID, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
