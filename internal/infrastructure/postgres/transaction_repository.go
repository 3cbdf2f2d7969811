package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/store-ledger/internal/domain/entity"
	"github.com/tu-usuario/store-ledger/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto del libro mayor sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: los asientos son inmutables.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste un asiento del libro mayor.
func (r *TransactionRepo) Create(trx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, created_by, party_id, store_id, trx_type, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		trx.ID, trx.CreatedByID, trx.PartyID, trx.StoreID, trx.TrxType, trx.Amount, trx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// CreateLineItem persiste el detalle de producto de un asiento. La FK con
// ON DELETE CASCADE ata el ciclo de vida del item al de su transacción.
func (r *TransactionRepo) CreateLineItem(item *entity.TransactionLineItem) error {
	query := `
		INSERT INTO transaction_line_items (id, transaction_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TransactionID, item.ProductID, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert line item: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID (nil si no existe).
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `
		SELECT id, created_by, party_id, store_id, trx_type, amount, created_at
		FROM transactions WHERE id = $1`
	var t entity.Transaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.CreatedByID, &t.PartyID, &t.StoreID, &t.TrxType, &t.Amount, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista asientos, más reciente primero, con paginación.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `
		SELECT id, created_by, party_id, store_id, trx_type, amount, created_at
		FROM transactions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		if err := rows.Scan(&t.ID, &t.CreatedByID, &t.PartyID, &t.StoreID, &t.TrxType, &t.Amount, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// ListLineItems devuelve el detalle de un asiento.
func (r *TransactionRepo) ListLineItems(transactionID string) ([]*entity.TransactionLineItem, error) {
	query := `
		SELECT id, transaction_id, product_id, quantity
		FROM transaction_line_items WHERE transaction_id = $1`
	rows, err := r.q.Query(context.Background(), query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("list line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionLineItem
	for rows.Next() {
		var it entity.TransactionLineItem
		if err := rows.Scan(&it.ID, &it.TransactionID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}
