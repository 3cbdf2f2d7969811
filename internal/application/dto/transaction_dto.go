package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PostTransactionRequest body para POST /api/transactions. Los campos son
// punteros para distinguir "ausente" de "valor cero": un campo omitido debe
// rechazarse como MissingField, no confundirse con 0.
type PostTransactionRequest struct {
	TrxType     *string          `json:"trx_type" validate:"required,oneof=IN OUT"`
	StoreID     *string          `json:"store_id" validate:"required"`
	CreatedByID *string          `json:"created_by" validate:"required"`
	PartyID     *string          `json:"party_id" validate:"required"`
	ProductID   *string          `json:"product_id" validate:"required"`
	Quantity    *int64           `json:"quantity" validate:"required,gt=0"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
}

// LineItemResponse detalle de producto de una transacción.
type LineItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// TransactionResponse asiento del libro mayor con su detalle.
type TransactionResponse struct {
	ID        string             `json:"id"`
	TrxType   string             `json:"trx_type"`
	StoreID   string             `json:"store_id"`
	CreatedBy string             `json:"created_by"`
	PartyID   string             `json:"party_id"`
	Amount    decimal.Decimal    `json:"amount"`
	CreatedAt time.Time          `json:"created_at"`
	Items     []LineItemResponse `json:"items,omitempty"`
}

// TransactionListResponse página de asientos, más reciente primero.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
