package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest body para POST /api/stores. Cash arranca en 0 si se omite.
type CreateStoreRequest struct {
	Name string           `json:"name" validate:"required"`
	City string           `json:"city" validate:"required"`
	Cash *decimal.Decimal `json:"cash,omitempty"`
}

// UpdateStoreRequest body para PUT /api/stores/:id. Campos nil no se tocan.
type UpdateStoreRequest struct {
	Name *string `json:"name,omitempty"`
	City *string `json:"city,omitempty"`
}

// StoreResponse representación pública de una tienda.
type StoreResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	City      string          `json:"city"`
	Cash      decimal.Decimal `json:"cash"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// StoreListResponse página de tiendas ordenadas por nombre.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
