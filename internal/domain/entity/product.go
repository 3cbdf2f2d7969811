package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece al Supplier que lo creó; el dueño es inmutable.
type Product struct {
	ID         string
	SupplierID string
	Name       string
	Price      decimal.Decimal // precio unitario, siempre > 0
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
