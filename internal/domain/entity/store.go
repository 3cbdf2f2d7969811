package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store representa una tienda con su reserva de efectivo.
// Cash nunca es negativo. El motor de posting solo lo consulta como condición
// de las entradas (IN); ningún posting lo muta.
type Store struct {
	ID        string
	Name      string // único
	City      string
	Cash      decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
