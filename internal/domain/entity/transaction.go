package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro mayor.
const (
	TrxTypeIN  = "IN"  // entrada: proveedor → tienda
	TrxTypeOUT = "OUT" // salida: tienda → cliente
)

// Transaction es un asiento inmutable del libro mayor (append-only).
// CreatedByID debe pertenecer a una cuenta Admin; PartyID es la contraparte
// (proveedor en IN, cliente en OUT).
type Transaction struct {
	ID          string
	CreatedByID string
	PartyID     string
	StoreID     string
	TrxType     string
	Amount      decimal.Decimal // == Quantity * Product.Price del line item
	CreatedAt   time.Time
}

// TransactionLineItem es el detalle de producto de una transacción.
// En el flujo actual hay exactamente uno por transacción; se destruye con ella.
type TransactionLineItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Quantity      int64 // siempre > 0
}
