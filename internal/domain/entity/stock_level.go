package entity

import "time"

// StockLevel son las existencias de un producto en una tienda (clave compuesta
// tienda+producto, a lo sumo una fila por par). Estado derivado: se crea en el
// primer movimiento del par, sube con IN, baja con OUT y nunca queda negativo.
type StockLevel struct {
	StoreID   string
	ProductID string
	Quantity  int64
	UpdatedAt time.Time
}
