package dto

import "time"

// StockLevelResponse existencias de un producto en una tienda.
type StockLevelResponse struct {
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	Quantity  int64     `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StockListResponse existencias de todos los productos de una tienda.
type StockListResponse struct {
	StoreID string               `json:"store_id"`
	Items   []StockLevelResponse `json:"items"`
}
