package dto

// PlaceOrderLine una línea del pedido POS entrante.
type PlaceOrderLine struct {
	SKUID    string `json:"sku_id"`
	Quantity int    `json:"quantity"`
}

// PlaceOrderRequest cuerpo de POST /api/orders. Las líneas con cantidad cero
// o negativa se filtran antes de persistir.
type PlaceOrderRequest struct {
	Lines []PlaceOrderLine `json:"lines"`
}

// PlaceOrderResponse confirmación de un pedido creado.
type PlaceOrderResponse struct {
	OrderID    string `json:"order_id"`
	TotalUnits int    `json:"total_units"`
}

// OrderLineDTO línea de pedido en respuestas de lectura.
type OrderLineDTO struct {
	SKUID    string `json:"sku_id"`
	SKUName  string `json:"sku_name"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// OrderDTO pedido con sus líneas en respuestas de lectura.
type OrderDTO struct {
	ID        string         `json:"id"`
	CreatedAt string         `json:"created_at"` // RFC 3339, UTC
	Lines     []OrderLineDTO `json:"lines"`
}
