package entity

import "time"

// Order un pedido POS. Se crea una sola vez y nunca se modifica ni se borra;
// agregación y pronóstico son siempre de solo lectura sobre pedidos.
type Order struct {
	ID        string
	ShopID    string
	CreatedAt time.Time // siempre UTC; la conversión a hora local es del dominio demand
	Lines     []OrderLine
}

// OrderLine una línea de pedido. Viene desnormalizada desde el store (JOIN con
// skus): además del ID trae nombre y categoría, de modo que el dominio puede
// inferir el catálogo cuando este está vacío. Una línea cuyo SKU fue borrado
// llega con SKUName vacío y se descarta en la agregación.
type OrderLine struct {
	ID       string
	OrderID  string
	SKUID    string
	SKUName  string
	Category string
	Quantity int // >= 1 al crearse; las líneas en cero se filtran antes de persistir
}

// TotalUnits suma las cantidades de todas las líneas del pedido.
func (o Order) TotalUnits() int {
	total := 0
	for _, l := range o.Lines {
		total += l.Quantity
	}
	return total
}
