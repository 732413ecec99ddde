package dto

// HistoryRequest parámetros de GET /api/history.
type HistoryRequest struct {
	Date string `query:"date"` // YYYY-MM-DD; por defecto hoy en la zona del local
}

// HistoryDTO resumen de ventas de un día: totales, desglose horario y
// observaciones derivadas. Los mapas horarios siempre traen los 8 buckets de
// la ventana 11–18, aun en cero.
type HistoryDTO struct {
	Date           string                 `json:"date"`
	TotalOrders    int                    `json:"total_orders"`
	TotalEmpanadas int                    `json:"total_empanadas"`
	TotalDrinks    int                    `json:"total_drinks"`
	SKUs           []SKUDTO               `json:"skus"`
	ByHourSKU      map[int]map[string]int `json:"by_hour_sku"`
	HourTotals     map[int]int            `json:"hour_totals"`
	Insights       []string               `json:"insights"` // vacío si no hubo pedidos
	Orders         []OrderDTO             `json:"orders"`
}
