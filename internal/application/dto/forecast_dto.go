package dto

// ForecastRequest parámetros de GET /api/forecast.
type ForecastRequest struct {
	Date           string `query:"date"`            // YYYY-MM-DD; por defecto mañana en la zona del local
	WasteMinimizer bool   `query:"waste_minimizer"` // modo de descuento por desperdicio
}

// IngredientTotalDTO total pronosticado de un ingrediente, redondeado a
// entero para display.
type IngredientTotalDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int64  `json:"total"`
	Unit  string `json:"unit"`
}

// ForecastDTO pronóstico de demanda para una fecha objetivo.
//
// IsEmpty=true: sin historial comparable. IngredientTotals vacío con
// IsEmpty=false: recetas no configuradas. La presentación debe distinguirlos.
type ForecastDTO struct {
	TargetDate       string                 `json:"target_date"`
	ComparableDates  []string               `json:"comparable_dates"` // más reciente primero
	OpenHour         int                    `json:"open_hour"`
	SKUs             []SKUDTO               `json:"skus"`
	EmpanadaTotals   map[string]int         `json:"empanada_totals"`
	DrinkTotals      map[string]int         `json:"drink_totals"`
	EmpanadaByHour   map[int]map[string]int `json:"empanada_by_hour"`
	DrinkTotalUnits  int                    `json:"drink_total_units"`
	IngredientTotals []IngredientTotalDTO   `json:"ingredient_totals"`
	IsEmpty          bool                   `json:"is_empty"`
}
