package demand

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

const (
	// lookbackDays horizonte máximo de la caminata hacia atrás buscando días
	// comparables.
	lookbackDays = 60

	dateLayout = "2006-01-02"
)

// Input entradas del pronóstico. Orders es el historial de lookback ya leído
// del store; SKUs/Recipes/Ingredients el catálogo del local.
type Input struct {
	TargetDate     time.Time // fecha civil objetivo, interpretada en la zona del local
	Orders         []entity.Order
	SKUs           []entity.SKU
	Recipes        []entity.RecipeLine
	Ingredients    []entity.Ingredient
	Config         entity.ShopConfig
	WasteMinimizer bool
}

// IngredientTotal total de un ingrediente para la preparación pronosticada,
// redondeado a entero para display.
type IngredientTotal struct {
	ID    string
	Name  string
	Unit  string
	Total int64
}

// Result pronóstico completo para una fecha objetivo.
//
// IsEmpty=true significa "sin historial comparable suficiente", no un error.
// IngredientTotals vacío con IsEmpty=false significa "recetas no
// configuradas"; quien consume debe distinguir ambos casos.
type Result struct {
	TargetDate       string
	ComparableDates  []string // más reciente primero; solo para display
	OpenHour         int
	SKUs             []entity.SKU
	EmpanadaTotals   map[string]int         // sku id → unidades pronosticadas
	DrinkTotals      map[string]int         // sku id → unidades pronosticadas
	EmpanadaByHour   map[int]map[string]int // bucket → sku id → unidades
	DrinkTotalUnits  int
	IngredientTotals []IngredientTotal
	IsEmpty          bool
}

// Forecast calcula la demanda esperada para la fecha objetivo promediando los
// días comparables (mismo día de semana local, con al menos un pedido) más
// recientes.
//
// Las empanadas se pronostican por hora y por SKU; las bebidas solo por total
// diario por SKU. La asimetría es intencional: la cocina programa tandas de
// empanadas por hora, las bebidas no necesitan esa granularidad. El modo
// waste minimizer descuenta únicamente la preparación de empanadas.
func Forecast(in Input) Result {
	cfg := in.Config.Normalize()
	loc := cfg.Location()
	window := NewHourWindow(cfg.OpenHour())
	catalog := ResolveCatalog(in.SKUs, in.Orders)

	// Pedidos agrupados por fecha civil local
	byDate := make(map[string][]entity.Order)
	for _, o := range in.Orders {
		key := o.CreatedAt.In(loc).Format(dateLayout)
		byDate[key] = append(byDate[key], o)
	}

	// Anclar la fecha objetivo al mediodía local: sumar/restar días sobre el
	// mediodía es inmune a los saltos de medianoche en cambios de horario.
	target := time.Date(in.TargetDate.Year(), in.TargetDate.Month(), in.TargetDate.Day(), 12, 0, 0, 0, loc)

	comparable := comparableDates(target, byDate, cfg.ComparableDays)

	res := Result{
		TargetDate:       target.Format(dateLayout),
		ComparableDates:  comparable,
		OpenHour:         window.First(),
		SKUs:             catalog,
		EmpanadaTotals:   make(map[string]int),
		DrinkTotals:      make(map[string]int),
		EmpanadaByHour:   make(map[int]map[string]int, windowHours),
		IngredientTotals: []IngredientTotal{},
	}
	for _, h := range window.Hours() {
		res.EmpanadaByHour[h] = make(map[string]int)
	}
	// Todo SKU del catálogo queda con llave en cero aunque no haya historial
	for _, s := range catalog {
		switch {
		case s.IsEmpanada():
			res.EmpanadaTotals[s.ID] = 0
		case s.IsDrink():
			res.DrinkTotals[s.ID] = 0
		}
	}

	if len(comparable) == 0 {
		res.IsEmpty = true
		return res
	}
	n := len(comparable)

	// Sumas observadas a través de los días comparables
	empanadaSums := make(map[string]map[int]int) // sku id → bucket → suma
	drinkSums := make(map[string]int)            // sku id → suma de totales diarios

	category := make(map[string]string, len(catalog))
	for _, s := range catalog {
		category[s.ID] = s.Category
	}

	for _, dateKey := range comparable {
		for _, o := range byDate[dateKey] {
			bucket := window.BucketFor(o.CreatedAt, loc)
			for _, l := range o.Lines {
				if missingSKU(l) {
					continue
				}
				cat := category[l.SKUID]
				if cat == "" {
					cat = l.Category
				}
				switch cat {
				case entity.CategoryEmpanada:
					if empanadaSums[l.SKUID] == nil {
						empanadaSums[l.SKUID] = make(map[int]int)
					}
					empanadaSums[l.SKUID][bucket] += l.Quantity
				case entity.CategoryDrink:
					drinkSums[l.SKUID] += l.Quantity
				}
			}
		}
	}

	// Empanadas: promedio por bucket con redondeo independiente por hora.
	// El total por SKU es la suma de los valores ya redondeados, por lo que
	// puede diferir levemente de round(total_crudo / N); las cantidades de
	// preparación deben ser unidades enteras por hora.
	for skuID, byHour := range empanadaSums {
		total := 0
		for _, h := range window.Hours() {
			sum := byHour[h]
			if sum == 0 {
				continue
			}
			units := roundedAverage(sum, n)
			if in.WasteMinimizer {
				units = wasteAdjust(units, cfg.WasteFactor)
			}
			if units > 0 {
				res.EmpanadaByHour[h][skuID] = units
			}
			total += units
		}
		res.EmpanadaTotals[skuID] = total
	}

	// Bebidas: promedio del total diario; el waste minimizer no aplica
	// (el desperdicio de bebidas es despreciable en este dominio)
	for skuID, sum := range drinkSums {
		units := roundedAverage(sum, n)
		res.DrinkTotals[skuID] = units
		res.DrinkTotalUnits += units
	}

	res.IngredientTotals = expandIngredients(res.EmpanadaTotals, in.Recipes, in.Ingredients)
	return res
}

// comparableDates camina hacia atrás desde target-1, hasta lookbackDays días,
// recolectando fechas locales con el mismo día de semana que el objetivo y al
// menos un pedido registrado, hasta juntar n. Nunca incluye la fecha objetivo.
// Orden de recolección: más reciente primero.
func comparableDates(target time.Time, byDate map[string][]entity.Order, n int) []string {
	dates := []string{}
	for i := 1; i <= lookbackDays && len(dates) < n; i++ {
		day := target.AddDate(0, 0, -i)
		if day.Weekday() != target.Weekday() {
			continue
		}
		key := day.Format(dateLayout)
		if len(byDate[key]) == 0 {
			continue
		}
		dates = append(dates, key)
	}
	return dates
}

// roundedAverage round(sum / n) con redondeo half-up (mitades hacia arriba),
// nunca banker's rounding: 3.5 → 4.
func roundedAverage(sum, n int) int {
	if n == 0 {
		return 0
	}
	avg := decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(n)))
	return int(avg.Round(0).IntPart())
}

// wasteAdjust floor(units * factor): el descuento por desperdicio trunca
// hacia abajo después de multiplicar, de modo que nunca aumenta el pronóstico.
func wasteAdjust(units int, factor decimal.Decimal) int {
	return int(decimal.NewFromInt(int64(units)).Mul(factor).Floor().IntPart())
}

// expandIngredients expande los totales de empanadas a ingredientes vía las
// recetas (bill of materials). Un ingrediente presente en varias recetas
// acumula a través de todas. El orden de salida sigue el orden del catálogo
// de ingredientes. Sin recetas o sin ingredientes devuelve lista vacía
// ("no configurado", no "demanda cero").
func expandIngredients(
	empanadaTotals map[string]int,
	recipes []entity.RecipeLine,
	ingredients []entity.Ingredient,
) []IngredientTotal {
	if len(recipes) == 0 || len(ingredients) == 0 {
		return []IngredientTotal{}
	}

	acc := make(map[string]decimal.Decimal)
	for _, r := range recipes {
		units := empanadaTotals[r.SKUID]
		if units <= 0 {
			continue
		}
		amount := r.AmountPerUnit.Mul(decimal.NewFromInt(int64(units)))
		acc[r.IngredientID] = acc[r.IngredientID].Add(amount)
	}

	totals := []IngredientTotal{}
	for _, ing := range ingredients {
		total, ok := acc[ing.ID]
		if !ok {
			continue
		}
		totals = append(totals, IngredientTotal{
			ID:    ing.ID,
			Name:  ing.Name,
			Unit:  ing.Unit,
			Total: total.Round(0).IntPart(),
		})
	}
	return totals
}
