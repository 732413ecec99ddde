package demand_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empanadas-api/internal/domain/demand"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testCatalog() []entity.SKU {
	return []entity.SKU{
		{ID: "sku-chicken", Name: "Chicken", Category: entity.CategoryEmpanada},
		{ID: "sku-cheese", Name: "Cheese", Category: entity.CategoryEmpanada},
		{ID: "sku-morocho", Name: "Morocho", Category: entity.CategoryDrink},
	}
}

func line(skuID, name, category string, qty int) entity.OrderLine {
	return entity.OrderLine{SKUID: skuID, SKUName: name, Category: category, Quantity: qty}
}

// orderAtLocal crea un pedido cuyo CreatedAt corresponde a la hora local dada
// (convertida a UTC, como lo guarda el store).
func orderAtLocal(t *testing.T, loc *time.Location, year int, month time.Month, day, hour int, lines ...entity.OrderLine) entity.Order {
	t.Helper()
	local := time.Date(year, month, day, hour, 15, 0, 0, loc)
	return entity.Order{ID: "ord-" + local.Format("20060102-15"), CreatedAt: local.UTC(), Lines: lines}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

func TestAggregate_SinPedidosSiembraTodosLosBuckets(t *testing.T) {
	loc := mustLocation(t, "America/New_York")

	s := demand.Aggregate(nil, testCatalog(), loc)

	assert.Zero(t, s.TotalOrders)
	assert.Zero(t, s.TotalEmpanadas)
	assert.Zero(t, s.TotalDrinks)
	require.Len(t, s.HourlyTotals, 8, "los 8 buckets deben existir aunque no haya ventas")
	for h := 11; h <= 18; h++ {
		assert.Contains(t, s.HourlyTotals, h)
		assert.Zero(t, s.HourlyTotals[h])
		assert.NotNil(t, s.HourlyBySKU[h], "cada bucket debe tener su mapa sembrado")
	}
}

func TestAggregate_TotalesPorCategoria(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	orders := []entity.Order{
		orderAtLocal(t, loc, 2025, 1, 18, 12,
			line("sku-chicken", "Chicken", entity.CategoryEmpanada, 3),
			line("sku-morocho", "Morocho", entity.CategoryDrink, 2),
		),
		orderAtLocal(t, loc, 2025, 1, 18, 13,
			line("sku-cheese", "Cheese", entity.CategoryEmpanada, 1),
			// categoría desconocida: cuenta en los buckets pero en ningún total por categoría
			line("sku-combo", "Combo", "combo", 5),
		),
	}

	s := demand.Aggregate(orders, testCatalog(), loc)

	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 4, s.TotalEmpanadas)
	assert.Equal(t, 2, s.TotalDrinks)
	assert.Equal(t, 5, s.HourlyBySKU[13]["sku-combo"],
		"la categoría desconocida sí participa del desglose horario")
}

// Propiedad: la suma de HourlyTotals es igual a la suma de cantidades de todas
// las líneas asignadas a un bucket (las líneas con SKU borrado no se asignan).
func TestAggregate_SumaHorariaIgualASumaDeLineas(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	orders := []entity.Order{
		orderAtLocal(t, loc, 2025, 1, 18, 9, // antes de abrir → bucket 11
			line("sku-chicken", "Chicken", entity.CategoryEmpanada, 2),
		),
		orderAtLocal(t, loc, 2025, 1, 18, 14,
			line("sku-cheese", "Cheese", entity.CategoryEmpanada, 4),
			line("", "", entity.CategoryEmpanada, 7), // SKU borrado: se descarta
		),
		orderAtLocal(t, loc, 2025, 1, 18, 22, // después de cerrar → bucket 18
			line("sku-morocho", "Morocho", entity.CategoryDrink, 1),
		),
	}

	s := demand.Aggregate(orders, testCatalog(), loc)

	sum := 0
	for _, v := range s.HourlyTotals {
		sum += v
	}
	assert.Equal(t, 7, sum, "2 + 4 + 1; la línea sin SKU no aporta")
	assert.Equal(t, 2, s.HourlyBySKU[11]["sku-chicken"], "la venta de las 9am se aprisiona en las 11")
	assert.Equal(t, 1, s.HourlyBySKU[18]["sku-morocho"], "la venta de las 10pm se aprisiona en las 18")
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveCatalog
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveCatalog_OrdenaEmpanadasAntesQueBebidas(t *testing.T) {
	skus := []entity.SKU{
		{ID: "d2", Name: "Coffee (Black)", Category: entity.CategoryDrink},
		{ID: "e2", Name: "Cheese", Category: entity.CategoryEmpanada},
		{ID: "d1", Name: "Morocho", Category: entity.CategoryDrink},
		{ID: "e1", Name: "Beef", Category: entity.CategoryEmpanada},
	}

	resolved := demand.ResolveCatalog(skus, nil)

	require.Len(t, resolved, 4)
	assert.Equal(t, "Beef", resolved[0].Name)
	assert.Equal(t, "Cheese", resolved[1].Name)
	assert.Equal(t, "Coffee (Black)", resolved[2].Name)
	assert.Equal(t, "Morocho", resolved[3].Name)

	// El slice original no debe mutarse
	assert.Equal(t, "d2", skus[0].ID)
}

func TestResolveCatalog_CatalogoVacioInfiereDesdePedidos(t *testing.T) {
	orders := []entity.Order{
		{Lines: []entity.OrderLine{
			line("sku-morocho", "Morocho", entity.CategoryDrink, 1),
			line("sku-chicken", "Chicken", entity.CategoryEmpanada, 2),
			line("sku-chicken", "Chicken", entity.CategoryEmpanada, 1), // repetido
		}},
	}

	resolved := demand.ResolveCatalog(nil, orders)

	require.Len(t, resolved, 2, "los SKUs repetidos se infieren una sola vez")
	assert.Equal(t, "Chicken", resolved[0].Name, "empanada primero")
	assert.Equal(t, "Morocho", resolved[1].Name)
}
