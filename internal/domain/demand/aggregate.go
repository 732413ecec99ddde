package demand

import (
	"sort"
	"time"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// Summary resultado de agregar los pedidos de un día en la ventana legacy 11–18.
type Summary struct {
	TotalOrders    int
	TotalEmpanadas int
	TotalDrinks    int
	HourlyBySKU    map[int]map[string]int // bucket → sku id → unidades
	HourlyTotals   map[int]int            // bucket → unidades totales
	SKUs           []entity.SKU           // catálogo resuelto (ver ResolveCatalog)
}

// Aggregate agrupa por hora y por SKU los pedidos de un día.
//
// Precondición: orders ya viene filtrado al rango UTC [00:00, 24:00) de la
// fecha objetivo; ese filtrado es responsabilidad del store y aquí se asume.
// Los mapas horarios se siembran con todos los buckets en cero, de modo que
// la presentación nunca encuentra una clave ausente para un bucket conocido.
func Aggregate(orders []entity.Order, skus []entity.SKU, loc *time.Location) Summary {
	window := LegacyWindow()

	summary := Summary{
		TotalOrders:  len(orders),
		HourlyBySKU:  make(map[int]map[string]int, windowHours),
		HourlyTotals: make(map[int]int, windowHours),
	}
	for _, h := range window.Hours() {
		summary.HourlyBySKU[h] = make(map[string]int)
		summary.HourlyTotals[h] = 0
	}

	for _, o := range orders {
		bucket := window.BucketFor(o.CreatedAt, loc)
		for _, l := range o.Lines {
			if missingSKU(l) {
				// SKU borrado: la línea se descarta, no es un error
				continue
			}
			summary.HourlyBySKU[bucket][l.SKUID] += l.Quantity
			summary.HourlyTotals[bucket] += l.Quantity
			switch l.Category {
			case entity.CategoryEmpanada:
				summary.TotalEmpanadas += l.Quantity
			case entity.CategoryDrink:
				summary.TotalDrinks += l.Quantity
			}
		}
	}

	summary.SKUs = ResolveCatalog(skus, orders)
	return summary
}

// missingSKU una línea cuyo SKU fue borrado llega del JOIN sin ID o sin nombre.
func missingSKU(l entity.OrderLine) bool {
	return l.SKUID == "" || l.SKUName == ""
}

// ResolveCatalog devuelve el catálogo a usar en un reporte: el catálogo dado
// si no está vacío, o los SKUs inferidos de las propias líneas de pedido.
// Orden estable: empanadas antes que bebidas, alfabético por nombre dentro de
// cada categoría. No muta el slice de entrada.
func ResolveCatalog(skus []entity.SKU, orders []entity.Order) []entity.SKU {
	resolved := skus
	if len(resolved) == 0 {
		seen := make(map[string]bool)
		for _, o := range orders {
			for _, l := range o.Lines {
				if missingSKU(l) || seen[l.SKUID] {
					continue
				}
				seen[l.SKUID] = true
				resolved = append(resolved, entity.SKU{
					ID:       l.SKUID,
					Name:     l.SKUName,
					Category: l.Category,
				})
			}
		}
	}

	sorted := make([]entity.SKU, len(resolved))
	copy(sorted, resolved)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Category != b.Category {
			return categoryRank(a.Category) < categoryRank(b.Category)
		}
		return a.Name < b.Name
	})
	return sorted
}

func categoryRank(category string) int {
	switch category {
	case entity.CategoryEmpanada:
		return 0
	case entity.CategoryDrink:
		return 1
	default:
		return 2
	}
}
