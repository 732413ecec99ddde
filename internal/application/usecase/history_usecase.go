package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/domain"
	"github.com/jhoicas/empanadas-api/internal/domain/demand"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

// HistoryUseCase resumen de ventas históricas de un día: totales, desglose
// horario en la ventana legacy 11–18 y observaciones derivadas.
//
// Fallos de lectura del store degradan a un resumen vacío bien formado (la
// presentación siempre recibe la estructura completa); solo una fecha
// inválida es error del cliente.
type HistoryUseCase struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	shopRepo    repository.ShopRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	shopRepo repository.ShopRepository,
) *HistoryUseCase {
	return &HistoryUseCase{orderRepo: orderRepo, catalogRepo: catalogRepo, shopRepo: shopRepo}
}

// GetDailySummary agrega los pedidos del día indicado (default: hoy en la
// zona del local). El filtrado al rango UTC [00:00, 24:00) de la fecha es del
// store; aquí solo se agrega.
func (uc *HistoryUseCase) GetDailySummary(
	ctx context.Context,
	shopID string,
	req dto.HistoryRequest,
) (*dto.HistoryDTO, error) {
	cfg := resolveConfig(ctx, uc.shopRepo, shopID)
	loc := cfg.Location()

	dateStr := req.Date
	if dateStr == "" {
		dateStr = time.Now().In(loc).Format(dateLayout)
	}
	day, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}
	from := day
	to := from.Add(24 * time.Hour)

	// Pedidos y catálogo en paralelo (llamadas independientes)
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type skusResult struct {
		skus []entity.SKU
		err  error
	}
	ordersCh := make(chan ordersResult, 1)
	skusCh := make(chan skusResult, 1)

	go func() {
		orders, err := uc.orderRepo.GetByRange(ctx, shopID, from, to)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		skus, err := uc.catalogRepo.GetSKUs(ctx, shopID)
		skusCh <- skusResult{skus, err}
	}()

	oRes := <-ordersCh
	sRes := <-skusCh

	// Fallo de lectura → resumen vacío, no error (taxonomía de errores del core)
	if oRes.err != nil {
		log.Warn().Err(oRes.err).Str("shop_id", shopID).Msg("leer pedidos del día falló; resumen vacío")
		oRes.orders = nil
	}
	if sRes.err != nil {
		log.Warn().Err(sRes.err).Str("shop_id", shopID).Msg("leer catálogo falló; se infiere de los pedidos")
		sRes.skus = nil
	}

	summary := demand.Aggregate(oRes.orders, sRes.skus, loc)

	return &dto.HistoryDTO{
		Date:           dateStr,
		TotalOrders:    summary.TotalOrders,
		TotalEmpanadas: summary.TotalEmpanadas,
		TotalDrinks:    summary.TotalDrinks,
		SKUs:           toSKUDTOs(summary.SKUs),
		ByHourSKU:      summary.HourlyBySKU,
		HourTotals:     summary.HourlyTotals,
		Insights:       buildInsights(summary, oRes.orders),
		Orders:         toOrderDTOs(oRes.orders),
	}, nil
}

// buildInsights deriva observaciones legibles del día: hora pico, empanada y
// bebida más vendidas, hora más lenta. Sin pedidos devuelve lista vacía.
func buildInsights(summary demand.Summary, orders []entity.Order) []string {
	insights := []string{}
	if summary.TotalOrders == 0 {
		return insights
	}

	window := demand.LegacyWindow()

	// Hora pico y hora más lenta, solo entre buckets con ventas.
	// Ante empate gana la hora más temprana.
	peakHour, slowHour, peakQty, slowQty := -1, -1, 0, 0
	for _, h := range window.Hours() {
		qty := summary.HourlyTotals[h]
		if qty == 0 {
			continue
		}
		if peakHour < 0 || qty > peakQty {
			peakHour, peakQty = h, qty
		}
		if slowHour < 0 || qty < slowQty {
			slowHour, slowQty = h, qty
		}
	}
	if peakHour >= 0 {
		insights = append(insights, fmt.Sprintf("Peak hour: %s", formatHour(peakHour)))
	}

	if name, qty := topSeller(orders, entity.CategoryEmpanada); name != "" {
		insights = append(insights, fmt.Sprintf("Top empanada: %s (%d sold)", name, qty))
	}
	if name, qty := topSeller(orders, entity.CategoryDrink); name != "" {
		insights = append(insights, fmt.Sprintf("Top drink: %s (%d sold)", name, qty))
	}

	if slowHour >= 0 {
		insights = append(insights, fmt.Sprintf("Slowest hour: %s", formatHour(slowHour)))
	}
	return insights
}

// topSeller nombre y unidades del SKU más vendido de la categoría. Ante
// empate gana el que apareció primero en los pedidos.
func topSeller(orders []entity.Order, category string) (string, int) {
	totals := make(map[string]int)
	var names []string
	for _, o := range orders {
		for _, l := range o.Lines {
			if l.Category != category || l.SKUName == "" {
				continue
			}
			if _, seen := totals[l.SKUName]; !seen {
				names = append(names, l.SKUName)
			}
			totals[l.SKUName] += l.Quantity
		}
	}
	best, bestQty := "", 0
	for _, name := range names {
		if totals[name] > bestQty {
			best, bestQty = name, totals[name]
		}
	}
	return best, bestQty
}

// formatHour etiqueta legible de una hora: 11 → "11am", 13 → "1pm".
func formatHour(h int) string {
	switch {
	case h == 0:
		return "12am"
	case h < 12:
		return fmt.Sprintf("%dam", h)
	case h == 12:
		return "12pm"
	default:
		return fmt.Sprintf("%dpm", h-12)
	}
}

func toSKUDTOs(skus []entity.SKU) []dto.SKUDTO {
	out := make([]dto.SKUDTO, 0, len(skus))
	for _, s := range skus {
		out = append(out, dto.SKUDTO{ID: s.ID, Name: s.Name, Category: s.Category})
	}
	return out
}

func toOrderDTOs(orders []entity.Order) []dto.OrderDTO {
	out := make([]dto.OrderDTO, 0, len(orders))
	for _, o := range orders {
		lines := make([]dto.OrderLineDTO, 0, len(o.Lines))
		for _, l := range o.Lines {
			lines = append(lines, dto.OrderLineDTO{
				SKUID:    l.SKUID,
				SKUName:  l.SKUName,
				Category: l.Category,
				Quantity: l.Quantity,
			})
		}
		out = append(out, dto.OrderDTO{
			ID:        o.ID,
			CreatedAt: o.CreatedAt.UTC().Format(time.RFC3339),
			Lines:     lines,
		})
	}
	return out
}
