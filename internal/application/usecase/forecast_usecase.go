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

// lookbackQueryDays cuántos días de historial pedir al store para el
// pronóstico. Mayor que el horizonte de 60 días de la caminata de días
// comparables para que el corte lo decida el dominio, no la consulta.
const lookbackQueryDays = 90

// PrepListPDFGenerator puerto para la representación imprimible del prep list.
type PrepListPDFGenerator interface {
	GeneratePrepListPDF(ctx context.Context, shopName string, forecast *dto.ForecastDTO) ([]byte, error)
}

// ForecastUseCase pronóstico de demanda por días comparables.
//
// Lee una foto fresca del store en cada llamada (sin caché ni estado
// derivado): pedidos de lookback, catálogo, recetas e ingredientes, y delega
// toda la aritmética en el dominio demand. Fallos de lectura degradan a
// entradas vacías; el resultado sigue siendo una estructura bien formada.
type ForecastUseCase struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	shopRepo    repository.ShopRepository
	pdfGen      PrepListPDFGenerator
}

// NewForecastUseCase construye el caso de uso. pdfGen puede ser nil si no se
// expone la variante PDF.
func NewForecastUseCase(
	orderRepo repository.OrderRepository,
	catalogRepo repository.CatalogRepository,
	shopRepo repository.ShopRepository,
	pdfGen PrepListPDFGenerator,
) *ForecastUseCase {
	return &ForecastUseCase{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		shopRepo:    shopRepo,
		pdfGen:      pdfGen,
	}
}

// GetForecast calcula el pronóstico para la fecha objetivo (default: mañana
// en la zona del local).
func (uc *ForecastUseCase) GetForecast(
	ctx context.Context,
	shopID string,
	req dto.ForecastRequest,
) (*dto.ForecastDTO, error) {
	cfg := resolveConfig(ctx, uc.shopRepo, shopID)
	loc := cfg.Location()

	dateStr := req.Date
	if dateStr == "" {
		dateStr = time.Now().In(loc).AddDate(0, 0, 1).Format(dateLayout)
	}
	target, err := time.ParseInLocation(dateLayout, dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: date debe ser YYYY-MM-DD", domain.ErrInvalidInput)
	}

	// ── Cuatro lecturas independientes en paralelo ────────────────────────────
	type ordersResult struct {
		orders []entity.Order
		err    error
	}
	type skusResult struct {
		skus []entity.SKU
		err  error
	}
	type recipesResult struct {
		recipes []entity.RecipeLine
		err     error
	}
	type ingredientsResult struct {
		ingredients []entity.Ingredient
		err         error
	}

	ordersCh := make(chan ordersResult, 1)
	skusCh := make(chan skusResult, 1)
	recipesCh := make(chan recipesResult, 1)
	ingredientsCh := make(chan ingredientsResult, 1)

	go func() {
		orders, err := uc.orderRepo.GetLookback(ctx, shopID, target, lookbackQueryDays)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		skus, err := uc.catalogRepo.GetSKUs(ctx, shopID)
		skusCh <- skusResult{skus, err}
	}()
	go func() {
		recipes, err := uc.catalogRepo.GetRecipes(ctx, shopID)
		recipesCh <- recipesResult{recipes, err}
	}()
	go func() {
		ingredients, err := uc.catalogRepo.GetIngredients(ctx, shopID)
		ingredientsCh <- ingredientsResult{ingredients, err}
	}()

	oRes := <-ordersCh
	sRes := <-skusCh
	rRes := <-recipesCh
	iRes := <-ingredientsCh

	// Fallo de lectura → entrada vacía (el pronóstico resulta IsEmpty o sin
	// ingredientes, nunca un error del core)
	if oRes.err != nil {
		log.Warn().Err(oRes.err).Str("shop_id", shopID).Msg("leer historial de pedidos falló; pronóstico vacío")
		oRes.orders = nil
	}
	if sRes.err != nil {
		log.Warn().Err(sRes.err).Str("shop_id", shopID).Msg("leer SKUs falló; catálogo inferido de pedidos")
		sRes.skus = nil
	}
	if rRes.err != nil {
		log.Warn().Err(rRes.err).Str("shop_id", shopID).Msg("leer recetas falló; sin expansión de ingredientes")
		rRes.recipes = nil
	}
	if iRes.err != nil {
		log.Warn().Err(iRes.err).Str("shop_id", shopID).Msg("leer ingredientes falló; sin expansión de ingredientes")
		iRes.ingredients = nil
	}

	result := demand.Forecast(demand.Input{
		TargetDate:     target,
		Orders:         oRes.orders,
		SKUs:           sRes.skus,
		Recipes:        rRes.recipes,
		Ingredients:    iRes.ingredients,
		Config:         cfg,
		WasteMinimizer: req.WasteMinimizer,
	})

	return toForecastDTO(result), nil
}

// GetForecastPDF calcula el pronóstico y lo convierte en el prep list
// imprimible.
func (uc *ForecastUseCase) GetForecastPDF(
	ctx context.Context,
	shopID string,
	req dto.ForecastRequest,
) ([]byte, error) {
	forecast, err := uc.GetForecast(ctx, shopID, req)
	if err != nil {
		return nil, err
	}
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("forecast: generador PDF no configurado")
	}

	shopName := ""
	if shop, err := uc.shopRepo.GetByID(ctx, shopID); err == nil && shop != nil {
		shopName = shop.Name
	}
	pdf, err := uc.pdfGen.GeneratePrepListPDF(ctx, shopName, forecast)
	if err != nil {
		return nil, fmt.Errorf("forecast: prep list PDF: %w", err)
	}
	return pdf, nil
}

func toForecastDTO(r demand.Result) *dto.ForecastDTO {
	ingredients := make([]dto.IngredientTotalDTO, 0, len(r.IngredientTotals))
	for _, ing := range r.IngredientTotals {
		ingredients = append(ingredients, dto.IngredientTotalDTO{
			ID:    ing.ID,
			Name:  ing.Name,
			Total: ing.Total,
			Unit:  ing.Unit,
		})
	}
	return &dto.ForecastDTO{
		TargetDate:       r.TargetDate,
		ComparableDates:  r.ComparableDates,
		OpenHour:         r.OpenHour,
		SKUs:             toSKUDTOs(r.SKUs),
		EmpanadaTotals:   r.EmpanadaTotals,
		DrinkTotals:      r.DrinkTotals,
		EmpanadaByHour:   r.EmpanadaByHour,
		DrinkTotalUnits:  r.DrinkTotalUnits,
		IngredientTotals: ingredients,
		IsEmpty:          r.IsEmpty,
	}
}
