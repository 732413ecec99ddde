package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/application/usecase"
	"github.com/jhoicas/empanadas-api/internal/domain"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

const testShopID = "shop-1"

func nyLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func historyCatalog() []entity.SKU {
	return []entity.SKU{
		{ID: "sku-chicken", Name: "Chicken", Category: entity.CategoryEmpanada},
		{ID: "sku-cheese", Name: "Cheese", Category: entity.CategoryEmpanada},
		{ID: "sku-morocho", Name: "Morocho", Category: entity.CategoryDrink},
	}
}

func orderLocal(t *testing.T, loc *time.Location, hour int, lines ...entity.OrderLine) entity.Order {
	t.Helper()
	local := time.Date(2025, 3, 8, hour, 10, 0, 0, loc)
	return entity.Order{ID: "ord", ShopID: testShopID, CreatedAt: local.UTC(), Lines: lines}
}

func TestHistory_ResumenConInsights(t *testing.T) {
	loc := nyLocation(t)
	orders := []entity.Order{
		orderLocal(t, loc, 12,
			entity.OrderLine{SKUID: "sku-chicken", SKUName: "Chicken", Category: entity.CategoryEmpanada, Quantity: 4},
			entity.OrderLine{SKUID: "sku-morocho", SKUName: "Morocho", Category: entity.CategoryDrink, Quantity: 2},
		),
		orderLocal(t, loc, 13,
			entity.OrderLine{SKUID: "sku-cheese", SKUName: "Cheese", Category: entity.CategoryEmpanada, Quantity: 1},
		),
	}
	uc := usecase.NewHistoryUseCase(
		&stubOrderRepo{orders: orders},
		&stubCatalogRepo{skus: historyCatalog()},
		&stubShopRepo{},
	)

	res, err := uc.GetDailySummary(context.Background(), testShopID, dto.HistoryRequest{Date: "2025-03-08"})
	require.NoError(t, err)

	assert.Equal(t, 2, res.TotalOrders)
	assert.Equal(t, 5, res.TotalEmpanadas)
	assert.Equal(t, 2, res.TotalDrinks)
	assert.Equal(t, 6, res.HourTotals[12])
	assert.Equal(t, []string{
		"Peak hour: 12pm",
		"Top empanada: Chicken (4 sold)",
		"Top drink: Morocho (2 sold)",
		"Slowest hour: 1pm",
	}, res.Insights)
}

func TestHistory_FalloDelStoreDegradaAResumenVacio(t *testing.T) {
	uc := usecase.NewHistoryUseCase(
		&stubOrderRepo{err: errors.New("conexión rechazada")},
		&stubCatalogRepo{err: errors.New("conexión rechazada")},
		&stubShopRepo{err: errors.New("conexión rechazada")},
	)

	res, err := uc.GetDailySummary(context.Background(), testShopID, dto.HistoryRequest{Date: "2025-03-08"})
	require.NoError(t, err, "un fallo de lectura nunca es error del core")

	assert.Zero(t, res.TotalOrders)
	assert.Empty(t, res.Insights)
	require.Len(t, res.HourTotals, 8, "los buckets siguen sembrados aunque el store falle")
	for h := 11; h <= 18; h++ {
		assert.Zero(t, res.HourTotals[h])
	}
}

func TestHistory_FechaInvalidaEsErrorDelCliente(t *testing.T) {
	uc := usecase.NewHistoryUseCase(&stubOrderRepo{}, &stubCatalogRepo{}, &stubShopRepo{})

	_, err := uc.GetDailySummary(context.Background(), testShopID, dto.HistoryRequest{Date: "08/03/2025"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
