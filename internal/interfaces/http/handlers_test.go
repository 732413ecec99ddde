package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/application/usecase"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/empanadas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria para levantar la API completa sin PostgreSQL
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders  []entity.Order
	created []entity.Order
}

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	m.created = append(m.created, *o)
	return nil
}

func (m *memOrderRepo) GetByRange(_ context.Context, _ string, _, _ time.Time) ([]entity.Order, error) {
	return m.orders, nil
}

func (m *memOrderRepo) GetLookback(_ context.Context, _ string, _ time.Time, _ int) ([]entity.Order, error) {
	return m.orders, nil
}

type memCatalogRepo struct {
	skus []entity.SKU
}

func (m *memCatalogRepo) GetSKUs(_ context.Context, _ string) ([]entity.SKU, error) {
	return m.skus, nil
}
func (m *memCatalogRepo) GetIngredients(_ context.Context, _ string) ([]entity.Ingredient, error) {
	return nil, nil
}
func (m *memCatalogRepo) GetRecipes(_ context.Context, _ string) ([]entity.RecipeLine, error) {
	return nil, nil
}

type memShopRepo struct{}

func (memShopRepo) GetByID(_ context.Context, shopID string) (*entity.Shop, error) {
	return &entity.Shop{ID: shopID, Name: "Mari Empanadas"}, nil
}
func (memShopRepo) GetConfig(_ context.Context, _ string) (*entity.ShopConfig, error) {
	return nil, nil
}

type memTxRunner struct {
	repo *memOrderRepo
}

func (m *memTxRunner) Run(_ context.Context, fn func(repository.OrderRepository) error) error {
	return fn(m.repo)
}

// buildAPI arma la app Fiber con el router real sobre los stubs.
func buildAPI(orderRepo *memOrderRepo, catalogRepo *memCatalogRepo) *fiber.App {
	shopRepo := memShopRepo{}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		OrderUC:    usecase.NewOrderUseCase(&memTxRunner{repo: orderRepo}),
		HistoryUC:  usecase.NewHistoryUseCase(orderRepo, catalogRepo, shopRepo),
		ForecastUC: usecase.NewForecastUseCase(orderRepo, catalogRepo, shopRepo, nil),
		CatalogUC:  usecase.NewCatalogUseCase(catalogRepo),
		JWTSecret:  testJWTSecret,
	})
	return app
}

func catalogFixture() []entity.SKU {
	return []entity.SKU{
		{ID: "sku-chicken", Name: "Chicken", Category: entity.CategoryEmpanada},
		{ID: "sku-morocho", Name: "Morocho", Category: entity.CategoryDrink},
	}
}

func apiRequest(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestPostOrders_Registra201(t *testing.T) {
	orderRepo := &memOrderRepo{}
	app := buildAPI(orderRepo, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodPost, "/api/orders",
		`{"lines":[{"sku_id":"sku-chicken","quantity":2},{"sku_id":"sku-morocho","quantity":1}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body dto.PlaceOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.OrderID)
	assert.Equal(t, 3, body.TotalUnits)
	require.Len(t, orderRepo.created, 1)
	assert.Equal(t, testShopID, orderRepo.created[0].ShopID, "el shop sale del JWT")
}

func TestPostOrders_SinLineasValidas_Retorna400(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodPost, "/api/orders",
		`{"lines":[{"sku_id":"sku-chicken","quantity":0}]}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPostOrders_SinToken_Retorna401(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"lines":[{"sku_id":"sku-chicken","quantity":1}]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetHistory_FechaInvalida_Retorna400(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodGet, "/api/history?date=ayer", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetHistory_SinVentas_Retorna200ConCeros(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodGet, "/api/history?date=2025-03-08", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.HistoryDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2025-03-08", body.Date)
	assert.Zero(t, body.TotalOrders)
	assert.Len(t, body.HourTotals, 8, "las 8 horas de la ventana siempre presentes")
}

func TestGetForecast_SinHistorial_Retorna200Vacio(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodGet, "/api/forecast?date=2025-03-15", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ForecastDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.IsEmpty)
	assert.Equal(t, "2025-03-15", body.TargetDate)
	assert.Contains(t, body.EmpanadaTotals, "sku-chicken")
}

func TestGetCatalogSKUs_Retorna200(t *testing.T) {
	app := buildAPI(&memOrderRepo{}, &memCatalogRepo{skus: catalogFixture()})

	resp := apiRequest(t, app, http.MethodGet, "/api/catalog/skus", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []dto.SKUDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "Chicken", body[0].Name)
}
