package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empanadas-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC    *usecase.OrderUseCase
	HistoryUC  *usecase.HistoryUseCase
	ForecastUC *usecase.ForecastUseCase
	CatalogUC  *usecase.CatalogUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo el negocio vive detrás del
// Bearer Token: el shop_id de cada petición sale del JWT, nunca de la URL.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Punto de venta
	orderHandler := NewOrderHandler(deps.OrderUC)
	protected.Post("/orders", orderHandler.Place)

	// Historial de ventas
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	protected.Get("/history", historyHandler.GetDaily)

	// Pronóstico de demanda
	forecastHandler := NewForecastHandler(deps.ForecastUC)
	protected.Get("/forecast", forecastHandler.Get)
	protected.Get("/forecast/pdf", forecastHandler.GetPDF)

	// Catálogo
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog/skus", catalogHandler.ListSKUs)
	protected.Get("/catalog/ingredients", catalogHandler.ListIngredients)
}
