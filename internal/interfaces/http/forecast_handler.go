package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/application/usecase"
)

// ForecastHandler maneja el pronóstico de demanda y la lista de preparación.
type ForecastHandler struct {
	uc *usecase.ForecastUseCase
}

// NewForecastHandler construye el handler.
func NewForecastHandler(uc *usecase.ForecastUseCase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// Get devuelve el pronóstico de demanda para una fecha.
// GET /api/forecast?date=YYYY-MM-DD&waste_minimizer=true
//
// Sin ?date usa el día siguiente en la zona horaria del local. IsEmpty=true
// indica que no hubo días comparables con ventas; nunca es un error.
func (h *ForecastHandler) Get(c *fiber.Ctx) error {
	shopID := GetShopID(c)

	var req dto.ForecastRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: "query inválida: " + err.Error(),
		})
	}

	forecast, err := h.uc.GetForecast(c.Context(), shopID, req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(forecast)
}

// GetPDF devuelve la lista de preparación como PDF imprimible.
// GET /api/forecast/pdf?date=YYYY-MM-DD&waste_minimizer=true
func (h *ForecastHandler) GetPDF(c *fiber.Ctx) error {
	shopID := GetShopID(c)

	var req dto.ForecastRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: "query inválida: " + err.Error(),
		})
	}

	pdfBytes, err := h.uc.GetForecastPDF(c.Context(), shopID, req)
	if err != nil {
		return mapDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="prep-list.pdf"`)
	return c.Send(pdfBytes)
}
