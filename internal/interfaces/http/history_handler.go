package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/application/usecase"
)

// HistoryHandler maneja la consulta del resumen diario de ventas.
type HistoryHandler struct {
	uc *usecase.HistoryUseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// GetDaily devuelve el resumen de ventas de un día.
// GET /api/history?date=YYYY-MM-DD
//
// Sin ?date usa el día actual en la zona horaria del local. Respuesta:
// HistoryDTO (totales, desglose por hora y SKU, insights, pedidos crudos).
func (h *HistoryHandler) GetDaily(c *fiber.Ctx) error {
	shopID := GetShopID(c)

	var req dto.HistoryRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "BAD_REQUEST", Message: "query inválida: " + err.Error(),
		})
	}

	summary, err := h.uc.GetDailySummary(c.Context(), shopID, req)
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(summary)
}
