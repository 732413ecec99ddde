package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empanadas-api/internal/application/usecase"
)

// CatalogHandler expone el catálogo de SKUs e ingredientes del local.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListSKUs devuelve el catálogo de venta (empanadas primero, luego bebidas).
// GET /api/catalog/skus
func (h *CatalogHandler) ListSKUs(c *fiber.Ctx) error {
	skus, err := h.uc.GetSKUs(c.Context(), GetShopID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(skus)
}

// ListIngredients devuelve los ingredientes registrados del local.
// GET /api/catalog/ingredients
func (h *CatalogHandler) ListIngredients(c *fiber.Ctx) error {
	ingredients, err := h.uc.GetIngredients(c.Context(), GetShopID(c))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(ingredients)
}
