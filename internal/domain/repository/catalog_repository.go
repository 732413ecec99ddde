package repository

import (
	"context"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// CatalogRepository puerto de lectura del catálogo estático del local.
// Las implementaciones son read-only (no modifican datos).
type CatalogRepository interface {
	// GetSKUs devuelve los SKUs del local ordenados por categoría y nombre.
	GetSKUs(ctx context.Context, shopID string) ([]entity.SKU, error)

	// GetRecipes devuelve las líneas de receta de todos los SKUs del local.
	GetRecipes(ctx context.Context, shopID string) ([]entity.RecipeLine, error)

	// GetIngredients devuelve los ingredientes del local ordenados por nombre.
	GetIngredients(ctx context.Context, shopID string) ([]entity.Ingredient, error)
}
