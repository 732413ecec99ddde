package usecase

import (
	"context"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

// CatalogUseCase lecturas del catálogo del local. A diferencia de los
// reportes, aquí los fallos de lectura sí se propagan: son consultas CRUD
// directas, no parte del núcleo de agregación.
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// GetSKUs devuelve el catálogo de SKUs (orden: categoría, luego nombre).
func (uc *CatalogUseCase) GetSKUs(ctx context.Context, shopID string) ([]dto.SKUDTO, error) {
	skus, err := uc.repo.GetSKUs(ctx, shopID)
	if err != nil {
		return nil, err
	}
	return toSKUDTOs(skus), nil
}

// GetIngredients devuelve los ingredientes del local.
func (uc *CatalogUseCase) GetIngredients(ctx context.Context, shopID string) ([]dto.IngredientDTO, error) {
	ingredients, err := uc.repo.GetIngredients(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, dto.IngredientDTO{ID: ing.ID, Name: ing.Name, Unit: ing.Unit})
	}
	return out, nil
}

// GetRecipes devuelve las líneas de receta del local.
func (uc *CatalogUseCase) GetRecipes(ctx context.Context, shopID string) ([]dto.RecipeLineDTO, error) {
	recipes, err := uc.repo.GetRecipes(ctx, shopID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeLineDTO, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, dto.RecipeLineDTO{
			SKUID:         r.SKUID,
			IngredientID:  r.IngredientID,
			AmountPerUnit: r.AmountPerUnit.String(),
		})
	}
	return out, nil
}
