package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo acceso de solo lectura al catálogo: SKUs, ingredientes y recetas.
type CatalogRepo struct {
	q Querier
}

func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetSKUs devuelve el catálogo ordenado: empanadas primero, luego bebidas,
// alfabético dentro de cada categoría.
func (r *CatalogRepo) GetSKUs(ctx context.Context, shopID string) ([]entity.SKU, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, shop_id, name, category, created_at
		FROM skus
		WHERE shop_id = $1
		ORDER BY CASE category WHEN 'empanada' THEN 0 WHEN 'drink' THEN 1 ELSE 2 END, name`,
		shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetSKUs: %w", err)
	}
	defer rows.Close()

	var skus []entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.ShopID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("skus scan: %w", err)
		}
		skus = append(skus, s)
	}
	return skus, rows.Err()
}

// GetIngredients devuelve los ingredientes del local, alfabético.
func (r *CatalogRepo) GetIngredients(ctx context.Context, shopID string) ([]entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, shop_id, name, unit
		FROM ingredients
		WHERE shop_id = $1
		ORDER BY name`,
		shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetIngredients: %w", err)
	}
	defer rows.Close()

	var ingredients []entity.Ingredient
	for rows.Next() {
		var ing entity.Ingredient
		if err := rows.Scan(&ing.ID, &ing.ShopID, &ing.Name, &ing.Unit); err != nil {
			return nil, fmt.Errorf("ingredients scan: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// GetRecipes devuelve todas las líneas de receta de los SKUs del local.
// amount_per_unit llega como decimal gracias al codec registrado en el pool.
func (r *CatalogRepo) GetRecipes(ctx context.Context, shopID string) ([]entity.RecipeLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT r.sku_id, r.ingredient_id, r.amount_per_unit
		FROM recipes r
		JOIN skus s ON s.id = r.sku_id
		WHERE s.shop_id = $1`,
		shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetRecipes: %w", err)
	}
	defer rows.Close()

	var recipes []entity.RecipeLine
	for rows.Next() {
		var rl entity.RecipeLine
		if err := rows.Scan(&rl.SKUID, &rl.IngredientID, &rl.AmountPerUnit); err != nil {
			return nil, fmt.Errorf("recipes scan: %w", err)
		}
		recipes = append(recipes, rl)
	}
	return recipes, rows.Err()
}
