package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

// Stubs en memoria de los puertos de persistencia para los tests de casos de
// uso. Cada stub devuelve lo configurado o su error fijo.

type stubOrderRepo struct {
	orders  []entity.Order
	created []entity.Order
	err     error
}

func (s *stubOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, *order)
	return nil
}

func (s *stubOrderRepo) GetByRange(_ context.Context, _ string, _, _ time.Time) ([]entity.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderRepo) GetLookback(_ context.Context, _ string, _ time.Time, _ int) ([]entity.Order, error) {
	return s.orders, s.err
}

type stubCatalogRepo struct {
	skus        []entity.SKU
	recipes     []entity.RecipeLine
	ingredients []entity.Ingredient
	err         error
}

func (s *stubCatalogRepo) GetSKUs(_ context.Context, _ string) ([]entity.SKU, error) {
	return s.skus, s.err
}

func (s *stubCatalogRepo) GetRecipes(_ context.Context, _ string) ([]entity.RecipeLine, error) {
	return s.recipes, s.err
}

func (s *stubCatalogRepo) GetIngredients(_ context.Context, _ string) ([]entity.Ingredient, error) {
	return s.ingredients, s.err
}

type stubShopRepo struct {
	shop *entity.Shop
	cfg  *entity.ShopConfig
	err  error
}

func (s *stubShopRepo) GetByID(_ context.Context, _ string) (*entity.Shop, error) {
	return s.shop, s.err
}

func (s *stubShopRepo) GetConfig(_ context.Context, _ string) (*entity.ShopConfig, error) {
	return s.cfg, s.err
}

type stubTxRunner struct {
	repo *stubOrderRepo
	err  error
}

func (s *stubTxRunner) Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error {
	if s.err != nil {
		return s.err
	}
	return fn(s.repo)
}
