package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empanadas-api/internal/domain"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

var _ repository.ShopRepository = (*ShopRepo)(nil)

// ShopRepo acceso a locales y su configuración operativa.
type ShopRepo struct {
	q Querier
}

func NewShopRepository(q Querier) *ShopRepo {
	return &ShopRepo{q: q}
}

func (r *ShopRepo) GetByID(ctx context.Context, shopID string) (*entity.Shop, error) {
	var s entity.Shop
	err := r.q.QueryRow(ctx, `
		SELECT id, owner_id, name, created_at
		FROM shops
		WHERE id = $1`,
		shopID,
	).Scan(&s.ID, &s.OwnerID, &s.Name, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("shops.GetByID: %w", err)
	}
	return &s, nil
}

// GetConfig devuelve la configuración del local, o nil sin error si el local
// nunca la guardó (el caso de uso aplica los defaults).
func (r *ShopRepo) GetConfig(ctx context.Context, shopID string) (*entity.ShopConfig, error) {
	var c entity.ShopConfig
	err := r.q.QueryRow(ctx, `
		SELECT shop_id, timezone, open_time, close_time, comparable_days, waste_factor
		FROM shop_configs
		WHERE shop_id = $1`,
		shopID,
	).Scan(&c.ShopID, &c.Timezone, &c.OpenTime, &c.CloseTime, &c.ComparableDays, &c.WasteFactor)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("shops.GetConfig: %w", err)
	}
	return &c, nil
}
