package usecase

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// resolveConfig lee la configuración del local y aplica defaults campo a
// campo. Un fallo de lectura del store degrada a la configuración por defecto
// (warn, nunca error): el pronóstico debe ser computable incluso para un
// local recién aprovisionado.
func resolveConfig(ctx context.Context, shopRepo repository.ShopRepository, shopID string) entity.ShopConfig {
	cfg, err := shopRepo.GetConfig(ctx, shopID)
	if err != nil {
		log.Warn().Err(err).Str("shop_id", shopID).
			Msg("leer configuración del local falló; usando defaults")
		return entity.DefaultShopConfig(shopID)
	}
	if cfg == nil {
		return entity.DefaultShopConfig(shopID)
	}
	return cfg.Normalize()
}
