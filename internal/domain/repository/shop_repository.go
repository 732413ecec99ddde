package repository

import (
	"context"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// ShopRepository puerto de lectura del local y su configuración.
type ShopRepository interface {
	// GetByID obtiene un local por ID. Devuelve nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Shop, error)

	// GetConfig obtiene la configuración del local. Devuelve nil (sin error)
	// si el local nunca guardó configuración; el caso de uso aplica defaults.
	GetConfig(ctx context.Context, shopID string) (*entity.ShopConfig, error)
}
