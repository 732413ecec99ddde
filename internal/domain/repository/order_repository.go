package repository

import (
	"context"
	"time"

	"github.com/jhoicas/empanadas-api/internal/domain/entity"
)

// OrderRepository puerto de lectura/escritura de pedidos. Las lecturas
// devuelven pedidos con sus líneas anidadas y desnormalizadas (id, nombre y
// categoría del SKU vía JOIN); son siempre de solo lectura.
type OrderRepository interface {
	// Create persiste el pedido con todas sus líneas.
	Create(ctx context.Context, order *entity.Order) error

	// GetByRange devuelve los pedidos del local en el rango UTC semiabierto
	// [from, to), ordenados por fecha de creación ascendente.
	GetByRange(ctx context.Context, shopID string, from, to time.Time) ([]entity.Order, error)

	// GetLookback devuelve el historial del local anterior a before (rango
	// abierto hacia atrás acotado por days días), para el pronóstico.
	GetLookback(ctx context.Context, shopID string, before time.Time, days int) ([]entity.Order, error)
}
