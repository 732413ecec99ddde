package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/empanadas-api/internal/application/dto"
	"github.com/jhoicas/empanadas-api/internal/domain"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

// OrderTxRunner ejecuta el callback dentro de una transacción con el
// repositorio de pedidos atado a la tx (pedido + líneas atómicos).
type OrderTxRunner interface {
	Run(ctx context.Context, fn func(orders repository.OrderRepository) error) error
}

// OrderUseCase alta de pedidos POS. Los pedidos nunca se modifican ni se
// borran después de creados.
type OrderUseCase struct {
	tx OrderTxRunner
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(tx OrderTxRunner) *OrderUseCase {
	return &OrderUseCase{tx: tx}
}

// PlaceOrder persiste un pedido con sus líneas. Las líneas con cantidad cero
// o negativa se filtran antes de persistir; si no queda ninguna devuelve
// ErrEmptyOrder. A diferencia de las lecturas, los fallos de escritura sí se
// propagan.
func (uc *OrderUseCase) PlaceOrder(
	ctx context.Context,
	shopID string,
	in dto.PlaceOrderRequest,
) (*dto.PlaceOrderResponse, error) {
	order := entity.Order{
		ID:        uuid.New().String(),
		ShopID:    shopID,
		CreatedAt: time.Now().UTC(),
	}
	for _, l := range in.Lines {
		if l.Quantity <= 0 || l.SKUID == "" {
			continue
		}
		order.Lines = append(order.Lines, entity.OrderLine{
			ID:       uuid.New().String(),
			OrderID:  order.ID,
			SKUID:    l.SKUID,
			Quantity: l.Quantity,
		})
	}
	if len(order.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	err := uc.tx.Run(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(ctx, &order)
	})
	if err != nil {
		return nil, err
	}

	return &dto.PlaceOrderResponse{
		OrderID:    order.ID,
		TotalUnits: order.TotalUnits(),
	}, nil
}
