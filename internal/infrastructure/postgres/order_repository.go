package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/empanadas-api/internal/domain"
	"github.com/jhoicas/empanadas-api/internal/domain/entity"
	"github.com/jhoicas/empanadas-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las lecturas traen las líneas desnormalizadas vía LEFT JOIN con skus: una
// línea cuyo SKU fue borrado llega con nombre y categoría vacíos y el dominio
// la descarta.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste el pedido y sus líneas en un batch. Para atomicidad usar el
// repo atado a una transacción (TxRunner).
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if len(order.Lines) == 0 {
		return domain.ErrEmptyOrder
	}

	batch := &pgx.Batch{}
	batch.Queue(
		`INSERT INTO orders (id, shop_id, created_at) VALUES ($1, $2, $3)`,
		order.ID, order.ShopID, order.CreatedAt,
	)
	for _, l := range order.Lines {
		batch.Queue(
			`INSERT INTO order_items (id, order_id, sku_id, quantity) VALUES ($1, $2, $3, $4)`,
			l.ID, l.OrderID, l.SKUID, l.Quantity,
		)
	}

	results := r.q.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert order: %w", err)
		}
	}
	return nil
}

const selectOrdersQuery = `
	SELECT o.id, o.created_at,
	       COALESCE(i.id::TEXT, ''), COALESCE(i.sku_id::TEXT, ''),
	       COALESCE(s.name, ''), COALESCE(s.category, ''), i.quantity
	FROM orders o
	JOIN order_items i ON i.order_id = o.id
	LEFT JOIN skus s   ON s.id       = i.sku_id
	WHERE o.shop_id = $1
	  AND o.created_at >= $2
	  AND o.created_at <  $3
	ORDER BY o.created_at, o.id`

// GetByRange devuelve los pedidos del rango UTC semiabierto [from, to) con
// sus líneas anidadas.
func (r *OrderRepo) GetByRange(ctx context.Context, shopID string, from, to time.Time) ([]entity.Order, error) {
	rows, err := r.q.Query(ctx, selectOrdersQuery, shopID, from, to)
	if err != nil {
		return nil, fmt.Errorf("orders.GetByRange: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, shopID)
}

// GetLookback devuelve el historial de los days días anteriores a before.
func (r *OrderRepo) GetLookback(ctx context.Context, shopID string, before time.Time, days int) ([]entity.Order, error) {
	from := before.AddDate(0, 0, -days)
	rows, err := r.q.Query(ctx, selectOrdersQuery, shopID, from, before)
	if err != nil {
		return nil, fmt.Errorf("orders.GetLookback: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows, shopID)
}

// scanOrders arma los pedidos agrupando las filas del JOIN por id de pedido.
// Las filas vienen ordenadas por created_at, id; el agrupado es lineal.
func scanOrders(rows pgx.Rows, shopID string) ([]entity.Order, error) {
	var orders []entity.Order
	index := make(map[string]int)

	for rows.Next() {
		var (
			orderID   string
			createdAt time.Time
			line      entity.OrderLine
		)
		if err := rows.Scan(
			&orderID, &createdAt,
			&line.ID, &line.SKUID, &line.SKUName, &line.Category, &line.Quantity,
		); err != nil {
			return nil, fmt.Errorf("orders scan: %w", err)
		}
		line.OrderID = orderID

		i, ok := index[orderID]
		if !ok {
			orders = append(orders, entity.Order{
				ID:        orderID,
				ShopID:    shopID,
				CreatedAt: createdAt.UTC(),
			})
			i = len(orders) - 1
			index[orderID] = i
		}
		orders[i].Lines = append(orders[i].Lines, line)
	}
	return orders, rows.Err()
}
