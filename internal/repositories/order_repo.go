package repositories

import (
	"context"

	"crackershop/internal/models"
)

type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order, cart []models.CartItem) (int64, error)
	ItemsByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error)
}

type orderRepo struct {
	db Database
}

func NewOrderRepo(db Database) OrderRepository {
	return &orderRepo{db: db}
}

// CreateWithItems inserts the order row and one order_items row per cart line,
// in cart order, inside a single transaction. A failure on any line rolls the
// whole order back; a partial order is never persisted.
func (r *orderRepo) CreateWithItems(ctx context.Context, order *models.Order, cart []models.CartItem) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (name, phone, address) VALUES ($1, $2, $3) RETURNING id`,
		order.Name, order.Phone, order.Address,
	).Scan(&orderID)
	if err != nil {
		return 0, err
	}

	for _, line := range cart {
		_, err := tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, qty, price) VALUES ($1, $2, $3, $4)`,
			orderID, line.ID, line.Qty, line.OurPrice,
		)
		if err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return orderID, nil
}

func (r *orderRepo) ItemsByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, qty, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItem
	for rows.Next() {
		item := &models.OrderItem{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Qty, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
