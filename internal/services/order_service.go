package services

import (
	"context"

	"crackershop/internal/models"
	"crackershop/internal/repositories"
)

type OrderService interface {
	Place(ctx context.Context, order *models.Order, cart []models.CartItem) (int64, error)
}

type orderService struct {
	orders repositories.OrderRepository
}

func NewOrderService(orders repositories.OrderRepository) OrderService {
	return &orderService{orders: orders}
}

// Place persists the order and its cart lines. Cart contents are stored
// verbatim; product ids and prices are not checked against the catalog.
func (s *orderService) Place(ctx context.Context, order *models.Order, cart []models.CartItem) (int64, error) {
	return s.orders.CreateWithItems(ctx, order, cart)
}
