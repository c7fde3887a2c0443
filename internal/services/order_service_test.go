package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"crackershop/internal/models"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateWithItems(ctx context.Context, order *models.Order, cart []models.CartItem) (int64, error) {
	args := m.Called(ctx, order, cart)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ItemsByOrder(ctx context.Context, orderID int64) ([]*models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.OrderItem), args.Error(1)
}

func TestPlaceOrder_PassesCartVerbatim(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)

	order := &models.Order{Name: "Jane", Phone: "555", Address: "1 Main St"}
	cart := []models.CartItem{
		{ID: 1, Qty: 2, OurPrice: 9.5},
		{ID: 2, Qty: 1, OurPrice: 20},
	}
	orderRepo.On("CreateWithItems", ctx, order, cart).Return(int64(31), nil)

	svc := NewOrderService(orderRepo)

	orderID, err := svc.Place(ctx, order, cart)
	assert.NoError(t, err)
	assert.Equal(t, int64(31), orderID)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrder_RepositoryError(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("CreateWithItems", ctx, mock.Anything, mock.Anything).Return(int64(0), errors.New("transaction failed"))

	svc := NewOrderService(orderRepo)

	orderID, err := svc.Place(ctx, &models.Order{Name: "Jane"}, []models.CartItem{{ID: 1, Qty: 1, OurPrice: 5}})
	assert.Error(t, err)
	assert.Zero(t, orderID)
}
