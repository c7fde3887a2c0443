package handlers

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"crackershop/internal/models"
	"crackershop/internal/services"
)

// OrderHandlers handles HTTP requests for orders
type OrderHandlers struct {
	orderService services.OrderService
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(orderService services.OrderService) *OrderHandlers {
	return &OrderHandlers{
		orderService: orderService,
	}
}

// PlaceOrder handles POST /api/orders
func (h *OrderHandlers) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Name    string            `json:"name"`
		Phone   string            `json:"phone"`
		Address string            `json:"address"`
		Cart    []models.CartItem `json:"cart"`
	}

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if len(req.Cart) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}

	order := &models.Order{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	orderID, err := h.orderService.Place(ctx, order, req.Cart)
	if err != nil {
		log.Printf("placing order: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Error placing order")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order placed",
		"orderId": orderID,
	})
}
