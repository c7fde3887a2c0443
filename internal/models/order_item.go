package models

type OrderItem struct {
	ID        int64   `json:"id" db:"id"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
	Qty       int     `json:"qty" db:"qty"`
	Price     float64 `json:"price" db:"price"`
}
