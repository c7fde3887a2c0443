package models

import "time"

type Order struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CartItem is a client-submitted order line. The price is taken verbatim;
// the product is not looked up.
type CartItem struct {
	ID       int64   `json:"id"`
	Qty      int     `json:"Qty"`
	OurPrice float64 `json:"our_price"`
}
