package models

// Product JSON field names follow the client contract, not Go convention:
// Mkt_price is the list price, our_price the selling price.
type Product struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	MktPrice   float64 `json:"Mkt_price" db:"mkt_price"`
	OurPrice   float64 `json:"our_price" db:"our_price"`
	Img        *string `json:"img" db:"img"` // "/uploads/<file>" or null
	CategoryID int64   `json:"categoryId" db:"category_id"`
}
