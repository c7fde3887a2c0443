package models

type Category struct {
	ID    int64      `json:"id" db:"id"`
	Name  string     `json:"name" db:"name"`
	Items []*Product `json:"items" db:"-"` // products grouped under this category in listing responses
}
