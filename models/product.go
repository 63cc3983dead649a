package models

// Product is a catalog item. Price is nullable; a product without a price
// contributes nothing to cart totals and cannot be checked out.
type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"unique;not null" json:"name"`
	Description string   `gorm:"unique;not null" json:"description"`
	Price       *float64 `json:"price"`
}
