package domain

import "time"

// ProductCategory classifies a catalog entry.
type ProductCategory string

const (
	CategoryDrink ProductCategory = "DRINK"
	CategoryFood  ProductCategory = "FOOD"
)

// ValidCategory reports whether c is a known product category.
func ValidCategory(c ProductCategory) bool {
	return c == CategoryDrink || c == CategoryFood
}

// MaxProductPrice is the upper bound on a single product price.
const MaxProductPrice = 99.99

// Product is a catalog entry. Name is globally unique.
type Product struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         float64         `json:"price"`
	Category      ProductCategory `json:"category"`
	Images        []string        `json:"images,omitempty"`
	IsBestSeller  bool            `json:"is_best_seller"`
	IsRecommended bool            `json:"is_recommended"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
