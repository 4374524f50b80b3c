package handler

// --- Request / Response types ---

type productRequest struct {
	Name          string   `json:"name"        validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Price         float64  `json:"price"       validate:"required,gt=0,lte=99.99"`
	Category      string   `json:"category"    validate:"required,oneof=DRINK FOOD"`
	Images        []string `json:"images,omitempty"`
	IsBestSeller  bool     `json:"is_best_seller"`
	IsRecommended bool     `json:"is_recommended"`
}

// updateProductRequest carries the mutable fields; nil fields are left
// untouched. Name and category are immutable after creation.
type updateProductRequest struct {
	Description   *string  `json:"description,omitempty"`
	Price         *float64 `json:"price,omitempty" validate:"omitempty,gt=0,lte=99.99"`
	Images        []string `json:"images,omitempty"`
	IsBestSeller  *bool    `json:"is_best_seller,omitempty"`
	IsRecommended *bool    `json:"is_recommended,omitempty"`
}

type productResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Category      string   `json:"category"`
	Images        []string `json:"images,omitempty"`
	IsBestSeller  bool     `json:"is_best_seller"`
	IsRecommended bool     `json:"is_recommended"`
}
