package handler

// --- Request / Response types ---

type createOrderRequest struct {
	CustomerEmail string   `json:"customerEmail" validate:"required,email"`
	OrderItems    []string `json:"orderItems"    validate:"required,min=1"`
	TotalAmount   float64  `json:"totalAmount"   validate:"required,gt=0"`
}

// updateOrderRequest always carries a status; a nil orderItems list leaves
// the order's products untouched.
type updateOrderRequest struct {
	OrderStatus string   `json:"orderStatus" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED CANCELLED"`
	OrderItems  []string `json:"orderItems,omitempty"`
}

type orderResponse struct {
	OrderID       string   `json:"orderId"`
	CustomerEmail string   `json:"customerEmail"`
	Products      []string `json:"products"`
	TotalAmount   float64  `json:"totalAmount"`
	Status        string   `json:"status"`
}

type orderIDItem struct {
	OrderID string `json:"orderId"`
}

type orderSummary struct {
	OrderID       string `json:"orderId"`
	CustomerEmail string `json:"customerEmail"`
}
