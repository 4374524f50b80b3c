package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusInProgress OrderStatus = "IN_PROGRESS"
	StatusCompleted  OrderStatus = "COMPLETED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is a known order status.
// Transitions between statuses are deliberately unconstrained: any status
// may be overwritten with any other via update.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderLine is a resolved product reference on an order. The name is
// snapshotted at resolution time; duplicates are allowed.
type OrderLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
}

// Order is the transaction aggregate linking a user to purchased products.
// TotalAmount is taken verbatim from the caller, never recomputed.
type Order struct {
	ID            string      `json:"id"`
	CustomerEmail string      `json:"customer_email"`
	Products      []OrderLine `json:"products"`
	TotalAmount   float64     `json:"total_amount"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
