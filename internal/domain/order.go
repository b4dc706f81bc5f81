package domain

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// Order is the immutable snapshot produced by checking out a pending cart.
// Total and line items are frozen at creation; only status changes after.
type Order struct {
	ID         string      `json:"id"`
	UserID     string      `json:"userId"`
	TotalCents int64       `json:"totalCents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	Items      []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID             string `json:"id"`
	OrderID        string `json:"orderId"`
	ArticleID      string `json:"articleId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}
