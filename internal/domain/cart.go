package domain

import "time"

const (
	CartStatusPending   = "pending"
	CartStatusCompleted = "completed"
)

// Cart is the single active basket of a user. At most one pending cart
// exists per user at a time.
type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Status     string     `json:"status"`
	TotalCents int64      `json:"totalCents"`
	CreatedAt  time.Time  `json:"createdAt"`
	Items      []CartItem `json:"items,omitempty"`
}

// CartTotalCents sums the extended prices of the given lines using the
// unit price frozen at add time.
func CartTotalCents(items []CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}

// CartItem captures the article's unit price at the moment it was added;
// checkout totals are computed from this frozen price, not the live one.
type CartItem struct {
	ID             string    `json:"id"`
	CartID         string    `json:"cartId"`
	ArticleID      string    `json:"articleId"`
	Quantity       int       `json:"quantity"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	CreatedAt      time.Time `json:"createdAt"`
}
