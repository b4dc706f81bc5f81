package order

import (
	"context"

	"boutique-api/internal/domain"
)

type Repository interface {
	// CreateFromCart converts the user's pending cart into an order inside
	// a single transaction: stock is re-checked and decremented under row
	// locks, line items are frozen, and the cart is marked completed.
	// Returns domain.ErrEmptyCart when no pending cart or no line items
	// exist, and a *domain.StockError when an article cannot cover its
	// line's quantity. On any error nothing is mutated.
	CreateFromCart(ctx context.Context, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// MarkCompleted transitions the order's status to completed.
	MarkCompleted(ctx context.Context, orderID string) (*domain.Order, error)
}
