package cart

import (
	"context"

	"boutique-api/internal/domain"
)

type Repository interface {
	// GetPendingByUser returns the user's pending cart with its line items,
	// or domain.ErrNotFound when the user has no pending cart.
	GetPendingByUser(ctx context.Context, userID string) (*domain.Cart, error)
	// AddItem finds or creates the user's pending cart and merges the
	// article into it, capturing the article's current unit price on a
	// newly created line.
	AddItem(ctx context.Context, userID string, article domain.Article, quantity int) (*domain.CartItem, error)
	// UpdateItemQuantity overwrites the quantity of the line matching
	// articleId in the user's pending cart.
	UpdateItemQuantity(ctx context.Context, userID, articleID string, quantity int) (*domain.CartItem, error)
	// RemoveItem deletes the line matching articleId from the user's
	// pending cart.
	RemoveItem(ctx context.Context, userID, articleID string) error
}
