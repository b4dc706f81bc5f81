package order

import (
	"context"
	"errors"

	"boutique-api/internal/domain"
	"boutique-api/internal/metrics"
	orderrepo "boutique-api/internal/repository/order"
)

// Service orchestrates checkout and order status transitions. The
// transactional work lives in the order repository; this layer classifies
// outcomes and records checkout metrics.
type Service struct {
	repo orderRepo
}

type orderRepo interface {
	CreateFromCart(ctx context.Context, userID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	MarkCompleted(ctx context.Context, orderID string) (*domain.Order, error)
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Checkout converts the user's pending cart into an order. Either every
// stock check passes and every mutation commits, or nothing changes.
func (s *Service) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	ord, err := s.repo.CreateFromCart(ctx, userID)
	metrics.CheckoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
	if err != nil {
		return nil, err
	}
	return ord, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Validate marks the order completed. Stock was already committed at
// checkout; this transition has no further side effects.
func (s *Service) Validate(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.repo.MarkCompleted(ctx, orderID)
}

func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "error"
	}
}
