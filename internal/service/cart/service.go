package cart

import (
	"context"

	"boutique-api/internal/domain"
	cartrepo "boutique-api/internal/repository/cart"
)

// Service exposes pending-cart operations. The stock check on add is
// advisory only: nothing is reserved, and checkout re-checks under row
// locks before committing.
type Service struct {
	repo     cartRepo
	articles articleRepo
}

type cartRepo interface {
	GetPendingByUser(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, article domain.Article, quantity int) (*domain.CartItem, error)
	UpdateItemQuantity(ctx context.Context, userID, articleID string, quantity int) (*domain.CartItem, error)
	RemoveItem(ctx context.Context, userID, articleID string) error
}

type articleRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Article, error)
}

func New(repo cartrepo.Repository, articles articleRepo) *Service {
	return &Service{repo: repo, articles: articles}
}

func (s *Service) GetPending(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.GetPendingByUser(ctx, userID)
}

func (s *Service) AddItem(ctx context.Context, userID, articleID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity must be positive")
	}
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.Stock < quantity {
		return nil, &domain.StockError{ArticleID: article.ID}
	}
	return s.repo.AddItem(ctx, userID, *article, quantity)
}

func (s *Service) UpdateItem(ctx context.Context, userID, articleID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.NewValidationError("quantity must be positive")
	}
	return s.repo.UpdateItemQuantity(ctx, userID, articleID, quantity)
}

func (s *Service) RemoveItem(ctx context.Context, userID, articleID string) error {
	return s.repo.RemoveItem(ctx, userID, articleID)
}
