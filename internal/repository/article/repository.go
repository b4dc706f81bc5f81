package article

import (
	"context"

	"boutique-api/internal/domain"
)

type CreateArticleInput struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
}

type UpdateArticleInput struct {
	Name        string
	Description string
	PriceCents  int64
	Stock       int
}

type Repository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, in CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, in UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}
