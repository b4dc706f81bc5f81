package catalog

import (
	"context"
	"strings"

	"boutique-api/internal/domain"
	articlerepo "boutique-api/internal/repository/article"
)

// Service exposes catalog CRUD with input validation in front of the
// article repository.
type Service struct {
	repo articleRepo
}

type articleRepo interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, in articlerepo.CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, id string, in articlerepo.UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

func New(repo articlerepo.Repository) *Service {
	return &Service{repo: repo}
}

type ArticleInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Stock       int    `json:"stock"`
}

func (s *Service) List(ctx context.Context) ([]domain.Article, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in ArticleInput) (*domain.Article, error) {
	if err := validateArticle(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, articlerepo.CreateArticleInput{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
	})
}

func (s *Service) Update(ctx context.Context, id string, in ArticleInput) (*domain.Article, error) {
	if err := validateArticle(in); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, articlerepo.UpdateArticleInput{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Stock:       in.Stock,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateArticle(in ArticleInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.NewValidationError("name required")
	}
	if in.PriceCents < 0 {
		return domain.NewValidationError("price must not be negative")
	}
	if in.Stock < 0 {
		return domain.NewValidationError("stock must not be negative")
	}
	return nil
}
