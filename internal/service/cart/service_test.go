package cart

import (
	"context"
	"errors"
	"testing"

	"boutique-api/internal/domain"
)

type stubRepo struct {
	pendingCart   *domain.Cart
	pendingErr    error
	addedItem     *domain.CartItem
	addErr        error
	addCalls      int
	lastAddUser   string
	lastAddArt    domain.Article
	lastAddQty    int
	updatedItem   *domain.CartItem
	updateErr     error
	lastUpdateQty int
	removeErr     error
	lastRemoveArt string
}

func (s *stubRepo) GetPendingByUser(_ context.Context, _ string) (*domain.Cart, error) {
	return s.pendingCart, s.pendingErr
}

func (s *stubRepo) AddItem(_ context.Context, userID string, article domain.Article, quantity int) (*domain.CartItem, error) {
	s.addCalls++
	s.lastAddUser = userID
	s.lastAddArt = article
	s.lastAddQty = quantity
	return s.addedItem, s.addErr
}

func (s *stubRepo) UpdateItemQuantity(_ context.Context, _, _ string, quantity int) (*domain.CartItem, error) {
	s.lastUpdateQty = quantity
	return s.updatedItem, s.updateErr
}

func (s *stubRepo) RemoveItem(_ context.Context, _, articleID string) error {
	s.lastRemoveArt = articleID
	return s.removeErr
}

type stubArticleRepo struct {
	article *domain.Article
	err     error
}

func (s *stubArticleRepo) GetByID(_ context.Context, _ string) (*domain.Article, error) {
	return s.article, s.err
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo, articles: &stubArticleRepo{}}

	for _, qty := range []int{0, -3} {
		if _, err := svc.AddItem(context.Background(), "u1", "a1", qty); !errors.Is(err, domain.ErrInvalid) {
			t.Fatalf("qty %d: expected validation error, got %v", qty, err)
		}
	}
	if repo.addCalls != 0 {
		t.Fatalf("expected no repo calls, got %d", repo.addCalls)
	}
}

func TestAddItemUnknownArticle(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo, articles: &stubArticleRepo{err: domain.ErrNotFound}}

	_, err := svc.AddItem(context.Background(), "u1", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("expected no line item created")
	}
}

func TestAddItemInsufficientStock(t *testing.T) {
	repo := &stubRepo{}
	article := &domain.Article{ID: "a1", Name: "Cup", PriceCents: 1000, Stock: 2}
	svc := &Service{repo: repo, articles: &stubArticleRepo{article: article}}

	_, err := svc.AddItem(context.Background(), "u1", "a1", 3)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock, got %v", err)
	}
	var stockErr *domain.StockError
	if !errors.As(err, &stockErr) || stockErr.ArticleID != "a1" {
		t.Fatalf("expected stock error naming a1, got %v", err)
	}
	if repo.addCalls != 0 {
		t.Fatalf("expected no line item created")
	}
}

func TestAddItemCapturesCurrentPrice(t *testing.T) {
	expected := &domain.CartItem{ID: "i1", ArticleID: "a1", Quantity: 3, UnitPriceCents: 10000}
	repo := &stubRepo{addedItem: expected}
	article := &domain.Article{ID: "a1", PriceCents: 10000, Stock: 5}
	svc := &Service{repo: repo, articles: &stubArticleRepo{article: article}}

	got, err := svc.AddItem(context.Background(), "u1", "a1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected item: %+v", got)
	}
	if repo.lastAddUser != "u1" || repo.lastAddQty != 3 {
		t.Fatalf("unexpected repo args user=%s qty=%d", repo.lastAddUser, repo.lastAddQty)
	}
	if repo.lastAddArt.PriceCents != 10000 {
		t.Fatalf("expected article price passed through, got %d", repo.lastAddArt.PriceCents)
	}
}

func TestUpdateItemValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}, articles: &stubArticleRepo{}}
	if _, err := svc.UpdateItem(context.Background(), "u1", "a1", 0); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{updateErr: domain.ErrNotFound}, articles: &stubArticleRepo{}}
	if _, err := svc.UpdateItem(context.Background(), "u1", "a1", 2); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateItemNoStockRecheck(t *testing.T) {
	// Quantity updates deliberately skip the advisory stock check; the
	// article repo must not even be consulted.
	expected := &domain.CartItem{ID: "i1", Quantity: 99}
	repo := &stubRepo{updatedItem: expected}
	svc := &Service{repo: repo, articles: &stubArticleRepo{err: errors.New("must not be called")}}

	got, err := svc.UpdateItem(context.Background(), "u1", "a1", 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected || repo.lastUpdateQty != 99 {
		t.Fatalf("unexpected result %+v qty=%d", got, repo.lastUpdateQty)
	}
}

func TestRemoveItem(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo, articles: &stubArticleRepo{}}
	if err := svc.RemoveItem(context.Background(), "u1", "a1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastRemoveArt != "a1" {
		t.Fatalf("unexpected article id %s", repo.lastRemoveArt)
	}
}

func TestRemoveItemNotFound(t *testing.T) {
	svc := &Service{repo: &stubRepo{removeErr: domain.ErrNotFound}, articles: &stubArticleRepo{}}
	if err := svc.RemoveItem(context.Background(), "u1", "a1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetPending(t *testing.T) {
	expected := &domain.Cart{ID: "c1", UserID: "u1", Status: domain.CartStatusPending}
	svc := &Service{repo: &stubRepo{pendingCart: expected}, articles: &stubArticleRepo{}}
	got, err := svc.GetPending(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != expected {
		t.Fatalf("unexpected cart: %+v", got)
	}
}
