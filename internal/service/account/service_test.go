package account

import (
	"context"
	"errors"
	"testing"

	"boutique-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	users      []domain.User
	byID       *domain.User
	byIDErr    error
	createErr  error
	updateErr  error
	deleteErr  error
	lastCreate domain.User
	lastUpdate domain.User
}

func (s *stubRepo) List(_ context.Context) ([]domain.User, error) {
	return s.users, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

func (s *stubRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreate = u
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := u
	created.ID = "u1"
	return &created, nil
}

func (s *stubRepo) Update(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastUpdate = u
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &u, nil
}

func (s *stubRepo) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func TestCreateValidation(t *testing.T) {
	svc := &Service{repo: &stubRepo{}}

	if _, err := svc.Create(context.Background(), CreateInput{Email: " ", Password: "pw"}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected email validation error, got %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com", Password: "  "}); !errors.Is(err, domain.ErrInvalid) {
		t.Fatalf("expected password validation error, got %v", err)
	}
}

func TestCreateHashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := &stubRepo{}
	svc := &Service{repo: repo}

	created, err := svc.Create(context.Background(), CreateInput{
		Name:     "Ada",
		Email:    "  Ada@Example.COM ",
		Password: "secret-pw",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != "ada@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if repo.lastCreate.PasswordHash == "secret-pw" || repo.lastCreate.PasswordHash == "" {
		t.Fatalf("expected a hash, got %q", repo.lastCreate.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(repo.lastCreate.PasswordHash), []byte("secret-pw")) != nil {
		t.Fatalf("hash does not verify against the password")
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	svc := &Service{repo: &stubRepo{createErr: domain.ErrAlreadyExists}}
	_, err := svc.Create(context.Background(), CreateInput{Email: "a@b.com", Password: "pw"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateKeepsHashWithoutNewPassword(t *testing.T) {
	repo := &stubRepo{byID: &domain.User{ID: "u1", Name: "Ada", Email: "a@b.com", PasswordHash: "$stored-hash"}}
	svc := &Service{repo: repo}

	updated, err := svc.Update(context.Background(), "u1", UpdateInput{Name: "Ada L."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PasswordHash != "$stored-hash" {
		t.Fatalf("hash changed without a new password: %q", updated.PasswordHash)
	}
	if updated.Name != "Ada L." || updated.Email != "a@b.com" {
		t.Fatalf("unexpected user %+v", updated)
	}
}

func TestUpdateRehashesWithNewPassword(t *testing.T) {
	repo := &stubRepo{byID: &domain.User{ID: "u1", Email: "a@b.com", PasswordHash: "$stored-hash"}}
	svc := &Service{repo: repo}

	updated, err := svc.Update(context.Background(), "u1", UpdateInput{Password: "new-pw"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PasswordHash == "$stored-hash" {
		t.Fatalf("expected a fresh hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-pw")) != nil {
		t.Fatalf("new hash does not verify")
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := &Service{repo: &stubRepo{byIDErr: domain.ErrNotFound}}
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeletePassthrough(t *testing.T) {
	svc := &Service{repo: &stubRepo{deleteErr: domain.ErrNotFound}}
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
