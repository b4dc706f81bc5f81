package account

import (
	"context"
	"strings"

	"boutique-api/internal/domain"
	userrepo "boutique-api/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

// Service handles account CRUD. Passwords are bcrypt-hashed before they
// reach the repository; the update path only re-hashes when a new
// password is actually supplied.
type Service struct {
	repo userRepo
}

type userRepo interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, u domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, domain.NewValidationError("email required")
	}
	if strings.TrimSpace(in.Password) == "" {
		return nil, domain.NewValidationError("password required")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.User, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		existing.Name = name
	}
	if email := normalizeEmail(in.Email); email != "" {
		existing.Email = email
	}
	// The stored hash stays untouched unless the caller sends a new
	// password.
	if password := strings.TrimSpace(in.Password); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = string(hashed)
	}

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
