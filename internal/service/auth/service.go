package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"boutique-api/internal/domain"
	userrepo "boutique-api/internal/repository/user"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the password does not match the
// stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles registration and the password-hash-and-JWT login flow.
// Tokens are stateless HS256 JWTs carrying the user id in `sub`.
type Service struct {
	repo     userRepo
	secret   []byte
	tokenTTL time.Duration
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

func New(repo userrepo.Repository, secret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &Service{repo: repo, secret: []byte(secret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register stores a new user with a bcrypt hash of the password. A taken
// email surfaces as domain.ErrAlreadyExists from the repository's unique
// constraint.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
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

// Login validates credentials and issues a signed, time-limited token.
// An unknown email yields domain.ErrNotFound so the API can distinguish
// it from a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": u.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken verifies signature, algorithm and expiry, returning the user
// id the token was issued for.
func (s *Service) ParseToken(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", ErrInvalidCredentials
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidCredentials
	}
	return sub, nil
}
