package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyCart indicates checkout was attempted without a pending cart
	// or with a pending cart holding no line items.
	ErrEmptyCart = errors.New("cart missing or empty")
	// ErrInsufficientStock indicates an article cannot cover the requested
	// quantity.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalid marks malformed or missing input. Match with errors.Is;
	// the concrete message comes from ValidationError.
	ErrInvalid = errors.New("invalid input")
)

// ValidationError is an input rejection with a client-safe message.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

func (e *ValidationError) Unwrap() error { return ErrInvalid }

// StockError carries the article that failed a stock check. It matches
// ErrInsufficientStock under errors.Is.
type StockError struct {
	ArticleID string
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for article %s", e.ArticleID)
}

func (e *StockError) Unwrap() error {
	return ErrInsufficientStock
}
