package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("product not found")
	ErrDuplicate         = errors.New("product code already exists")
	ErrInvalidInput      = errors.New("invalid input")
	ErrForbidden         = errors.New("access denied")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrMissingColumns    = errors.New("required columns not found in table")
	ErrPersistence       = errors.New("catalog persistence failed")
)
