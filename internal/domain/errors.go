package domain

import "errors"

var (
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrNotFound             = errors.New("resource not found")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrInvariantViolation   = errors.New("stock invariant violation")
	ErrInvalidArgument      = errors.New("invalid argument")
)
