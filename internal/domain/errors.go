package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrUnknownService     = errors.New("unknown service")
	ErrUnknownFeature     = errors.New("unknown feature")
	ErrInvalidBinding     = errors.New("invalid feature binding")
	ErrInvalidWeek        = errors.New("invalid week number")
	ErrInvalidProfile     = errors.New("invalid profile")
	ErrInvariantViolation = errors.New("invariant violation")
)
