package domain

import "errors"

var (
	// ErrUnauthorized covers every credential failure: missing header,
	// unknown user, wrong password. Rendered as a bare 401.
	ErrUnauthorized = errors.New("unauthorized")

	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrRecipientNotFound = errors.New("recipient doesn't exist")
	ErrProductNotFound   = errors.New("invalid product")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")

	// ErrRateUnavailable marks an upstream currency-rate failure; the
	// client sees a 500 rather than a domain 400.
	ErrRateUnavailable = errors.New("currency conversion failed")
)
