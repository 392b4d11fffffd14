package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrEmailTaken    = errors.New("email already registered")
	ErrUsernameTaken = errors.New("username already taken")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountBlocked     = errors.New("account blocked")

	ErrInvalidPromo = errors.New("invalid or expired promo code")
	ErrEmptyCart    = errors.New("cart is empty")

	// ErrOrderIDSpace means the order id generator could not find a free
	// identifier after its retry budget. The 1e6 keyspace is exhausted or
	// close to it; treat as fatal configuration, not a transient failure.
	ErrOrderIDSpace = errors.New("order id space exhausted")
)
