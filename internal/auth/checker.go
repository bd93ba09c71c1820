package auth

import (
	"context"
	"errors"
)

var ErrSessionNotFound = errors.New("session not found")

var _ Checker = (*SessionChecker)(nil)
var _ Checker = (*TestChecker)(nil)

// Checker resolves a session token into the authenticated identity,
// or fails with ErrSessionNotFound for unknown / expired tokens
type Checker interface {
	Session(ctx context.Context, token string) (*User, error)
}
