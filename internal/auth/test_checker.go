package auth

import "context"

type TestChecker struct {
	Sessions map[string]*User
}

func NewTestChecker() *TestChecker {
	return &TestChecker{
		Sessions: map[string]*User{},
	}
}

func (c *TestChecker) Session(_ context.Context, token string) (*User, error) {
	user, ok := c.Sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return user, nil
}
