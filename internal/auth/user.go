package auth

import (
	"context"
	"time"
)

// User is the authenticated identity resolved for a request. Query layers
// never read it from ambient state, handlers pass User.ID explicitly.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type userContextKey struct{}

func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFrom returns the identity resolved by the auth middleware, if any.
func UserFrom(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*User)
	return user, ok
}
