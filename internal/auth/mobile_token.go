package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// The mobile app authenticates with a short-lived HS256 JWT signed with
// a secret shared between the app and the backend, instead of the
// redis-backed browser session token.

var ErrInvalidMobileToken = errors.New("invalid mobile token")

// ParseMobileToken validates a bearer JWT from the mobile app and
// returns the identity carried in its claims
func ParseMobileToken(token, secret string) (*User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidMobileToken
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMobileToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidMobileToken
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return nil, ErrInvalidMobileToken
	}

	username, _ := claims["username"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &User{
		ID:       subject,
		Username: username,
		Name:     name,
		Email:    email,
	}, nil
}
