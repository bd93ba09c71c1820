package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type SessionChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewSessionChecker(ttl time.Duration, redisClient *redis.Client) *SessionChecker {
	return &SessionChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (c *SessionChecker) Session(ctx context.Context, token string) (*User, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := c.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var record sessionRecord
	if err := json.Unmarshal([]byte(cmd.Val()), &record); err != nil {
		return nil, err
	}

	createdAt := time.Unix(record.CreatedAt, 0)
	if time.Since(createdAt) > c.ttl {
		return nil, ErrSessionNotFound
	}

	return &User{
		ID:       record.UserID,
		Username: record.Username,
		Email:    record.Email,
		Name:     record.Name,
	}, nil
}
