package auth

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionChecker_Session(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	checker := NewSessionChecker(time.Hour, db)
	require.NotNil(t, checker)

	ctx := context.Background()

	mock.ExpectGet(sessionKeyPrefix + "invalid token").SetErr(redis.Nil)
	user, err := checker.Session(ctx, "invalid token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, user)

	testToken := "test-token"
	sessionKey := sessionKeyPrefix + testToken

	record, err := json.Marshal(sessionRecord{
		UserID:    testUser.ID,
		Username:  testUser.Username,
		Email:     testUser.Email,
		Name:      testUser.Name,
		CreatedAt: time.Now().Unix(),
	})
	require.NoError(t, err)

	mock.ExpectGet(sessionKey).SetVal(string(record))
	user, err = checker.Session(ctx, testToken)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, testUser.Username, user.Username)
}

func TestSessionChecker_Session_Expired(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	checker := NewSessionChecker(time.Hour, db)

	testToken := "test-token"
	record, err := json.Marshal(sessionRecord{
		UserID:    testUser.ID,
		Username:  testUser.Username,
		CreatedAt: time.Now().Add(-2 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	mock.ExpectGet(sessionKeyPrefix + testToken).SetVal(string(record))
	user, err := checker.Session(context.Background(), testToken)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, user)
}
