package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// UsersRepo stores the account records behind the sign-up / sign-in flows.
// The rest of the service only ever sees the resolved identity (User).
type UsersRepo struct {
	db *pgxpool.Pool
}

func NewUsersRepo(db *pgxpool.Pool) *UsersRepo {
	return &UsersRepo{
		db: db,
	}
}

type UserRecord struct {
	User
	PasswordHash string
}

func (r *UsersRepo) Create(ctx context.Context, username, email, name, passwordHash string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user := &User{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO users (id, username, email, name, password_hash, created_at)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		user.ID, user.Username, user.Email, user.Name, passwordHash, user.CreatedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.String("user.id", user.ID))
	return user, nil
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (_ *UserRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var rec UserRecord
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, email, name, password_hash, created_at
			FROM users
			WHERE username = $1;`,
		username,
	).Scan(&rec.ID, &rec.Username, &rec.Email, &rec.Name, &rec.PasswordHash, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	return &rec, nil
}
