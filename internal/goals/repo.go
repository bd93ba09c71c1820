package goals

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrGoalNotFound = errors.New("goal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the goals of userID with the given status, newest first.
// An empty status falls back to "active".
func (r *Repo) List(ctx context.Context, userID, status string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("status", status))

	if status == "" {
		status = DefaultStatus
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, title, description, target_type, target_value, target_unit, target_date, status, created_at
			FROM goals
			WHERE user_id = $1 AND status = $2
			ORDER BY created_at DESC;`,
		userID, status,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetType,
			&g.TargetValue, &g.TargetUnit, &g.TargetDate, &g.Status, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return goals, nil
}

func (r *Repo) Create(ctx context.Context, userID string, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO goals
				(user_id, title, description, target_type, target_value, target_unit, target_date)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, user_id, title, description, target_type, target_value, target_unit, target_date, status, created_at;`,
		userID, goal.Title, goal.Description, goal.TargetType,
		goal.TargetValue, goal.TargetUnit, goal.TargetDate,
	)

	var created Goal
	if err := row.Scan(
		&created.ID, &created.UserID, &created.Title, &created.Description, &created.TargetType,
		&created.TargetValue, &created.TargetUnit, &created.TargetDate, &created.Status, &created.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("scan created goal: %w", err)
	}

	span.SetAttributes(attribute.Int("goal.id", created.ID))
	return &created, nil
}
