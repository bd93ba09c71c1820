package exercises

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns the catalog rows matching the given filters, ordered by
// category then name. The search filter is a case-insensitive substring
// match over name or description.
func (r *Repo) List(ctx context.Context, filters Filters) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("category", filters.Category))
	span.SetAttributes(attribute.String("muscle_group", filters.MuscleGroup))
	span.SetAttributes(attribute.String("search", filters.Search))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, category, muscle_group, description
			FROM exercises
			WHERE ($1::text = '' OR category = $1)
			AND ($2::text = '' OR muscle_group = $2)
			AND ($3::text = '' OR LOWER(name) LIKE '%' || LOWER($3) || '%' OR LOWER(description) LIKE '%' || LOWER($3) || '%')
			ORDER BY category, name;`,
		filters.Category, filters.MuscleGroup, filters.Search,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Category, &e.MuscleGroup, &e.Description); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return exercises, nil
}
