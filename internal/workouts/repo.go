package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = errors.New("workout not found")

const (
	DefaultListLimit  = 10
	DefaultListOffset = 0
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

const workoutColumns = `id, user_id, exercise_name, sets, reps, duration, calories, date, notes, created_at, updated_at`

// List returns a page of workouts owned by userID, newest first.
func (r *Repo) List(ctx context.Context, userID string, limit, offset int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = DefaultListOffset
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT $2 OFFSET $3;`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2workouts(rows)
}

// Get returns a single workout owned by userID, together with its detailed
// exercise rows joined with the catalog. Other users' workouts are
// indistinguishable from missing ones.
func (r *Repo) Get(ctx context.Context, userID string, id int) (_ *Workout, _ []ExerciseDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workouts
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)

	var w Workout
	if err := scanWorkout(row, &w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, ErrWorkoutNotFound
		}
		return nil, nil, fmt.Errorf("scan workout: %w", err)
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT
				we.id, we.workout_id, we.exercise_id, e.name, e.category, e.muscle_group,
				we.sets, we.reps, we.weight, we.notes, we.created_at
			FROM workout_exercises we
			JOIN exercises e ON we.exercise_id = e.id
			WHERE we.workout_id = $1
			ORDER BY we.created_at;`,
		id,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var details []ExerciseDetail
	for rows.Next() {
		var d ExerciseDetail
		if err := rows.Scan(
			&d.ID, &d.WorkoutID, &d.ExerciseID, &d.ExerciseName, &d.Category, &d.MuscleGroup,
			&d.Sets, &d.Reps, &d.Weight, &d.Notes, &d.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scan exercise detail: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("rows: %w", err)
	}

	return &w, details, nil
}

func (r *Repo) Create(ctx context.Context, userID string, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO workouts
				(user_id, exercise_name, sets, reps, duration, calories, date, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING `+workoutColumns+`;`,
		userID, workout.ExerciseName, workout.Sets, workout.Reps, workout.Duration,
		workout.Calories, workout.Date, workout.Notes,
	)

	var created Workout
	if err := scanWorkout(row, &created); err != nil {
		return nil, fmt.Errorf("scan created workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", created.ID))
	return &created, nil
}

// Update applies a partial update to a workout owned by userID. The SET list
// is static, nil patch fields fall through to the current column value via
// COALESCE. Every successful update stamps updated_at.
func (r *Repo) Update(ctx context.Context, userID string, id int, patch UpdatePatch) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	row := r.db.QueryRow(
		ctx,
		`UPDATE workouts SET
				exercise_name = COALESCE($1, exercise_name),
				sets = COALESCE($2, sets),
				reps = COALESCE($3, reps),
				duration = COALESCE($4, duration),
				calories = COALESCE($5, calories),
				date = COALESCE($6, date),
				notes = COALESCE($7, notes),
				updated_at = NOW()
			WHERE id = $8 AND user_id = $9
			RETURNING `+workoutColumns+`;`,
		patch.ExerciseName, patch.Sets, patch.Reps, patch.Duration,
		patch.Calories, patch.Date, patch.Notes,
		id, userID,
	)

	var updated Workout
	if err := scanWorkout(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("scan updated workout: %w", err)
	}

	return &updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID string, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// Recent returns the n most recent workouts by date.
func (r *Repo) Recent(ctx context.Context, userID string, n int) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.recent")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("n", n))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+workoutColumns+`
			FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT $2;`,
		userID, n,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	return rows2workouts(rows)
}

// WeeklyStats sums the workouts dated on or after from.
func (r *Repo) WeeklyStats(ctx context.Context, userID string, from time.Time) (_ *WeeklyStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.weeklystats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("from", from.String()))

	var stats WeeklyStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*) AS total_workouts_this_week,
				COALESCE(SUM(duration), 0) AS total_minutes_this_week
			FROM workouts
			WHERE user_id = $1 AND date >= $2;`,
		userID, from,
	).Scan(&stats.TotalWorkoutsThisWeek, &stats.TotalMinutesThisWeek); err != nil {
		return nil, fmt.Errorf("scan weekly stats: %w", err)
	}

	return &stats, nil
}

func (r *Repo) AllTimeStats(ctx context.Context, userID string) (_ *AllTimeStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.alltimestats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var stats AllTimeStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*) AS total_workouts,
				COALESCE(SUM(duration), 0) AS total_minutes,
				COALESCE(SUM(calories), 0) AS total_calories,
				COALESCE(AVG(duration), 0) AS avg_duration
			FROM workouts
			WHERE user_id = $1;`,
		userID,
	).Scan(&stats.TotalWorkouts, &stats.TotalMinutes, &stats.TotalCalories, &stats.AvgDuration); err != nil {
		return nil, fmt.Errorf("scan all time stats: %w", err)
	}

	return &stats, nil
}

func scanWorkout(row pgx.Row, w *Workout) error {
	return row.Scan(
		&w.ID, &w.UserID, &w.ExerciseName, &w.Sets, &w.Reps, &w.Duration,
		&w.Calories, &w.Date, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
}

func rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := scanWorkout(rows, &w); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return workouts, nil
}
