package workouts

import "time"

// Workout is a single logged session. Column names double as the wire
// format, the api clients read the rows as-is.
type Workout struct {
	ID           int        `json:"id"`
	UserID       string     `json:"user_id"`
	ExerciseName string     `json:"exercise_name"`
	Sets         int        `json:"sets"`
	Reps         int        `json:"reps"`
	Duration     int        `json:"duration"` // minutes
	Calories     *float64   `json:"calories,omitempty"`
	Date         time.Time  `json:"date"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ExerciseDetail is a workout_exercises row joined with its catalog entry.
type ExerciseDetail struct {
	ID           int       `json:"id"`
	WorkoutID    int       `json:"workout_id"`
	ExerciseID   int       `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	Category     string    `json:"category"`
	MuscleGroup  string    `json:"muscle_group"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       *float64  `json:"weight,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdatePatch carries the fields of a partial workout update. A nil field
// means "leave as is", so the repo can map the patch onto fixed COALESCE
// assignments instead of building SET clauses at runtime.
type UpdatePatch struct {
	ExerciseName *string    `json:"exercise_name"`
	Sets         *int       `json:"sets"`
	Reps         *int       `json:"reps"`
	Duration     *int       `json:"duration"`
	Calories     *float64   `json:"calories"`
	Date         *time.Time `json:"date"`
	Notes        *string    `json:"notes"`
}

func (p UpdatePatch) IsEmpty() bool {
	return p.ExerciseName == nil &&
		p.Sets == nil &&
		p.Reps == nil &&
		p.Duration == nil &&
		p.Calories == nil &&
		p.Date == nil &&
		p.Notes == nil
}

type WeeklyStats struct {
	TotalWorkoutsThisWeek int `json:"total_workouts_this_week"`
	TotalMinutesThisWeek  int `json:"total_minutes_this_week"`
}

type AllTimeStats struct {
	TotalWorkouts int     `json:"total_workouts"`
	TotalMinutes  int     `json:"total_minutes"`
	TotalCalories float64 `json:"total_calories"`
	AvgDuration   float64 `json:"avg_duration"`
}
