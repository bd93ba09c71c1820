package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/db"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	name          TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS workouts (
	id            SERIAL PRIMARY KEY,
	user_id       UUID NOT NULL,
	exercise_name TEXT NOT NULL,
	sets          INT NOT NULL,
	reps          INT NOT NULL,
	duration      INT NOT NULL,
	calories      NUMERIC,
	date          TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	notes         TEXT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS workouts_user_id_date_idx ON workouts (user_id, date DESC);

CREATE TABLE IF NOT EXISTS exercises (
	id           SERIAL PRIMARY KEY,
	name         TEXT NOT NULL,
	category     TEXT NOT NULL,
	muscle_group TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS workout_exercises (
	id          SERIAL PRIMARY KEY,
	workout_id  INT NOT NULL REFERENCES workouts (id) ON DELETE CASCADE,
	exercise_id INT NOT NULL REFERENCES exercises (id),
	sets        INT NOT NULL,
	reps        INT NOT NULL,
	weight      NUMERIC,
	notes       TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS goals (
	id           SERIAL PRIMARY KEY,
	user_id      UUID NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT,
	target_type  TEXT NOT NULL,
	target_value NUMERIC,
	target_unit  TEXT,
	target_date  DATE,
	status       TEXT NOT NULL DEFAULT 'active',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS goals_user_id_status_idx ON goals (user_id, status);
`

type catalogExercise struct {
	name        string
	category    string
	muscleGroup string
	description string
}

var catalog = []catalogExercise{
	{"Bench Press", "strength", "chest", "Barbell press on a flat bench"},
	{"Incline Dumbbell Press", "strength", "chest", "Dumbbell press on an inclined bench"},
	{"Push-Up", "strength", "chest", "Bodyweight press from the floor"},
	{"Squat", "strength", "legs", "Barbell back squat"},
	{"Deadlift", "strength", "back", "Barbell lift from the floor to hip level"},
	{"Pull-Up", "strength", "back", "Bodyweight pull to the bar"},
	{"Bent-Over Row", "strength", "back", "Barbell row with a hinged torso"},
	{"Overhead Press", "strength", "shoulders", "Barbell press above the head"},
	{"Lateral Raise", "strength", "shoulders", "Dumbbell raise to the side"},
	{"Biceps Curl", "strength", "arms", "Dumbbell or barbell curl"},
	{"Triceps Dip", "strength", "arms", "Bodyweight dip on parallel bars"},
	{"Leg Press", "strength", "legs", "Machine press with legs"},
	{"Lunge", "strength", "legs", "Alternating forward lunges"},
	{"Plank", "core", "abs", "Isometric hold for core stability"},
	{"Crunch", "core", "abs", "Floor crunches for the abdominals"},
	{"Russian Twist", "core", "abs", "Seated torso rotations"},
	{"Running", "cardio", "legs", "Outdoor or treadmill running"},
	{"Cycling", "cardio", "legs", "Outdoor or stationary cycling"},
	{"Rowing", "cardio", "back", "Rowing machine intervals"},
	{"Jump Rope", "cardio", "legs", "Skipping rope rounds"},
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	withFakeData := flag.Bool("fake-data", false, "seed a dev user with fake workouts and goals")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		TracingEnabled: false,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if _, err := dbPool.Exec(ctx, schema); err != nil {
		log.Fatalf("create schema: %s", err)
	}
	log.Infoln("schema created")

	seeded, err := seedCatalog(ctx, dbPool)
	if err != nil {
		log.Fatalf("seed exercises catalog: %s", err)
	}
	log.Infof("exercises catalog seeded: %d new rows", seeded)

	if *withFakeData {
		if err := seedFakeData(ctx, dbPool); err != nil {
			log.Fatalf("seed fake data: %s", err)
		}
		log.Infoln("fake dev data seeded")
	}
}

func seedCatalog(ctx context.Context, dbPool *pgxpool.Pool) (int, error) {
	seeded := 0
	for _, e := range catalog {
		tag, err := dbPool.Exec(
			ctx,
			`INSERT INTO exercises (name, category, muscle_group, description)
				SELECT $1, $2, $3, $4
				WHERE NOT EXISTS (SELECT 1 FROM exercises WHERE name = $1);`,
			e.name, e.category, e.muscleGroup, e.description,
		)
		if err != nil {
			return seeded, fmt.Errorf("insert exercise [%s]: %w", e.name, err)
		}
		seeded += int(tag.RowsAffected())
	}
	return seeded, nil
}

func seedFakeData(ctx context.Context, dbPool *pgxpool.Pool) error {
	devUserID := uuid.NewString()
	_, err := dbPool.Exec(
		ctx,
		`INSERT INTO users (id, username, email, name, password_hash)
			VALUES ($1, $2, $3, $4, $5);`,
		devUserID,
		gofakeit.Username(),
		gofakeit.Email(),
		gofakeit.Name(),
		// "devdevdev"
		"$2a$14$XVFCSy9YsHcDW7hTsTyvJumNvOgku/IGbGLWBykY75qIHWPRRSlUq",
	)
	if err != nil {
		return fmt.Errorf("insert dev user: %w", err)
	}
	log.Infof("dev user created: %s", devUserID)

	exerciseNames := []string{"Squat", "Deadlift", "Bench Press", "Running", "Cycling", "Plank"}
	for i := 0; i < 30; i++ {
		date := time.Now().AddDate(0, 0, -gofakeit.Number(0, 60))
		calories := gofakeit.Float64Range(80, 600)
		_, err := dbPool.Exec(
			ctx,
			`INSERT INTO workouts (user_id, exercise_name, sets, reps, duration, calories, date)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			devUserID,
			gofakeit.RandomString(exerciseNames),
			gofakeit.Number(1, 6),
			gofakeit.Number(5, 15),
			gofakeit.Number(15, 90),
			calories,
			date,
		)
		if err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}
	}

	targetValue := gofakeit.Float64Range(60, 90)
	targetUnit := "kg"
	_, err = dbPool.Exec(
		ctx,
		`INSERT INTO goals (user_id, title, description, target_type, target_value, target_unit)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		devUserID,
		"Reach target weight",
		gofakeit.Sentence(8),
		"weight",
		targetValue,
		targetUnit,
	)
	if err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}

	return nil
}
