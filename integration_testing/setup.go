package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/2beens/fittrack/internal"
	"github.com/2beens/fittrack/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			MobileAppSecret:         "test",
			VersionInfo:             "test-version-info",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Host:                        serverHost,
		Port:                        serverPort,
		LogToStdout:                 true,
		RedisHost:                   "localhost",
		RedisPort:                   redisPort,
		PostgresPort:                postgresPort,
		PostgresHost:                "localhost",
		PostgresDBName:              "fittrack",
		PrometheusMetricsHost:       "localhost",
		PrometheusMetricsPort:       "9002",
		LoginRateLimitAllowedPerMin: 100,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "12",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=fittrack",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fittrack?sslmode=disable", pgPort)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	res, err := db.Exec(initSQL)
	if err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	numRows, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("get rows affected: %s", err)
	}

	log.Printf("postgres setup result: %d\n", numRows)

	if db.Ping() != nil {
		return "", fmt.Errorf("ping db: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.users
(
    id            UUID PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    email         TEXT NOT NULL DEFAULT '',
    name          TEXT NOT NULL DEFAULT '',
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.users OWNER TO postgres;

CREATE TABLE public.workouts
(
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

ALTER TABLE public.workouts OWNER TO postgres;
CREATE INDEX workouts_user_id_date_idx ON public.workouts (user_id, date DESC);

CREATE TABLE public.exercises
(
    id           SERIAL PRIMARY KEY,
    name         TEXT NOT NULL,
    category     TEXT NOT NULL,
    muscle_group TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT ''
);

ALTER TABLE public.exercises OWNER TO postgres;

CREATE TABLE public.workout_exercises
(
    id          SERIAL PRIMARY KEY,
    workout_id  INT NOT NULL REFERENCES public.workouts (id) ON DELETE CASCADE,
    exercise_id INT NOT NULL REFERENCES public.exercises (id),
    sets        INT NOT NULL,
    reps        INT NOT NULL,
    weight      NUMERIC,
    notes       TEXT,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE public.workout_exercises OWNER TO postgres;

CREATE TABLE public.goals
(
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

ALTER TABLE public.goals OWNER TO postgres;
CREATE INDEX goals_user_id_status_idx ON public.goals (user_id, status);

INSERT INTO public.exercises (name, category, muscle_group, description)
VALUES ('Bench Press', 'strength', 'chest', 'Barbell press on a flat bench'),
       ('Squat', 'strength', 'legs', 'Barbell back squat'),
       ('Deadlift', 'strength', 'back', 'Barbell lift from the floor to hip level'),
       ('Running', 'cardio', 'legs', 'Outdoor or treadmill running');
`
