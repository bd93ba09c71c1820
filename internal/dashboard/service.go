package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=dashboard_mocks_test.go -package=dashboard_test

const recentWorkoutsCount = 5

type workoutsReader interface {
	Recent(ctx context.Context, userID string, n int) ([]workouts.Workout, error)
	WeeklyStats(ctx context.Context, userID string, from time.Time) (*workouts.WeeklyStats, error)
	AllTimeStats(ctx context.Context, userID string) (*workouts.AllTimeStats, error)
}

type Data struct {
	RecentWorkouts []workouts.Workout     `json:"recentWorkouts"`
	WeeklyStats    *workouts.WeeklyStats  `json:"weeklyStats"`
	AllTimeStats   *workouts.AllTimeStats `json:"allTimeStats"`
}

type Service struct {
	workouts workoutsReader

	// NowFunc is used to resolve the weekly boundary, swappable in tests.
	NowFunc func() time.Time
}

func NewService(workoutsReader workoutsReader) *Service {
	return &Service{
		workouts: workoutsReader,
		NowFunc:  time.Now,
	}
}

// Get runs the three dashboard reads concurrently. The first error aborts
// the whole response, there is no partial payload.
func (s *Service) Get(ctx context.Context, userID string) (_ *Data, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var data Data
	weekStart := WeekStart(s.NowFunc())

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		recent, err := s.workouts.Recent(gCtx, userID, recentWorkoutsCount)
		if err != nil {
			return fmt.Errorf("recent workouts: %w", err)
		}
		data.RecentWorkouts = recent
		return nil
	})
	g.Go(func() error {
		weekly, err := s.workouts.WeeklyStats(gCtx, userID, weekStart)
		if err != nil {
			return fmt.Errorf("weekly stats: %w", err)
		}
		data.WeeklyStats = weekly
		return nil
	})
	g.Go(func() error {
		allTime, err := s.workouts.AllTimeStats(gCtx, userID)
		if err != nil {
			return fmt.Errorf("all time stats: %w", err)
		}
		data.AllTimeStats = allTime
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if data.RecentWorkouts == nil {
		data.RecentWorkouts = []workouts.Workout{}
	}

	return &data, nil
}
