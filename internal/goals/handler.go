package goals

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=goals_mocks_test.go -package=goals_test

type goalsRepo interface {
	List(ctx context.Context, userID, status string) ([]Goal, error)
	Create(ctx context.Context, userID string, goal Goal) (*Goal, error)
}

type ListResponse struct {
	Goals []Goal `json:"goals"`
}

type GoalResponse struct {
	Goal *Goal `json:"goal"`
}

type Handler struct {
	repo           goalsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo goalsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.list")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	status := r.URL.Query().Get("status")

	goals, err := handler.repo.List(ctx, user.ID, status)
	if err != nil {
		log.Errorf("list goals for [%s]: %s", user.Username, err)
		http.Error(w, "failed to list goals", http.StatusInternalServerError)
		return
	}
	if goals == nil {
		goals = []Goal{}
	}

	writeJSON(w, ListResponse{Goals: goals})
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.create")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.Title == "" || goal.TargetType == "" {
		http.Error(w, "Title and target type are required", http.StatusBadRequest)
		return
	}

	created, err := handler.repo.Create(ctx, user.ID, goal)
	if err != nil {
		log.Errorf("create goal [%s] for [%s]: %s", goal.Title, user.Username, err)
		http.Error(w, "failed to add goal", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterGoalsCreated.Inc()
	}

	log.Tracef("new goal [%d] created by [%s]", created.ID, user.Username)
	writeJSON(w, GoalResponse{Goal: created})
}

func writeJSON(w http.ResponseWriter, payload any) {
	respJson, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
