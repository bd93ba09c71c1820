package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	List(ctx context.Context, userID string, limit, offset int) ([]Workout, error)
	Get(ctx context.Context, userID string, id int) (*Workout, []ExerciseDetail, error)
	Create(ctx context.Context, userID string, workout Workout) (*Workout, error)
	Update(ctx context.Context, userID string, id int, patch UpdatePatch) (*Workout, error)
	Delete(ctx context.Context, userID string, id int) error
}

type ListResponse struct {
	Workouts []Workout `json:"workouts"`
}

type WorkoutResponse struct {
	Workout *Workout `json:"workout"`
}

type GetResponse struct {
	Workout   *Workout         `json:"workout"`
	Exercises []ExerciseDetail `json:"exercises"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	limit := intQueryParam(r, "limit", DefaultListLimit)
	offset := intQueryParam(r, "offset", DefaultListOffset)

	workouts, err := handler.repo.List(ctx, user.ID, limit, offset)
	if err != nil {
		log.Errorf("list workouts for [%s]: %s", user.Username, err)
		http.Error(w, "failed to list workouts", http.StatusInternalServerError)
		return
	}
	if workouts == nil {
		workouts = []Workout{}
	}

	writeJSON(w, ListResponse{Workouts: workouts})
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	workout, exercises, err := handler.repo.Get(ctx, user.ID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("get workout [%d] for [%s]: %s", id, user.Username, err)
		http.Error(w, "failed to get workout", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []ExerciseDetail{}
	}

	writeJSON(w, GetResponse{Workout: workout, Exercises: exercises})
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.create")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.ExerciseName == "" || workout.Sets <= 0 || workout.Reps <= 0 || workout.Duration <= 0 {
		http.Error(w, "Exercise name, sets, reps, and duration are required", http.StatusBadRequest)
		return
	}

	created, err := handler.repo.Create(ctx, user.ID, workout)
	if err != nil {
		log.Errorf("create workout [%s] for [%s]: %s", workout.ExerciseName, user.Username, err)
		http.Error(w, "failed to add workout", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterWorkoutsLogged.Inc()
	}

	log.Tracef("new workout [%d] logged by [%s]", created.ID, user.Username)
	writeJSON(w, WorkoutResponse{Workout: created})
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	var patch UpdatePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Tracef("update workout, unmarshal json params: %s", err)
		http.Error(w, "update workout failed", http.StatusBadRequest)
		return
	}

	if patch.IsEmpty() {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	updated, err := handler.repo.Update(ctx, user.ID, id, patch)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("update workout [%d] for [%s]: %s", id, user.Username, err)
		http.Error(w, "failed to update workout", http.StatusInternalServerError)
		return
	}

	writeJSON(w, WorkoutResponse{Workout: updated})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	id, err := workoutID(r)
	if err != nil {
		http.Error(w, "invalid workout id", http.StatusBadRequest)
		return
	}

	err = handler.repo.Delete(ctx, user.ID, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "Workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("delete workout [%d] for [%s]: %s", id, user.Username, err)
		http.Error(w, "failed to delete workout", http.StatusInternalServerError)
		return
	}

	writeJSON(w, DeleteResponse{Message: "Workout deleted successfully"})
}

func workoutID(r *http.Request) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars["id"])
}

func intQueryParam(r *http.Request, name string, defaultVal int) int {
	val, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return defaultVal
	}
	return val
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
