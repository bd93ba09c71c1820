package exercises

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesLister interface {
	List(ctx context.Context, filters Filters) ([]Exercise, error)
}

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
}

type Handler struct {
	lister exercisesLister
}

func NewHandler(lister exercisesLister) *Handler {
	return &Handler{
		lister: lister,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	if _, ok := auth.UserFrom(ctx); !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	query := r.URL.Query()
	filters := Filters{
		Category:    query.Get("category"),
		MuscleGroup: query.Get("muscle_group"),
		Search:      query.Get("search"),
	}

	exercises, err := handler.lister.List(ctx, filters)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	respJson, err := json.Marshal(ListResponse{Exercises: exercises})
	if err != nil {
		log.Errorf("failed to marshal exercises response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
