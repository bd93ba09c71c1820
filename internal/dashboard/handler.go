package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.get")
	defer span.End()

	user, ok := auth.UserFrom(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	data, err := handler.service.Get(ctx, user.ID)
	if err != nil {
		log.Errorf("get dashboard for [%s]: %s", user.Username, err)
		http.Error(w, "failed to get dashboard", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(data)
	if err != nil {
		log.Errorf("failed to marshal dashboard response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respJson)
}
