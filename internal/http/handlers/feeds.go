package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wimdy/wimdy/internal/http/session"
	"github.com/wimdy/wimdy/internal/usecases"
	"github.com/wimdy/wimdy/pkg/response"
)

// FeedHandler serves the public home feed and the signed-in dashboard.
type FeedHandler struct {
	feedUsecase usecases.FeedUsecase
}

// NewFeedHandler initializes a new FeedHandler.
func NewFeedHandler(feedUsecase usecases.FeedUsecase) *FeedHandler {
	return &FeedHandler{feedUsecase: feedUsecase}
}

func (h *FeedHandler) Home(w http.ResponseWriter, r *http.Request) {
	view, err := h.feedUsecase.Home(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, view)
}

func (h *FeedHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())

	view, err := h.feedUsecase.Dashboard(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, view)
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
