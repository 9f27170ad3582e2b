package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wimdy/wimdy/internal/http/dtos"
	"github.com/wimdy/wimdy/internal/http/session"
	"github.com/wimdy/wimdy/internal/usecases"
	"github.com/wimdy/wimdy/pkg/response"
)

// PullRequestHandler serves the pull request endpoints nested under a
// repository.
type PullRequestHandler struct {
	pullRequestUsecase usecases.PullRequestUsecase
}

// NewPullRequestHandler initializes a new PullRequestHandler.
func NewPullRequestHandler(pullRequestUsecase usecases.PullRequestUsecase) *PullRequestHandler {
	return &PullRequestHandler{pullRequestUsecase: pullRequestUsecase}
}

func (h *PullRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	list, err := h.pullRequestUsecase.List(r.Context(), actor, slug, queryPage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, list)
}

func (h *PullRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	pr, err := h.pullRequestUsecase.Get(r.Context(), actor, slug, id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, pr)
}

func (h *PullRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.CreatePullRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	pr, err := h.pullRequestUsecase.Create(r.Context(), actor, slug, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, pr)
}

func (h *PullRequestHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input dtos.UpdatePullRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	pr, err := h.pullRequestUsecase.Update(r.Context(), actor, slug, id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, pr)
}

func (h *PullRequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	if err := h.pullRequestUsecase.Delete(r.Context(), actor, slug, id); err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, "pull request deleted")
}
