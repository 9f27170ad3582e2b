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

// RepositoryHandler serves the repository CRUD endpoints.
type RepositoryHandler struct {
	repositoryUsecase usecases.RepositoryUsecase
}

// NewRepositoryHandler initializes a new RepositoryHandler.
func NewRepositoryHandler(repositoryUsecase usecases.RepositoryUsecase) *RepositoryHandler {
	return &RepositoryHandler{repositoryUsecase: repositoryUsecase}
}

func (h *RepositoryHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())

	list, err := h.repositoryUsecase.List(r.Context(), actor, queryPage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, list)
}

func (h *RepositoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	detail, err := h.repositoryUsecase.Get(r.Context(), actor, slug)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, detail)
}

func (h *RepositoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.CreateRepositoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())

	repo, err := h.repositoryUsecase.Create(r.Context(), actor, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, repo)
}

func (h *RepositoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input dtos.UpdateRepositoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	repo, err := h.repositoryUsecase.Update(r.Context(), actor, slug, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, repo)
}

func (h *RepositoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	if err := h.repositoryUsecase.Delete(r.Context(), actor, slug); err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, "repository deleted")
}
