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

// IssueHandler serves the issue endpoints nested under a repository.
type IssueHandler struct {
	issueUsecase usecases.IssueUsecase
}

// NewIssueHandler initializes a new IssueHandler.
func NewIssueHandler(issueUsecase usecases.IssueUsecase) *IssueHandler {
	return &IssueHandler{issueUsecase: issueUsecase}
}

func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	list, err := h.issueUsecase.List(r.Context(), actor, slug, queryPage(r))
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, list)
}

func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	issue, err := h.issueUsecase.Get(r.Context(), actor, slug, id)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, issue)
}

func (h *IssueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input dtos.CreateIssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	issue, err := h.issueUsecase.Create(r.Context(), actor, slug, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusCreated, issue)
}

func (h *IssueHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var input dtos.UpdateIssueInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.ErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	issue, err := h.issueUsecase.Update(r.Context(), actor, slug, id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, issue)
}

func (h *IssueHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	actor := session.ActorFrom(r.Context())
	slug := chi.URLParam(r, "slug")

	if err := h.issueUsecase.Delete(r.Context(), actor, slug, id); err != nil {
		writeError(w, err)
		return
	}
	response.SuccessResponse(w, http.StatusOK, "issue deleted")
}
