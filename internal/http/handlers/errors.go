package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wimdy/wimdy/pkg/errcodes"
	"github.com/wimdy/wimdy/pkg/response"
)

// writeError maps usecase errors onto HTTP statuses. Not-found and
// unauthorized stay distinct, and validation failures carry their fields.
func writeError(w http.ResponseWriter, err error) {
	if verr, ok := errcodes.AsValidation(err); ok {
		response.ValidationResponse(w, http.StatusUnprocessableEntity, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, errcodes.ErrNotFound):
		response.ErrorResponse(w, http.StatusNotFound, "not found")
	case errors.Is(err, errcodes.ErrUnauthenticated):
		response.ErrorResponse(w, http.StatusUnauthorized, "authentication required")
	case errors.Is(err, errcodes.ErrUnauthorized):
		response.ErrorResponse(w, http.StatusForbidden, "unauthorized")
	default:
		response.ErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

// queryPage reads the ?page= parameter, defaulting to the first page.
func queryPage(r *http.Request) int {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	return page
}

// pathID reads a numeric id path parameter.
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, name), 10, 32)
	if err != nil {
		return 0, errcodes.ErrNotFound
	}
	return uint(id), nil
}
