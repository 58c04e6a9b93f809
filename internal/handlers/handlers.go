package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/internal/store"
)

// Handler carries the dependencies shared by every HTTP handler.
type Handler struct {
	Store store.Store
	// StrictPagination turns out-of-range page parameters into a 400
	// instead of clamping them.
	StrictPagination bool
}

func New(st store.Store, strictPagination bool) *Handler {
	return &Handler{Store: st, StrictPagination: strictPagination}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondText(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}

var errInvalidPagination = errors.New("page must be >= 1 and page_size between 1 and 100")

// paginationQuery reads page/page_size from the query string. Missing values
// get defaults; out-of-range values are clamped, or rejected in strict mode.
func (h *Handler) paginationQuery(r *http.Request) (models.PaginationQuery, error) {
	values := r.URL.Query()
	query := models.PaginationQuery{Page: models.DefaultPage, PageSize: models.DefaultPageSize}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err == nil {
			query.Page = page
		} else if h.StrictPagination {
			return query, errInvalidPagination
		}
	}
	if raw := values.Get("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err == nil {
			query.PageSize = pageSize
		} else if h.StrictPagination {
			return query, errInvalidPagination
		}
	}

	if h.StrictPagination && query != query.Sanitize() {
		return query, errInvalidPagination
	}
	return query.Sanitize(), nil
}

// recordUsage bumps the caller's counter for the matched route and persists
// it best-effort; the response outcome never depends on this write.
func (h *Handler) recordUsage(r *http.Request, user *models.User) {
	pattern := r.URL.Path
	if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
		pattern = rctx.RoutePattern()
	}
	user.UseEndpoint(r.Method, pattern)
	if err := h.Store.SaveUser(r.Context(), user); err != nil {
		log.Printf("failed to record endpoint usage for %s: %v", user.Name, err)
	}
}
