// Package server exposes a language catalog over a read-only HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	tvdberrors "github.com/matzehuels/tvdb/pkg/errors"
	"github.com/matzehuels/tvdb/pkg/integrations"
	"github.com/matzehuels/tvdb/pkg/languages"
)

// Catalog is the read side of languages.Catalog used by the handlers.
type Catalog interface {
	All(ctx context.Context) ([]languages.Record, error)
	Language(ctx context.Context, id int) (languages.Record, error)
}

// New creates an HTTP server serving catalog on addr.
//
// Only GET routes are registered, so PUT, POST and DELETE on the language
// paths answer 405.
func New(addr string, catalog Catalog, logger *log.Logger) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      Routes(catalog, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Routes builds the router. Exposed separately for use with httptest.
func Routes(catalog Catalog, logger *log.Logger) http.Handler {
	h := &handler{catalog: catalog, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", handleHealth)
	r.Route("/languages", func(r chi.Router) {
		r.Get("/", h.handleAll)
		r.Get("/{id}", h.handleOne)
	})
	return r
}

type handler struct {
	catalog Catalog
	logger  *log.Logger
}

func (h *handler) handleAll(w http.ResponseWriter, r *http.Request) {
	records, err := h.catalog.All(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []languages.Record{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *handler) handleOne(w http.ResponseWriter, r *http.Request) {
	id, err := tvdberrors.ParseLanguageID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: tvdberrors.UserMessage(err)})
		return
	}

	record, err := h.catalog.Language(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, record)
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, integrations.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	h.logger.Warn("upstream request failed", "path", r.URL.Path, "status", status, "err", err)
	h.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", "err", err)
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
