// Package server implements the HTTP rendering service behind the serve
// command. It exposes one-shot rendering of posted Newick text and a small
// CRUD surface for named trees, with rendered artifacts cached by a
// content-and-parameters hash.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lwoodhull/cladogram/pkg/cache"
	"github.com/lwoodhull/cladogram/pkg/store"
)

// Server holds the service dependencies.
type Server struct {
	store    store.Store
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

// New assembles a server from its backends. A nil cache disables caching
// and a nil logger silences request logging.
func New(st store.Store, c cache.Cache, ttl time.Duration, logger *log.Logger) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{store: st, cache: c, cacheTTL: ttl, logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealthz)
	r.Post("/render", s.handleRender)

	r.Route("/trees", func(r chi.Router) {
		r.Get("/", s.handleTreeList)
		r.Put("/{name}", s.handleTreePut)
		r.Get("/{name}", s.handleTreeGet)
		r.Delete("/{name}", s.handleTreeDelete)
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// requestID tags every request with a UUID, echoed in the response so
// clients can quote it when reporting problems.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).Round(time.Microsecond),
			"request_id", requestIDFromContext(r.Context()),
		)
	})
}

// statusRecorder captures the status code for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
