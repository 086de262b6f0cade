// Package httpserver exposes the boolean job search over HTTP.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/sumble/jobsearch/httperror"
	"github.com/sumble/jobsearch/logging"
	"github.com/sumble/jobsearch/search"
	"github.com/sumble/jobsearch/src/query"
)

// SearchService runs a validated query tree and returns matching posts.
// *search.Searcher implements it; tests substitute stubs.
type SearchService interface {
	Search(ctx context.Context, tree query.Node, limit int) ([]search.JobPost, error)
}

// Pinger reports database connectivity for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server routes search requests to a SearchService.
type Server struct {
	searcher SearchService
	pinger   Pinger
	logger   *slog.Logger
	metrics  *Metrics
	mux      *http.ServeMux
}

// New creates a Server. pinger may be nil, in which case the health endpoint
// reports liveness only.
func New(searcher SearchService, pinger Pinger, logger *slog.Logger) *Server {
	s := &Server{
		searcher: searcher,
		pinger:   pinger,
		logger:   logger,
		metrics:  NewMetrics(),
		mux:      http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /jobs/search", s.handleSearch)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.Handle("GET /metrics", s.metrics.Handler())

	return s
}

// Handler returns the server's handler chain with request logging applied.
// Health and metrics probes are kept out of the request log.
func (s *Server) Handler() http.Handler {
	return logging.Decorate([]string{"/health", "/metrics"}, s.logger, s.mux)
}

// searchResponse is the wire shape of a successful search.
type searchResponse struct {
	Status string           `json:"status"`
	Count  int              `json:"count"`
	Jobs   []search.JobPost `json:"jobs"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, httperror.BadRequestf("invalid limit %q", raw))
			s.metrics.observeSearch("client_error", start, 0)
			return
		}
		limit = n
	}

	tree, err := query.Decode(r.Body)
	if err != nil {
		s.writeError(w, httperror.BadRequest(err.Error()))
		s.metrics.observeSearch("client_error", start, 0)
		return
	}

	posts, err := s.searcher.Search(r.Context(), tree, limit)
	if err != nil {
		herr := s.mapSearchError(err)
		s.writeError(w, herr)
		status := "server_error"
		if herr.Code() < 500 {
			status = "client_error"
		}
		s.metrics.observeSearch(status, start, 0)
		return
	}

	if posts == nil {
		posts = []search.JobPost{}
	}
	s.writeJSON(w, http.StatusOK, searchResponse{
		Status: "success",
		Count:  len(posts),
		Jobs:   posts,
	})
	s.metrics.observeSearch("success", start, len(posts))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.pinger != nil {
		if err := s.pinger.Ping(r.Context()); err != nil {
			s.logger.Error("health check failed", "error", err)
			s.writeError(w, httperror.ServiceUnavailable("database unreachable"))
			return
		}
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// mapSearchError translates service errors into HTTP errors. Parse already
// rejected malformed input, so a malformed error here means a caller built a
// bad tree in code; it is still the caller's fault.
func (s *Server) mapSearchError(err error) *httperror.Error {
	if errors.Is(err, query.ErrMalformed) {
		return httperror.BadRequest(err.Error())
	}
	// CompilerFault and execution failures carry internals; log them, return
	// a generic message.
	s.logger.Error("search failed", "error", err)
	return httperror.InternalWrap(err)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, herr *httperror.Error) {
	s.writeJSON(w, herr.Code(), errorResponse{Status: "error", Error: herr.Message()})
}
