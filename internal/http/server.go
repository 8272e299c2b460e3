// Package http exposes the ledger over a small JSON API. Handlers are
// thin: intents go into the store, derived views come out of the query
// and report engines, and the view package shapes the response.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"tally/internal/ledger"
	"tally/internal/report"
	"tally/internal/view"
)

type Server struct {
	http.Server
	store *ledger.Store

	// Memoized summary per store revision. Any mutation bumps the
	// revision, so a stale entry is simply never hit again.
	summaryMu  sync.Mutex
	summaryRev int64
	summary    view.Summary
	summaryOK  bool
}

// NewServer configures routes, returning a ready-to-run http.Server.
func NewServer(addr string, store *ledger.Store) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store: store,
	}

	mux.HandleFunc("/transactions", s.withRequestLog(s.handleTransactions))
	mux.HandleFunc("/transactions/clear", s.withRequestLog(s.handleClearAll))
	mux.HandleFunc("/summary", s.withRequestLog(s.handleSummary))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	return s
}

// summaryView recomputes totals and breakdown from the full store,
// reusing the previous result while the store revision is unchanged.
// The observable contract stays "recompute reflects full current
// store": the revision changes on every mutation.
func (s *Server) summaryView() view.Summary {
	rev := s.store.Revision()

	s.summaryMu.Lock()
	if s.summaryOK && s.summaryRev == rev {
		cached := s.summary
		s.summaryMu.Unlock()
		return cached
	}
	s.summaryMu.Unlock()

	records := s.store.Records()
	sum := view.BuildSummary(report.ComputeTotals(records), report.ComputeBreakdown(records))

	s.summaryMu.Lock()
	s.summaryRev = rev
	s.summary = sum
	s.summaryOK = true
	s.summaryMu.Unlock()

	return sum
}

type contextKey string

const requestIDKey contextKey = "request_id"

// withRequestLog adds request ids, response headers, and start/finish
// logging around a handler.
func (s *Server) withRequestLog(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := r.Header.Get("X-Forwarded-For")
		if clientIP == "" {
			clientIP = r.RemoteAddr
		}

		requestID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "Request started",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"client_ip", clientIP)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
