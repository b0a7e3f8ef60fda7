// Package server exposes the tracker core over HTTP. The transport is a
// thin wrapper: it parses parameters, calls the service and maps errors
// to status codes.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/manav03panchal/worklog/internal/config"
	"github.com/manav03panchal/worklog/internal/logging"
	"github.com/manav03panchal/worklog/internal/tracker"
)

// Server is the Worklog HTTP API server.
type Server struct {
	service *tracker.Service
	http    *http.Server
}

// New creates a server over the given service using the global server
// configuration.
func New(service *tracker.Service) *Server {
	s := &Server{service: service}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/entries", s.handleListEntries)
	mux.HandleFunc("POST /api/entries", s.handleCreateEntry)
	mux.HandleFunc("DELETE /api/entries", s.handleBulkDelete)
	mux.HandleFunc("GET /api/entries/{id}", s.handleGetEntry)
	mux.HandleFunc("PUT /api/entries/{id}", s.handleUpdateEntry)
	mux.HandleFunc("DELETE /api/entries/{id}", s.handleDeleteEntry)
	mux.HandleFunc("GET /api/reports/summary", s.handleSummary)
	mux.HandleFunc("GET /api/suggestions/{field}", s.handleSuggestions)
	mux.HandleFunc("GET /api/export/csv", s.handleExportCSV)
	mux.HandleFunc("GET /api/health", s.handleHealth)

	cfg := config.Global.Server
	s.http = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      withRequestLogging(mux),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler returns the root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe runs the server until ctx is cancelled, then drains
// connections within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info("api server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Global.Server.ShutdownTimeout)
	defer cancel()

	logging.Info("api server shutting down")
	return s.http.Shutdown(shutdownCtx)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
