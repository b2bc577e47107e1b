// Package api exposes the generation pipeline over a localhost HTTP API:
// prototype generation, PRD document rendering, the template catalog, and a
// websocket progress stream for running jobs.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/prdhouse/prdhouse/internal/app"
	"github.com/prdhouse/prdhouse/internal/config"
)

// Server represents the API server.
type Server struct {
	config            *config.Config
	app               *app.App
	upgrader          websocket.Upgrader
	connectionManager *ConnectionManager
	httpServer        *http.Server
	logger            *log.Logger
}

// NewServer creates a new API server around an assembled application.
func NewServer(cfg *config.Config, application *app.App) *Server {
	return &Server{
		config:            cfg,
		app:               application,
		connectionManager: NewConnectionManager(),
		logger:            log.WithPrefix("api"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// browser pages from anywhere must not drive generations
				return isLocalhostOrigin(r)
			},
		},
	}
}

// isLocalhostOrigin checks if the request origin is localhost. Requests
// without an Origin header (curl, native clients) are allowed.
func isLocalhostOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return strings.HasPrefix(origin, "http://localhost:") ||
		strings.HasPrefix(origin, "http://127.0.0.1:") ||
		strings.HasPrefix(origin, "http://[::1]:")
}

// Start runs the HTTP server until Stop is called or the listener fails.
func (s *Server) Start() error {
	router := s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("starting API server", "addr", addr)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: router,
	}
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.corsMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	api.HandleFunc("/prototype/generate", s.handleGenerate).Methods("POST")
	api.HandleFunc("/prd/document", s.handleDocument).Methods("POST")

	api.HandleFunc("/templates", s.handleTemplates).Methods("GET")
	api.HandleFunc("/templates/stats", s.handleTemplateStats).Methods("GET")

	api.HandleFunc("/ws/progress/{jobId}", s.handleProgressWebSocket)
	api.HandleFunc("/websocket/stats", s.handleWebSocketStats).Methods("GET")

	return router
}

// corsMiddleware adds CORS headers, restricted to localhost origins.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allow := ""
		if origin == "" || isLocalhostOrigin(r) {
			allow = origin
		}
		if allow == "" {
			allow = fmt.Sprintf("http://localhost:%d", s.config.Server.Port)
		}
		w.Header().Set("Access-Control-Allow-Origin", allow)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Response helpers.
func (s *Server) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (s *Server) writeError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
