package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/prompter/internal/remote"
	"github.com/ziadkadry99/prompter/internal/settings"
	"github.com/ziadkadry99/prompter/internal/share"
)

// Config holds server configuration.
type Config struct {
	Port     int
	BaseURL  string // prefix for share links
	AllowAll bool   // allow all CORS origins (dev mode)

	// Favicon defaults.
	Theme  settings.Theme
	Accent settings.Accent
}

// Server serves shared scripts, remote-control sessions and the favicon.
type Server struct {
	cfg        Config
	shares     *share.Store
	hub        *remote.Hub
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. shares may be nil to disable sharing.
func New(cfg Config, shares *share.Store, hub *remote.Hub) *Server {
	s := &Server{
		cfg:    cfg,
		shares: shares,
		hub:    hub,
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Long-lived WebSocket sessions stay outside the request timeout.
	if s.hub != nil {
		remote.RegisterRoutes(r, s.hub)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Get("/healthz", s.handleHealth)
		settings.RegisterRoutes(r, s.cfg.Theme, s.cfg.Accent)
		if s.shares != nil {
			share.RegisterRoutes(r, s.shares, s.cfg.BaseURL)
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sessions := 0
	if s.hub != nil {
		sessions = s.hub.Sessions()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, sessions)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("prompter server listening", "addr", addr, "base_url", s.cfg.BaseURL)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and its sessions.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
