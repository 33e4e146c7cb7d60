// Package api exposes EduWiki over a JSON HTTP API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/eduwiki/eduwiki/internal/app"
	"github.com/eduwiki/eduwiki/internal/config"
	"github.com/eduwiki/eduwiki/internal/session"
)

// Server represents the HTTP API server
type Server struct {
	config   config.ServerConfig
	router   *chi.Mux
	svc      *app.Services
	sessions *session.Registry
	logger   *slog.Logger
}

// NewServer creates a new API server
func NewServer(cfg config.ServerConfig, svc *app.Services, sessions *session.Registry) *Server {
	logger := svc.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		config:   cfg,
		svc:      svc,
		sessions: sessions,
		logger:   logger,
	}
	s.setupRouter()
	return s
}

// Router returns the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// HTTPServer returns an http.Server for addr with the configured timeouts.
func (s *Server) HTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

func (s *Server) setupRouter() {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	origins := s.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/topics", func(r chi.Router) {
			r.Get("/", s.handleListTopics)
			r.Get("/featured", s.handleFeaturedTopics)
		})
		r.Get("/search", s.handleSearch)
		r.Get("/content/{topic}", s.handleContent)
		r.Get("/summary/{topic}", s.handleSummary)
		r.Get("/languages", s.handleLanguages)
		r.Get("/i18n/{lang}", s.handleStrings)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetSession)
				r.Delete("/", s.handleDeleteSession)
				r.Put("/topic", s.handleSelectTopic)
				r.Put("/language", s.handleSetLanguage)
				r.Post("/bookmarks", s.handleBookmark)
				r.Post("/complete", s.handleComplete)
				r.Post("/quiz", s.handleStartQuiz)
				r.Post("/quiz/submit", s.handleSubmitQuiz)
			})
		})
	})

	s.router = r
}
