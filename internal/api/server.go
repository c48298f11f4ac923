// Package api exposes the diagram, Hess and practice computations as a
// small JSON API.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/thermoviz/internal/logger"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Version string
	Log     *logger.Logger
}

// NewServer creates a Server logging through log; nil uses the default logger.
func NewServer(version string, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	return &Server{Version: version, Log: log.WithPrefix("api")}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/reaction-path", s.handleReactionPath)
		r.Get("/samples", s.handleSamples)

		r.Route("/hess", func(r chi.Router) {
			r.Get("/examples", s.handleHessExamples)
			r.Get("/examples/{id}", s.handleHessExample)
			r.Post("/path", s.handleHessPath)
			r.Post("/check", s.handleHessCheck)
			r.Post("/reverse", s.handleHessReverse)
		})

		r.Get("/heating", s.handleHeating)
		r.Get("/fundamentals", s.handleFundamentals)

		r.Route("/practice", func(r chi.Router) {
			r.Get("/problems", s.handleProblems)
			r.Post("/{id}/grade", s.handleGrade)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		handleError(w, r, errNotFoundRoute(r.URL.Path))
	})
	return r
}
