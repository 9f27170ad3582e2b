package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wimdy/wimdy/internal/http/handlers"
	"github.com/wimdy/wimdy/internal/http/session"
	"github.com/wimdy/wimdy/internal/repository"
)

// NewRouter assembles the HTTP surface.
func NewRouter(
	repositoryHandler *handlers.RepositoryHandler,
	issueHandler *handlers.IssueHandler,
	pullRequestHandler *handlers.PullRequestHandler,
	feedHandler *handlers.FeedHandler,
	users repository.UserStore,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(session.Middleware(users))

	r.Get("/health-check", handlers.Health)
	r.Get("/", feedHandler.Home)
	r.Get("/dashboard", feedHandler.Dashboard)

	r.Route("/repositories", func(r chi.Router) {
		r.Get("/", repositoryHandler.List)
		r.Post("/", repositoryHandler.Create)

		r.Route("/{slug}", func(r chi.Router) {
			r.Get("/", repositoryHandler.Get)
			r.Put("/", repositoryHandler.Update)
			r.Delete("/", repositoryHandler.Delete)

			r.Route("/issues", func(r chi.Router) {
				r.Get("/", issueHandler.List)
				r.Post("/", issueHandler.Create)
				r.Get("/{id}", issueHandler.Get)
				r.Put("/{id}", issueHandler.Update)
				r.Delete("/{id}", issueHandler.Delete)
			})

			r.Route("/pull-requests", func(r chi.Router) {
				r.Get("/", pullRequestHandler.List)
				r.Post("/", pullRequestHandler.Create)
				r.Get("/{id}", pullRequestHandler.Get)
				r.Put("/{id}", pullRequestHandler.Update)
				r.Delete("/{id}", pullRequestHandler.Delete)
			})
		})
	})

	// Serve Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// requestLogger logs one line per request with status and duration.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
