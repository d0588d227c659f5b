package server

import (
	"net/http"

	"github.com/budgetbrew/budgetbrew-server/internal/catalog"
	"github.com/budgetbrew/budgetbrew-server/internal/config"
	"github.com/budgetbrew/budgetbrew-server/internal/handlers"
	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// New creates a fully-configured chi router with the static host, the API
// route groups and middleware wired together.
func New(cfg *config.Config, store *catalog.Store, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	// ── Middleware ───────────────────────────────────────────
	r.Use(requestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.GetHead)

	// ── Handlers ────────────────────────────────────────────
	staticH := handlers.NewStaticHandler(cfg)
	errorsH := handlers.NewErrorsHandler(logger)
	usersH := handlers.NewUsersHandler(store, logger)
	quizH := handlers.NewQuizHandler(store, logger)
	systemH := handlers.NewSystemHandler(store, logger)

	// ── Routes ──────────────────────────────────────────────
	staticH.Routes(r)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.StripSlashes)
		r.Use(limitBody)
		r.NotFound(errorsH.NotFound)
		r.MethodNotAllowed(errorsH.MethodNotAllowed)

		usersH.Routes(r)
		r.Route("/quiz", quizH.Routes)
		r.Route("/system", systemH.Routes)
	})

	// Anything unclaimed is looked up in the public directory.
	r.NotFound(staticH.ServeAsset)

	return r
}
