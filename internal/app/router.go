package app

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/quoinhq/quoin/internal/observability"
	"github.com/quoinhq/quoin/internal/system"
	"github.com/quoinhq/quoin/internal/users"
	"github.com/quoinhq/quoin/web"
)

// apiPrefix is the deployment-time version prefix for collection routes.
// System routes stay at the root.
const apiPrefix = "/api/v1"

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger        *slog.Logger
	Config        *Config
	SystemHandler *system.Handler
	UsersHandler  *users.Handler
	Metrics       *observability.Metrics
}

// NewRouter constructs the chi.Router with Quoin defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	params.SystemHandler.MountRoutes(r)

	r.Route(apiPrefix, func(r chi.Router) {
		r.Route("/users", params.UsersHandler.MountRoutes)
		r.Get("/openapi.json", OpenAPIHandler())
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		params.Logger.Error("create static sub filesystem", slog.Any("error", err))
	} else {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(staticFS)))
		r.Handle("/static/*", staticCacheHandler(fileServer))
	}

	return r
}

// staticCacheHandler wraps a file server with Cache-Control headers.
func staticCacheHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
