// Package system serves the operational endpoints: root status page,
// liveness and readiness probes.
package system

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/quoinhq/quoin/internal/platform/db"
	"github.com/quoinhq/quoin/internal/platform/httpx"
	"github.com/quoinhq/quoin/web"
)

// Pinger reports whether persistence is currently reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type providerPinger struct {
	provider *db.Provider
}

// NewPinger builds a Pinger that checks out a session and runs a trivial
// query against it.
func NewPinger(provider *db.Provider) Pinger {
	return providerPinger{provider: provider}
}

func (p providerPinger) Ping(ctx context.Context) error {
	conn, err := p.provider.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	_, err = conn.Exec(ctx, "SELECT 1")
	return err
}

// Handler serves the system routes.
type Handler struct {
	logger *slog.Logger
	pinger Pinger
	tmpl   *template.Template
}

// NewHandler constructs a Handler, parsing the embedded status page template.
func NewHandler(logger *slog.Logger, pinger Pinger) (*Handler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/index.html")
	if err != nil {
		return nil, err
	}
	return &Handler{logger: logger, pinger: pinger, tmpl: tmpl}, nil
}

// MountRoutes registers system routes at the router root.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.root)
	r.Get("/health", h.health)
	r.Get("/ready", h.ready)
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Message":       "All Systems Operational",
		"AppName":       AppName,
		"AppVersion":    Version,
		"Description":   Description,
		"RepositoryURL": RepositoryURL,
		"Year":          time.Now().UTC().Year(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		h.logger.Error("render status page", slog.Any("error", err))
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ready catches every failure kind, not just domain errors: persistence
// trouble here is infrastructural and always maps to 503.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Warn("readiness probe", slog.Any("error", err))
		httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"detail": "Database connection failed"})
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
