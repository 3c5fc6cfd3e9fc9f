package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	version string
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, started: time.Now()}
}

// Routes returns the health routes.
func (h *HealthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/", h.Health)
	return r
}

// HealthResponse is the health endpoint payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.started).Round(time.Second).String(),
	})
}
