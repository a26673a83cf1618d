package api

import (
	"net/http"

	"github.com/dear-data/vjournal/internal/config"
	"github.com/go-chi/chi/v5"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cfg *config.Config
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health returns the health status of the API. The only dependency is the
// hosted model, and a missing key degrades the interpretation rather than
// the service, so this always reports healthy.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"api": "ok"}
	if h.cfg != nil && h.cfg.LLMEnabled() {
		checks["llm"] = "configured"
	} else {
		checks["llm"] = "disabled"
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"checks": checks,
	})
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
