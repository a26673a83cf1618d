// Package api provides HTTP handlers for the visual journal API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/dear-data/vjournal/internal/config"
	"github.com/dear-data/vjournal/internal/interpret"
	"github.com/go-playground/validator/v10"
)

// Handler provides common handler utilities.
type Handler struct {
	interp   interpret.Interpreter
	cfg      *config.Config
	validate *validator.Validate
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(interp interpret.Interpreter, cfg *config.Config) *Handler {
	return &Handler{
		interp:   interp,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
