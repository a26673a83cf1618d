package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
	"github.com/dear-data/vjournal/internal/interpret"
	"github.com/dear-data/vjournal/internal/render"
	"github.com/dear-data/vjournal/internal/schema"
	"github.com/dear-data/vjournal/internal/tabular"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	maxRequestBody = 256 << 10 // generous for a journal entry plus a small CSV

	// Only a trimmed CSV preview ever reaches the language model.
	promptCSVRows = 40
	promptCSVCols = 10
)

// VisualRequest is the payload for POST /api/visual. The CSV text is read by
// the browser and sent alongside the entry.
type VisualRequest struct {
	Text     string `json:"text" validate:"max=20000"`
	Mode     string `json:"mode" validate:"omitempty,oneof=auto week stress dream attendance stats"`
	TableCSV string `json:"table_csv" validate:"max=102400"`
}

// VisualResponse is the generated scene plus everything the frontend shows
// around it.
type VisualResponse struct {
	SceneID        string                `json:"scene_id"`
	Summary        string                `json:"summary"`
	LLMUsed        bool                  `json:"llm_used"`
	Interpretation domain.Interpretation `json:"interpretation"`
	Scene          domain.Scene          `json:"scene"`
	PaperScript    string                `json:"paperscript"`
	HTML           string                `json:"html"`
}

// VisualHandler handles scene generation endpoints.
type VisualHandler struct {
	*Handler
}

// NewVisualHandler creates a new visual handler.
func NewVisualHandler(base *Handler) *VisualHandler {
	return &VisualHandler{Handler: base}
}

// RegisterRoutes registers the visual journal routes.
func (h *VisualHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/visual", h.Generate)
		r.Get("/config", h.GetConfig)
	})
}

// GetConfig returns the server configuration for the frontend.
func (h *VisualHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"llm_enabled": h.cfg.LLMEnabled(),
		"model":       h.cfg.Gemini.Model,
	})
}

// Generate runs the whole pipeline for one journal entry: interpret (with
// deterministic fallback), build the scene schema, render PaperScript and the
// final canvas page.
func (h *VisualHandler) Generate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req VisualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		slog.Warn("Rejected visual request", "error", err)
		Error(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	req.TableCSV = strings.TrimSpace(req.TableCSV)
	if req.Text == "" && req.TableCSV == "" {
		Error(w, http.StatusBadRequest, "please write something or upload a CSV")
		return
	}

	mode := domain.Mode(req.Mode)
	if mode == "" {
		mode = domain.ModeAuto
	}

	// A broken CSV is not fatal: warn and carry on with the text alone. The
	// prompt and the schema builder both see the same trimmed preview.
	var table *tabular.Table
	trimmedCSV := ""
	if req.TableCSV != "" {
		t, err := tabular.Parse(req.TableCSV)
		if err != nil {
			slog.Warn("Could not read uploaded CSV, continuing without it", "error", err)
		} else {
			table = t.Limit(promptCSVRows, promptCSVCols)
			trimmedCSV = table.Trim(promptCSVRows, promptCSVCols)
		}
	}

	interpReq := interpret.Request{
		Text:     req.Text,
		TableCSV: trimmedCSV,
		Mode:     mode,
	}

	llmUsed := true
	interpretation, err := h.interp.Interpret(r.Context(), interpReq)
	if err != nil {
		slog.Warn("Language model unavailable, using deterministic interpretation", "error", err)
		fallback := domain.FallbackInterpretation()
		interpretation = &fallback
		llmUsed = false
	}

	scene := schema.Generate(schema.Input{
		RawText: req.Text,
		Table:   table,
		LLM:     *interpretation,
		Forced:  mode,
	})

	paperscript := render.Select(scene)
	html, err := render.Page(scene)
	if err != nil {
		slog.Error("Failed to build canvas page", "error", err)
		Error(w, http.StatusInternalServerError, "failed to build canvas page")
		return
	}

	sceneID := uuid.NewString()
	slog.Info("Scene generated", "scene_id", sceneID, "mode", scene.Mode, "standard", scene.VisualStandard, "llm_used", llmUsed)

	JSON(w, http.StatusOK, VisualResponse{
		SceneID:        sceneID,
		Summary:        interpretation.Summary,
		LLMUsed:        llmUsed,
		Interpretation: *interpretation,
		Scene:          scene,
		PaperScript:    paperscript,
		HTML:           html,
	})
}
