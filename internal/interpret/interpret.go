// Package interpret is the AI boundary of the visual journal: it sends the
// journal entry to a hosted language model and returns a semantic
// Interpretation. It is the only package that makes external calls.
//
// The model never produces drawing instructions. Schema construction and
// PaperScript generation are deterministic and happen elsewhere.
package interpret

import (
	"context"
	"time"

	"github.com/dear-data/vjournal/internal/domain"
)

// Request carries everything the model is allowed to see: the entry text, a
// trimmed CSV preview and the user-selected mode (may be "auto").
type Request struct {
	Text     string
	TableCSV string
	Mode     domain.Mode
}

// Interpreter converts a journal entry into a semantic Interpretation.
// Implementations: Gemini (v1).
type Interpreter interface {
	Interpret(ctx context.Context, req Request) (*domain.Interpretation, error)
}

// Config holds interpreter configuration.
type Config struct {
	APIKey   string        // hosted model API key
	Model    string        // model name (e.g. "gemini-2.5-flash")
	Endpoint string        // API endpoint override (empty = default)
	Persona  string        // optional persona preamble prepended to the prompt
	Timeout  time.Duration // HTTP client timeout (0 = default)
}
