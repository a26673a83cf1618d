package interpret

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// requiredFields must all be present in the model's JSON output. The model is
// told to emit exactly these; anything missing means the response is unusable
// and the caller should fall back.
var requiredFields = []string{
	"summary",
	"journal_type",
	"emotion_keywords",
	"color_keywords",
	"imagery",
	"energy_score",
	"story_intensity",
	"symbol_hints",
}

// ParseInterpretation extracts an Interpretation from the model's raw text
// response. It tolerates markdown fences and stray prose around the JSON.
func ParseInterpretation(raw string) (*domain.Interpretation, error) {
	cleaned := stripFences(raw)
	cleaned = extractObject(cleaned)

	// Check field presence first: a struct unmarshal cannot distinguish a
	// missing field from a legitimate zero value.
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &keys); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w (response: %.200s)", err, cleaned)
	}
	for _, f := range requiredFields {
		if _, ok := keys[f]; !ok {
			return nil, fmt.Errorf("missing field %q in model output", f)
		}
	}

	var interp domain.Interpretation
	if err := json.Unmarshal([]byte(cleaned), &interp); err != nil {
		return nil, fmt.Errorf("decode interpretation: %w", err)
	}

	interp.EnergyScore = clamp(interp.EnergyScore, 0, 5)
	interp.StoryIntensity = clamp(interp.StoryIntensity, 0, 5)

	return &interp, nil
}

// stripFences removes a leading/trailing markdown code fence, if present.
func stripFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	parts := strings.Split(t, "```")
	if len(parts) >= 2 {
		inner := strings.TrimSpace(parts[1])
		inner = strings.TrimPrefix(inner, "json")
		return strings.TrimSpace(inner)
	}
	return t
}

// extractObject narrows the text to the first {...} block.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}
	return text
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
