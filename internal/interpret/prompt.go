package interpret

import (
	"fmt"
	"strings"
)

// DefaultPersona is the prompt preamble used when no persona file is
// configured. Operators can replace it via PERSONA_PATH.
const DefaultPersona = `You are a warm, observant journaling companion who reads
life data the way the Dear Data project did: as small human stories worth
drawing by hand.`

// BuildPrompt generates the full instruction for the semantic interpretation
// call. The model interprets only — schema and PaperScript are built locally.
func BuildPrompt(persona string, req Request) string {
	var b strings.Builder

	if persona == "" {
		persona = DefaultPersona
	}
	b.WriteString(strings.TrimSpace(persona))
	b.WriteString("\n\n")

	b.WriteString(`------------------------------------------------------------
YOU ARE A DATA HUMANISM INTERPRETATION ENGINE (DEAR DATA STYLE)
------------------------------------------------------------

Your job:
 - Interpret the user's text as a meaningful human narrative.
 - Detect emotion, mood, tone, energy, rhythms, and story arcs.
 - Identify what KIND of journal entry this is (week / stress / dream / attendance / stats).
 - Extract keywords for color theory, symbols, imagery, textures.
 - DO NOT create schema.
 - DO NOT create PaperScript.
 - DO NOT format visuals.
 - ONLY give interpretation, not drawing.

------------------------------------------------------------
INPUT
------------------------------------------------------------

`)

	tableBlock := strings.TrimSpace(req.TableCSV)
	if tableBlock == "" {
		tableBlock = "[no_table]"
	}

	fmt.Fprintf(&b, "user_text:\n\"\"\"%s\"\"\"\n\n", req.Text)
	fmt.Fprintf(&b, "table_csv (optional):\n\"\"\"%s\"\"\"\n\n", tableBlock)
	fmt.Fprintf(&b, "user_selected_mode (may be 'auto'):\n%s\n\n", req.Mode)

	b.WriteString(`------------------------------------------------------------
OUTPUT FORMAT (STRICT JSON)
------------------------------------------------------------

{
  "summary": "1-paragraph natural-language interpretation",
  "journal_type": "week | stress | dream | attendance | stats",
  "emotion_keywords": ["calm", "stress", "joy", "tired"],
  "color_keywords": ["sage green", "deep blue", "blush pink"],
  "imagery": ["waves", "clouds", "floating circles"],
  "energy_score": 0-5,
  "story_intensity": 0-5,
  "symbol_hints": ["leaves", "stars", "dots", "spirals"]
}

* The JSON MUST be valid.
* DO NOT add ANY text before or after the JSON.
* DO NOT wrap with backticks.`)

	return b.String()
}
