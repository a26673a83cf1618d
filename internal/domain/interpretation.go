package domain

// Interpretation is the semantic layer returned by the language model.
// It carries meaning only — emotion, color and imagery cues — never drawing
// instructions. The schema builder turns it into a drawable Scene.
type Interpretation struct {
	Summary         string   `json:"summary"`
	JournalType     string   `json:"journal_type"`
	EmotionKeywords []string `json:"emotion_keywords"`
	ColorKeywords   []string `json:"color_keywords"`
	Imagery         []string `json:"imagery"`
	EnergyScore     int      `json:"energy_score"`
	StoryIntensity  int      `json:"story_intensity"`
	SymbolHints     []string `json:"symbol_hints"`
}

// FallbackInterpretation is used when the model is unavailable or returns
// something unusable. The visual pipeline still works from it.
func FallbackInterpretation() Interpretation {
	return Interpretation{
		Summary:         "LLM unavailable — using deterministic interpretation.",
		JournalType:     string(ModeAuto),
		EmotionKeywords: []string{"calm"},
		ColorKeywords:   []string{"blue"},
	}
}
