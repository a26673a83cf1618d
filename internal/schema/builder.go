// Package schema builds the drawable Scene from a journal entry. It is fully
// deterministic: the language model contributes cues (via the Interpretation)
// but every number that reaches the canvas is computed here.
package schema

import (
	"regexp"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
	"github.com/dear-data/vjournal/internal/tabular"
)

// Input collects everything the builder works from.
type Input struct {
	RawText string
	Table   *tabular.Table // nil when no CSV was uploaded
	LLM     domain.Interpretation
	Forced  domain.Mode // may be ModeAuto
}

const rawTextExcerptLen = 500

// Generate builds the Scene for the given input. It decides the mode
// (forced or auto-detected), maps it to a visual standard and fills the
// per-mode dimensions.
func Generate(in Input) domain.Scene {
	mode := in.Forced
	if mode == domain.ModeAuto || !mode.Valid() {
		mode = detectMode(in)
	}

	var dims domain.Dimensions
	switch mode {
	case domain.ModeWeek:
		dims.Days = buildWeekDays(in.RawText, in.LLM)
	case domain.ModeStress:
		dims.Timeline = buildStressTimeline(in.RawText, in.LLM)
	case domain.ModeDream:
		dims.Clusters = buildDreamClusters(in.RawText, in.LLM)
	case domain.ModeAttendance:
		dims.Rows = buildAttendanceRows(in.Table)
	default:
		dims.Categories = buildStatsCategories(in.Table)
	}

	excerpt := truncateRunes(in.RawText, rawTextExcerptLen)

	return domain.Scene{
		Mode:           mode,
		VisualStandard: mode.VisualStandard(),
		Dimensions:     dims,
		LLM:            in.LLM,
		RawText:        excerpt,
	}
}

var digitPattern = regexp.MustCompile(`\d`)

// detectMode decides the journal mode when the user picked auto.
func detectMode(in Input) domain.Mode {
	// A CSV strongly suggests attendance or stats.
	if in.Table != nil && !in.Table.IsEmpty() {
		sample := strings.ToLower(in.Table.Trim(40, 10))
		if strings.Contains(sample, "present") || strings.Contains(sample, "absent") || strings.Contains(sample, "attend") {
			return domain.ModeAttendance
		}
		if digitPattern.MatchString(sample) {
			return domain.ModeStats
		}
	}

	// The model may have classified the entry already.
	if jt := domain.Mode(strings.ToLower(in.LLM.JournalType)); jt.Valid() {
		return jt
	}

	t := strings.ToLower(in.RawText)

	for _, w := range []string{"dream", "night", "floating", "strange", "vision"} {
		if strings.Contains(t, w) {
			return domain.ModeDream
		}
	}

	for _, w := range []string{"anxious", "stress", "tired", "burnout", "worry"} {
		if strings.Contains(t, w) {
			return domain.ModeStress
		}
	}

	for _, day := range domain.DayNames {
		if strings.Contains(t, strings.ToLower(day)) {
			return domain.ModeWeek
		}
	}

	return domain.ModeWeek
}

// truncateRunes shortens s to at most limit runes, never splitting a
// multibyte character.
func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
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
