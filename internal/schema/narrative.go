package schema

import (
	"regexp"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// This file builds dimensions for the narrative modes (week, stress, dream):
// naive keyword heuristics over the entry text, nudged by the model's cues.

const (
	dayLabelMaxLen    = 90
	stressLabelMaxLen = 120
)

// buildWeekDays splits the entry into day segments and scores each day for
// connection, energy and mood.
func buildWeekDays(text string, llm domain.Interpretation) []domain.Day {
	days := make([]domain.Day, len(domain.DayNames))
	for i, name := range domain.DayNames {
		days[i] = domain.Day{Name: name, Energy: 2, Mood: 3}
	}

	lower := strings.ToLower(text)
	for i, name := range domain.DayNames {
		segment := findDaySegment(lower, strings.ToLower(name))
		if segment == "" {
			continue
		}

		days[i].ConnectionScore = connectionScore(segment)
		days[i].Energy = energyScore(segment)
		days[i].Mood = moodScore(llm, segment)

		days[i].Label = truncateRunes(strings.TrimSpace(segment), dayLabelMaxLen)
	}

	return days
}

// findDaySegment extracts the text following a day marker ("mon:", "tue -",
// ...) up to the next day marker.
func findDaySegment(text, day string) string {
	patterns := []string{
		day + ":",
		day + " -",
		day + " –",
		day + " —",
		day + " ",
	}
	for _, p := range patterns {
		idx := strings.Index(text, p)
		if idx == -1 {
			continue
		}
		part := text[idx+len(p):]
		// Cut at the next day marker.
		for _, d := range domain.DayNames {
			marker := strings.ToLower(d)
			if cut := strings.Index(part, marker); cut != -1 {
				part = part[:cut]
			}
		}
		return strings.TrimSpace(part)
	}
	return ""
}

// connectionScore counts social keywords, capped at 1.0.
func connectionScore(segment string) float64 {
	low := strings.ToLower(segment)
	score := 0
	for _, kw := range []string{"friend", "call", "meet", "group", "talk"} {
		score += strings.Count(low, kw)
	}
	if score > 4 {
		score = 4
	}
	return float64(score) / 4
}

// energyScore estimates 1-5 activity intensity from keywords.
func energyScore(segment string) int {
	low := strings.ToLower(segment)
	energy := 1
	if strings.Contains(low, "run") || strings.Contains(low, "workout") || strings.Contains(low, "gym") {
		energy += 2
	}
	if strings.Contains(low, "walk") {
		energy++
	}
	if strings.Contains(low, "tired") {
		energy--
	}
	return clamp(energy, 1, 5)
}

// moodScore combines the model's emotion keywords with local text cues.
func moodScore(llm domain.Interpretation, segment string) int {
	base := 3

	emo := strings.ToLower(strings.Join(llm.EmotionKeywords, " "))
	if strings.Contains(emo, "stress") || strings.Contains(emo, "anxious") {
		base--
	}
	if strings.Contains(emo, "calm") || strings.Contains(emo, "joy") {
		base++
	}

	low := strings.ToLower(segment)
	if strings.Contains(low, "stress") || strings.Contains(low, "sad") {
		base--
	}
	if strings.Contains(low, "happy") || strings.Contains(low, "fun") {
		base++
	}

	return clamp(base, 1, 5)
}

// buildStressTimeline scores each non-empty line of the entry 0-5.
func buildStressTimeline(text string, llm domain.Interpretation) []domain.StressPoint {
	var timeline []domain.StressPoint

	idx := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		timeline = append(timeline, domain.StressPoint{
			Index:  idx,
			Stress: stressScore(line, llm),
			Label:  truncateRunes(line, stressLabelMaxLen),
		})
		idx++
	}

	return timeline
}

func stressScore(line string, llm domain.Interpretation) int {
	base := 2

	emo := strings.ToLower(strings.Join(llm.EmotionKeywords, " "))
	if strings.Contains(emo, "stress") || strings.Contains(emo, "anxiety") {
		base++
	}

	low := strings.ToLower(line)
	for _, kw := range []string{"stress", "panic", "tired", "angry", "overwhelmed"} {
		if strings.Contains(low, kw) {
			base++
		}
	}

	return clamp(base, 0, 5)
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// buildDreamClusters turns the model's imagery into symbol clusters; when the
// model offered none, it falls back to words pulled from the text itself.
func buildDreamClusters(text string, llm domain.Interpretation) []domain.Cluster {
	var clusters []domain.Cluster

	for _, img := range llm.Imagery {
		intensity := 1 + len(img)%4
		if intensity > 5 {
			intensity = 5
		}
		clusters = append(clusters, domain.Cluster{Symbol: img, Intensity: intensity})
	}

	if len(clusters) > 0 {
		return clusters
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	seen := make(map[string]bool)
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		clusters = append(clusters, domain.Cluster{
			Symbol:    w,
			Intensity: (len(w) % 5) + 1,
		})
		if len(clusters) == 5 {
			break
		}
	}

	return clusters
}
