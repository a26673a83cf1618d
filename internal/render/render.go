// Package render turns a Scene into PaperScript and splices it into the
// embedded canvas page. Scene data enters the scripts as marshalled JSON;
// nothing here talks to the network.
package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

//go:embed paper_template.html
var pageTemplate string

const scriptPlaceholder = "// __PAPERSCRIPT_PLACEHOLDER__"

// Select routes the scene to the renderer for its mode / visual standard,
// returning the PaperScript source. Unknown combinations fall back to the
// week renderer.
func Select(scene domain.Scene) string {
	mode := scene.Mode
	vs := strings.ToUpper(scene.VisualStandard)

	switch {
	case mode == domain.ModeWeek || vs == "A":
		return WeekWave(scene)
	case mode == domain.ModeStress || vs == "B":
		return StressStorm(scene)
	case mode == domain.ModeDream || vs == "C":
		return DreamPlanets(scene)
	case mode == domain.ModeAttendance || vs == "D":
		return AttendanceGrid(scene)
	case mode == domain.ModeStats || vs == "E":
		return StatsBars(scene)
	}

	return WeekWave(scene)
}

// Page returns the full HTML canvas document with the scene's PaperScript
// spliced into the embedded template.
func Page(scene domain.Scene) (string, error) {
	script := Select(scene)
	if !strings.Contains(pageTemplate, scriptPlaceholder) {
		return "", fmt.Errorf("canvas template is missing the script placeholder")
	}
	return strings.Replace(pageTemplate, scriptPlaceholder, script, 1), nil
}

// mustJSON marshals scene fragments for embedding into the JS templates.
// The domain types marshal cleanly; a failure here is a programming error.
func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
