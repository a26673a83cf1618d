// Package domain holds the core types shared across the visual journal
// pipeline: journal modes, the LLM interpretation and the drawable Scene.
package domain

// Mode classifies what kind of life data a journal entry describes.
type Mode string

const (
	ModeAuto       Mode = "auto"
	ModeWeek       Mode = "week"
	ModeStress     Mode = "stress"
	ModeDream      Mode = "dream"
	ModeAttendance Mode = "attendance"
	ModeStats      Mode = "stats"
)

// Valid reports whether m is one of the concrete (non-auto) modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeWeek, ModeStress, ModeDream, ModeAttendance, ModeStats:
		return true
	}
	return false
}

// VisualStandard returns the renderer standard (A–E) for the mode.
func (m Mode) VisualStandard() string {
	switch m {
	case ModeWeek:
		return "A"
	case ModeStress:
		return "B"
	case ModeDream:
		return "C"
	case ModeAttendance:
		return "D"
	case ModeStats:
		return "E"
	}
	return "A"
}

// DayNames are the fixed week labels used by the week schema and renderer.
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Day is one day of a tracked week.
type Day struct {
	Name            string  `json:"name"`
	ConnectionScore float64 `json:"connection_score"`
	Energy          int     `json:"energy"`
	Mood            int     `json:"mood"`
	Label           string  `json:"label"`
}

// StressPoint is one entry on a stress timeline.
type StressPoint struct {
	Index  int    `json:"index"`
	Stress int    `json:"stress"`
	Label  string `json:"label"`
}

// Cluster is one dream symbol with its intensity.
type Cluster struct {
	Symbol    string `json:"symbol"`
	Intensity int    `json:"intensity"`
}

// GridRow is one labeled row of presence values (1 = present).
type GridRow struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
}

// Category is one named numeric value for the stats renderer.
type Category struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Dimensions carries the per-mode drawable data. Exactly one field is
// populated, matching the Scene's mode.
type Dimensions struct {
	Days       []Day         `json:"days,omitempty"`
	Timeline   []StressPoint `json:"timeline,omitempty"`
	Clusters   []Cluster     `json:"clusters,omitempty"`
	Rows       []GridRow     `json:"rows,omitempty"`
	Categories []Category    `json:"categories,omitempty"`
}

// Scene is the deterministic internal representation handed to a renderer.
type Scene struct {
	Mode           Mode           `json:"mode"`
	VisualStandard string         `json:"visualStandard"`
	Dimensions     Dimensions     `json:"dimensions"`
	LLM            Interpretation `json:"llm"`
	RawText        string         `json:"raw_text"`
}
