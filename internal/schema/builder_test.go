package schema

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dear-data/vjournal/internal/domain"
	"github.com/dear-data/vjournal/internal/tabular"
)

func mustTable(t *testing.T, csv string) *tabular.Table {
	t.Helper()
	table, err := tabular.Parse(csv)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want domain.Mode
	}{
		{
			name: "csv with presence tokens",
			in:   Input{Table: mustTable(t, "name,mon\nAlice,present")},
			want: domain.ModeAttendance,
		},
		{
			name: "numeric csv",
			in:   Input{Table: mustTable(t, "cat,val\nsleep,7.5")},
			want: domain.ModeStats,
		},
		{
			name: "model classification wins over text",
			in:   Input{RawText: "nothing special", LLM: domain.Interpretation{JournalType: "dream"}},
			want: domain.ModeDream,
		},
		{
			name: "dream keywords",
			in:   Input{RawText: "I was floating above the city"},
			want: domain.ModeDream,
		},
		{
			name: "stress keywords",
			in:   Input{RawText: "completely overwhelmed and anxious"},
			want: domain.ModeStress,
		},
		{
			name: "day names",
			in:   Input{RawText: "Mon was fine, Wed was better"},
			want: domain.ModeWeek,
		},
		{
			name: "default",
			in:   Input{RawText: "some plain text"},
			want: domain.ModeWeek,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectMode(tt.in)
			if got != tt.want {
				t.Errorf("Expected mode %s, got %s", tt.want, got)
			}
		})
	}
}

func TestGenerateForcedModeWins(t *testing.T) {
	scene := Generate(Input{
		RawText: "I was floating in a dream",
		Forced:  domain.ModeStress,
	})
	if scene.Mode != domain.ModeStress {
		t.Errorf("Expected forced stress mode, got %s", scene.Mode)
	}
	if scene.VisualStandard != "B" {
		t.Errorf("Expected standard B, got %s", scene.VisualStandard)
	}
}

func TestGenerateRawTextExcerpt(t *testing.T) {
	long := strings.Repeat("x", 900)
	scene := Generate(Input{RawText: long, Forced: domain.ModeWeek})
	if len(scene.RawText) != 500 {
		t.Errorf("Expected raw text trimmed to 500 chars, got %d", len(scene.RawText))
	}
}

func TestGenerateRawTextExcerptMultibyte(t *testing.T) {
	long := strings.Repeat("夢", 900)
	scene := Generate(Input{RawText: long, Forced: domain.ModeWeek})

	if !utf8.ValidString(scene.RawText) {
		t.Error("Expected excerpt to stay valid UTF-8")
	}
	if got := utf8.RuneCountInString(scene.RawText); got != 500 {
		t.Errorf("Expected 500-character excerpt, got %d", got)
	}
}

func TestBuildWeekDays(t *testing.T) {
	text := "mon: went for a run, group call, happy\ntue: tired, stayed in"
	days := buildWeekDays(text, domain.Interpretation{EmotionKeywords: []string{"calm"}})

	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}

	mon := days[0]
	if mon.Label == "" {
		t.Error("Expected Monday to get a label from its segment")
	}
	if mon.Energy < 3 {
		t.Errorf("Expected running to raise energy, got %d", mon.Energy)
	}
	if mon.ConnectionScore == 0 {
		t.Error("Expected group call to raise connection score")
	}
	if mon.Mood <= 3 {
		t.Errorf("Expected calm+happy to raise mood above neutral, got %d", mon.Mood)
	}

	tue := days[1]
	if tue.Energy != 1 {
		t.Errorf("Expected tired Tuesday energy 1, got %d", tue.Energy)
	}

	// Days never mentioned keep defaults.
	if days[6].Energy != 2 || days[6].Mood != 3 {
		t.Errorf("Expected default Sunday, got energy=%d mood=%d", days[6].Energy, days[6].Mood)
	}
}

func TestBuildStressTimeline(t *testing.T) {
	text := "calm morning walk\n\ncompletely overwhelmed by the deadline, panic"
	timeline := buildStressTimeline(text, domain.Interpretation{EmotionKeywords: []string{"stress"}})

	if len(timeline) != 2 {
		t.Fatalf("Expected 2 timeline points (blank lines skipped), got %d", len(timeline))
	}
	if timeline[0].Index != 0 || timeline[1].Index != 1 {
		t.Error("Expected sequential indices")
	}
	if timeline[1].Stress <= timeline[0].Stress {
		t.Errorf("Expected panic line to score higher: %d vs %d", timeline[1].Stress, timeline[0].Stress)
	}
	if timeline[1].Stress > 5 {
		t.Errorf("Expected stress capped at 5, got %d", timeline[1].Stress)
	}
}

func TestBuildStressTimelineMultibyteLabel(t *testing.T) {
	timeline := buildStressTimeline(strings.Repeat("忙", 200), domain.Interpretation{})
	if len(timeline) != 1 {
		t.Fatalf("Expected 1 timeline point, got %d", len(timeline))
	}

	label := timeline[0].Label
	if !utf8.ValidString(label) {
		t.Error("Expected label to stay valid UTF-8")
	}
	if got := utf8.RuneCountInString(label); got != 120 {
		t.Errorf("Expected 120-character label, got %d", got)
	}
}

func TestBuildDreamClusters(t *testing.T) {
	clusters := buildDreamClusters("", domain.Interpretation{Imagery: []string{"waves", "clouds"}})
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters from imagery, got %d", len(clusters))
	}
	if clusters[0].Symbol != "waves" {
		t.Errorf("Expected waves, got %q", clusters[0].Symbol)
	}
	for _, c := range clusters {
		if c.Intensity < 1 || c.Intensity > 5 {
			t.Errorf("Expected intensity in [1,5], got %d", c.Intensity)
		}
	}
}

func TestBuildDreamClustersFallback(t *testing.T) {
	clusters := buildDreamClusters("stars drift over silent water tonight again", domain.Interpretation{})
	if len(clusters) == 0 {
		t.Fatal("Expected fallback clusters from text words")
	}
	if len(clusters) > 5 {
		t.Errorf("Expected at most 5 fallback clusters, got %d", len(clusters))
	}
}

func TestBuildAttendanceRows(t *testing.T) {
	table := mustTable(t, "Alice,present,absent,yes\nBob,P,no,1")
	rows := buildAttendanceRows(table)

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Label != "Alice" {
		t.Errorf("Expected label Alice, got %q", rows[0].Label)
	}
	want := []int{1, 0, 1}
	for i, v := range want {
		if rows[0].Values[i] != v {
			t.Errorf("Expected Alice values %v, got %v", want, rows[0].Values)
			break
		}
	}
	if rows[1].Values[0] != 1 {
		t.Error("Expected lowercase p to count as present")
	}
}

func TestBuildAttendanceRowsWithoutCSV(t *testing.T) {
	rows := buildAttendanceRows(nil)
	if len(rows) != 2 {
		t.Errorf("Expected 2 demo rows without CSV, got %d", len(rows))
	}
}

func TestBuildStatsCategories(t *testing.T) {
	table := mustTable(t, "name,value\nsleep,7.5\nwork,9\nbroken,abc")
	cats := buildStatsCategories(table)

	if len(cats) != 2 {
		t.Fatalf("Expected 2 categories (header and bad row skipped), got %d", len(cats))
	}
	if cats[0].Name != "sleep" || cats[0].Value != 7.5 {
		t.Errorf("Expected sleep=7.5, got %s=%v", cats[0].Name, cats[0].Value)
	}
}

func TestBuildStatsCategoriesWithoutCSV(t *testing.T) {
	cats := buildStatsCategories(nil)
	if len(cats) != 3 {
		t.Errorf("Expected 3 demo categories without CSV, got %d", len(cats))
	}
}

func TestBuildStatsCategoriesNeverEmpty(t *testing.T) {
	table := mustTable(t, "name,value\nonly,header-ish")
	cats := buildStatsCategories(table)
	if len(cats) == 0 {
		t.Error("Expected at least one category")
	}
}
