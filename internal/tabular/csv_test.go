package tabular

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	table, err := Parse("name,mon,tue\nAlice,1,0\nBob,0,1\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}
	if table.Rows[1][0] != "Alice" {
		t.Errorf("Expected Alice, got %q", table.Rows[1][0])
	}
}

func TestParseRaggedRows(t *testing.T) {
	table, err := Parse("a,b,c\n1,2\nx,y,z,w\n")
	if err != nil {
		t.Fatalf("Parse failed on ragged input: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Errorf("Expected ragged rows to be kept, got %d rows", len(table.Rows))
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	table, err := Parse("name , value\n foo , 12 \n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if table.Rows[1][0] != "foo" {
		t.Errorf("Expected trimmed cell foo, got %q", table.Rows[1][0])
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Error("Expected error for empty CSV")
	}
}

func TestTrim(t *testing.T) {
	var rows []string
	rows = append(rows, "c1,c2,c3,c4")
	for i := 0; i < 10; i++ {
		rows = append(rows, "a,b,c,d")
	}

	table, err := Parse(strings.Join(rows, "\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	trimmed := table.Trim(3, 2)
	lines := strings.Split(trimmed, "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 rows after trim, got %d", len(lines))
	}
	if lines[0] != "c1,c2" {
		t.Errorf("Expected header trimmed to 2 columns, got %q", lines[0])
	}
}

func TestLimit(t *testing.T) {
	table, err := Parse("c1,c2,c3\na,b,c\nd,e,f\ng,h,i\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	limited := table.Limit(2, 2)
	if len(limited.Rows) != 2 {
		t.Fatalf("Expected 2 rows after limit, got %d", len(limited.Rows))
	}
	if len(limited.Rows[0]) != 2 {
		t.Errorf("Expected 2 columns after limit, got %d", len(limited.Rows[0]))
	}
	if len(table.Rows) != 4 {
		t.Errorf("Expected the source table to be untouched, got %d rows", len(table.Rows))
	}
}

func TestIsEmpty(t *testing.T) {
	var table *Table
	if !table.IsEmpty() {
		t.Error("Expected nil table to be empty")
	}
	if !(&Table{}).IsEmpty() {
		t.Error("Expected zero table to be empty")
	}
}
