package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
	"github.com/dear-data/vjournal/internal/tabular"
)

// This file builds dimensions for the tabular modes (attendance, stats).

const attendanceMaxValues = 14

var presentTokens = map[string]bool{
	"1":       true,
	"true":    true,
	"yes":     true,
	"present": true,
	"p":       true,
}

// buildAttendanceRows converts a presence CSV into labeled 0/1 rows. Without
// a CSV it returns a small demo grid so the canvas never renders empty.
func buildAttendanceRows(table *tabular.Table) []domain.GridRow {
	if table.IsEmpty() {
		return []domain.GridRow{
			{Label: "Row1", Values: []int{1, 0, 1, 1, 0, 1, 0}},
			{Label: "Row2", Values: []int{0, 1, 1, 0, 1, 1, 1}},
		}
	}

	rows := make([]domain.GridRow, 0, len(table.Rows))
	for i, row := range table.Rows {
		label := fmt.Sprintf("Row%d", i+1)
		if len(row) > 0 && row[0] != "" {
			label = row[0]
		}

		var values []int
		cells := row
		if len(cells) > 0 {
			cells = cells[1:]
		}
		for _, cell := range cells {
			if presentTokens[strings.ToLower(strings.TrimSpace(cell))] {
				values = append(values, 1)
			} else {
				values = append(values, 0)
			}
			if len(values) == attendanceMaxValues {
				break
			}
		}

		rows = append(rows, domain.GridRow{Label: label, Values: values})
	}

	return rows
}

// buildStatsCategories reads name/value pairs from the CSV, skipping the
// header row and anything non-numeric.
func buildStatsCategories(table *tabular.Table) []domain.Category {
	if table.IsEmpty() {
		return []domain.Category{
			{Name: "A", Value: 5},
			{Name: "B", Value: 9},
			{Name: "C", Value: 12},
		}
	}

	var categories []domain.Category
	for i, row := range table.Rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 2 {
			continue
		}
		val, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			continue
		}
		categories = append(categories, domain.Category{Name: row[0], Value: val})
	}

	if len(categories) == 0 {
		categories = []domain.Category{{Name: "Item", Value: 5}}
	}

	return categories
}
