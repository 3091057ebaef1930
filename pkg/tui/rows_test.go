package tui

import (
	"testing"

	"github.com/syllab/syllab-cli/pkg/models"
)

func sampleSections() []models.Section {
	return []models.Section{
		{
			ID:    models.PersistedID("s1"),
			Title: "Basics",
			Lectures: []models.Lecture{
				{ID: models.PersistedID("l1"), Title: "Hello"},
				{ID: models.PersistedID("l2"), Title: "Types"},
			},
		},
		{
			ID:    models.PersistedID("s2"),
			Title: "Advanced",
		},
		{
			ID:    models.PersistedID("s3"),
			Title: "Extras",
			Lectures: []models.Lecture{
				{ID: models.PersistedID("l3"), Title: "Tooling"},
			},
		},
	}
}

func TestFlattenRows(t *testing.T) {
	rows := flattenRows(sampleSections())

	want := []row{
		{kind: sectionRow, secIdx: 0},
		{kind: lectureRow, secIdx: 0, lecIdx: 0},
		{kind: lectureRow, secIdx: 0, lecIdx: 1},
		{kind: sectionRow, secIdx: 1},
		{kind: sectionRow, secIdx: 2},
		{kind: lectureRow, secIdx: 2, lecIdx: 0},
	}

	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestFlattenRows_Empty(t *testing.T) {
	if rows := flattenRows(nil); len(rows) != 0 {
		t.Errorf("got %d rows for empty curriculum, want 0", len(rows))
	}
}

func TestRowIndexOf(t *testing.T) {
	rows := flattenRows(sampleSections())

	tests := []struct {
		name   string
		target row
		want   int
	}{
		{"first section", row{kind: sectionRow, secIdx: 0}, 0},
		{"nested lecture", row{kind: lectureRow, secIdx: 0, lecIdx: 1}, 2},
		{"empty section", row{kind: sectionRow, secIdx: 1}, 3},
		{"last lecture", row{kind: lectureRow, secIdx: 2, lecIdx: 0}, 5},
		{"missing", row{kind: lectureRow, secIdx: 1, lecIdx: 0}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rowIndexOf(rows, tt.target); got != tt.want {
				t.Errorf("rowIndexOf(%+v) = %d, want %d", tt.target, got, tt.want)
			}
		})
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, count, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{5, 3, 2},
		{-1, 3, 0},
		{0, 0, 0},
		{4, 0, 0},
	}

	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.count); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.count, got, tt.want)
		}
	}
}
