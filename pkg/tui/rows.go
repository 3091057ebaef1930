package tui

import "github.com/syllab/syllab-cli/pkg/models"

type rowKind int

const (
	sectionRow rowKind = iota
	lectureRow
)

// row is one line of the flattened outline: either a section header or a
// lecture beneath it. The cursor and the grab engine operate on rows.
type row struct {
	kind   rowKind
	secIdx int
	lecIdx int // meaningful for lectureRow only
}

// flattenRows turns the nested section/lecture tree into the displayed row
// list: each section header followed by its lectures, in order.
func flattenRows(sections []models.Section) []row {
	var rows []row
	for i, section := range sections {
		rows = append(rows, row{kind: sectionRow, secIdx: i})
		for j := range section.Lectures {
			rows = append(rows, row{kind: lectureRow, secIdx: i, lecIdx: j})
		}
	}
	return rows
}

// rowIndexOf locates a row in the flattened list, returning -1 when it is
// not present.
func rowIndexOf(rows []row, target row) int {
	for i, r := range rows {
		if r.kind == target.kind && r.secIdx == target.secIdx &&
			(r.kind == sectionRow || r.lecIdx == target.lecIdx) {
			return i
		}
	}
	return -1
}

// clampCursor keeps the cursor inside the row list after the tree changed
// underneath it.
func clampCursor(cursor, rowCount int) int {
	if rowCount == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= rowCount {
		return rowCount - 1
	}
	return cursor
}
