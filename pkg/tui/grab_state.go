package tui

import "github.com/syllab/syllab-cli/pkg/models"

// GrabState is the reorder engine's interaction state: while a section or
// lecture row is grabbed, every cursor step fires the corresponding move
// immediately, so the list visibly reshuffles as the user moves, not on
// release. The recorded position is updated after each step so the next one
// computes the correct delta.
type GrabState struct {
	Active bool
	Kind   rowKind
	SecIdx int
	LecIdx int
}

// NewGrabState creates an idle grab state.
func NewGrabState() *GrabState {
	return &GrabState{}
}

// Start grabs the given row.
func (g *GrabState) Start(r row) {
	g.Active = true
	g.Kind = r.kind
	g.SecIdx = r.secIdx
	g.LecIdx = r.lecIdx
}

// Reset releases the grab.
func (g *GrabState) Reset() {
	g.Active = false
	g.SecIdx = 0
	g.LecIdx = 0
}

// Row returns the grabbed row's current position.
func (g *GrabState) Row() row {
	return row{kind: g.Kind, secIdx: g.SecIdx, lecIdx: g.LecIdx}
}

// lectureMove describes one lecture transposition, possibly across a
// section boundary.
type lectureMove struct {
	fromSec, fromLec, toSec, toLec int
}

// planSectionMove computes the transposition for stepping a grabbed section
// by delta within the flat top-level list. Sections never leave that list.
func planSectionMove(secIdx, delta, sectionCount int) (from, to int, ok bool) {
	to = secIdx + delta
	if to < 0 || to >= sectionCount || to == secIdx {
		return 0, 0, false
	}
	return secIdx, to, true
}

// planLectureMove computes the transposition for stepping a grabbed lecture
// by delta. Stepping past either end of a section crosses into the adjacent
// section: up from the first lecture appends after the previous section's
// last lecture, down from the last lecture inserts before the next
// section's first.
func planLectureMove(sections []models.Section, secIdx, lecIdx, delta int) (lectureMove, bool) {
	if secIdx < 0 || secIdx >= len(sections) {
		return lectureMove{}, false
	}
	lectures := sections[secIdx].Lectures
	if lecIdx < 0 || lecIdx >= len(lectures) {
		return lectureMove{}, false
	}

	target := lecIdx + delta
	if target >= 0 && target < len(lectures) {
		return lectureMove{secIdx, lecIdx, secIdx, target}, true
	}

	if delta < 0 {
		if secIdx == 0 {
			return lectureMove{}, false
		}
		prev := secIdx - 1
		return lectureMove{secIdx, lecIdx, prev, len(sections[prev].Lectures)}, true
	}

	if secIdx == len(sections)-1 {
		return lectureMove{}, false
	}
	return lectureMove{secIdx, lecIdx, secIdx + 1, 0}, true
}
