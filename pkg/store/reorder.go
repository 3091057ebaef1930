package store

import "github.com/syllab/syllab-cli/pkg/models"

// reorder removes the element at from and reinserts it at to, as one atomic
// splice. Out-of-range arguments leave the list untouched.
func reorder[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}

	moved := list[from]
	list = append(list[:from], list[from+1:]...)

	out := make([]T, 0, len(list)+1)
	out = append(out, list[:to]...)
	out = append(out, moved)
	out = append(out, list[to:]...)
	return out
}

// moveLectureAcross removes the lecture at (fromSec, fromLec) and inserts it
// at (toSec, toLec). Cross-section moves are supported. Returns false when
// any index is out of range, or the destination slot is not reachable after
// removal.
func moveLectureAcross(sections []models.Section, fromSec, fromLec, toSec, toLec int) bool {
	if fromSec < 0 || fromSec >= len(sections) || toSec < 0 || toSec >= len(sections) {
		return false
	}
	src := sections[fromSec].Lectures
	if fromLec < 0 || fromLec >= len(src) {
		return false
	}

	if fromSec == toSec {
		if toLec < 0 || toLec >= len(src) || fromLec == toLec {
			return false
		}
		sections[fromSec].Lectures = reorder(src, fromLec, toLec)
		return true
	}

	dst := sections[toSec].Lectures
	if toLec < 0 || toLec > len(dst) {
		return false
	}

	moved := src[fromLec]
	sections[fromSec].Lectures = append(src[:fromLec], src[fromLec+1:]...)

	out := make([]models.Lecture, 0, len(dst)+1)
	out = append(out, dst[:toLec]...)
	out = append(out, moved)
	out = append(out, dst[toLec:]...)
	sections[toSec].Lectures = out
	return true
}
