package store

import (
	"sync"

	"github.com/syllab/syllab-cli/pkg/models"
)

// Store holds the in-memory curriculum for one editing session: the course
// title plus the ordered section list, each section holding its ordered
// lectures. It is the single source of truth for rendering.
//
// Mutation commands run on their own goroutines while the UI keeps reading,
// so every method takes the lock and accessors hand out deep copies.
type Store struct {
	mu       sync.RWMutex
	title    string
	sections []models.Section

	// pending-delete markers, keyed by entity key; drives the visual state
	// during the delete round-trip
	pending map[string]struct{}
}

// New returns an empty store.
func New() *Store {
	return &Store{pending: make(map[string]struct{})}
}

// Reset swaps in a freshly loaded curriculum, replacing the entire tree and
// clearing any pending markers.
func (s *Store) Reset(title string, sections []models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.title = title
	s.sections = models.Clone(sections)
	s.pending = make(map[string]struct{})
}

// Replace atomically swaps the whole section list.
func (s *Store) Replace(sections []models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sections = models.Clone(sections)
}

// Title returns the curriculum title.
func (s *Store) Title() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.title
}

// Sections returns a deep copy of the current section list.
func (s *Store) Sections() []models.Section {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Clone(s.sections)
}

// SectionCount returns the number of sections.
func (s *Store) SectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sections)
}

// Section returns a deep copy of the section at index i.
func (s *Store) Section(i int) (models.Section, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.sections) {
		return models.Section{}, false
	}
	sec := s.sections[i]
	sec.Lectures = append([]models.Lecture(nil), sec.Lectures...)
	return sec, true
}

// Lecture returns a copy of the lecture at (secIdx, lecIdx).
func (s *Store) Lecture(secIdx, lecIdx int) (models.Lecture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return models.Lecture{}, false
	}
	lectures := s.sections[secIdx].Lectures
	if lecIdx < 0 || lecIdx >= len(lectures) {
		return models.Lecture{}, false
	}
	return lectures[lecIdx], true
}

// FindSection returns the index of the section whose id matches.
func (s *Store) FindSection(id models.EntityID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.sections {
		if s.sections[i].ID.Matches(id) {
			return i, true
		}
	}
	return 0, false
}

// AppendSection adds a section at the end of the list.
func (s *Store) AppendSection(section models.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if section.Lectures == nil {
		section.Lectures = []models.Lecture{}
	}
	s.sections = append(s.sections, section)
}

// ReplaceSection splices the server-confirmed section in place of the
// optimistic entry matched by id, preserving its position.
func (s *Store) ReplaceSection(id models.EntityID, confirmed models.Section) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sections {
		if s.sections[i].ID.Matches(id) {
			if confirmed.Lectures == nil {
				confirmed.Lectures = []models.Lecture{}
			}
			s.sections[i] = confirmed
			return true
		}
	}
	return false
}

// RemoveSection removes the section matched by id.
func (s *Store) RemoveSection(id models.EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sections {
		if s.sections[i].ID.Matches(id) {
			s.sections = append(s.sections[:i], s.sections[i+1:]...)
			return true
		}
	}
	return false
}

// SetSectionTitle applies a confirmed rename at the recorded position.
func (s *Store) SetSectionTitle(secIdx int, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	s.sections[secIdx].Title = title
	return true
}

// AppendLecture adds a lecture at the end of a section's list.
func (s *Store) AppendLecture(secIdx int, lecture models.Lecture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	s.sections[secIdx].Lectures = append(s.sections[secIdx].Lectures, lecture)
	return true
}

// ReplaceLecture splices the server-confirmed lecture in place of the
// optimistic entry within the given section.
func (s *Store) ReplaceLecture(secIdx int, id models.EntityID, confirmed models.Lecture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	lectures := s.sections[secIdx].Lectures
	for i := range lectures {
		if lectures[i].ID.Matches(id) {
			lectures[i] = confirmed
			return true
		}
	}
	return false
}

// RemoveLecture filters the lecture matched by id out of the given section.
func (s *Store) RemoveLecture(secIdx int, id models.EntityID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	lectures := s.sections[secIdx].Lectures
	for i := range lectures {
		if lectures[i].ID.Matches(id) {
			s.sections[secIdx].Lectures = append(lectures[:i], lectures[i+1:]...)
			return true
		}
	}
	return false
}

// SetLectureTitle applies a confirmed rename at the recorded position.
func (s *Store) SetLectureTitle(secIdx, lecIdx int, title string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	lectures := s.sections[secIdx].Lectures
	if lecIdx < 0 || lecIdx >= len(lectures) {
		return false
	}
	lectures[lecIdx].Title = title
	return true
}

// ApplyLectureBody applies a confirmed content/video edit to the lecture
// matched by id within the given section.
func (s *Store) ApplyLectureBody(secIdx int, updated models.Lecture) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secIdx < 0 || secIdx >= len(s.sections) {
		return false
	}
	lectures := s.sections[secIdx].Lectures
	for i := range lectures {
		if lectures[i].ID.Matches(updated.ID) {
			lectures[i].Content = updated.Content
			lectures[i].VideoURL = updated.VideoURL
			lectures[i].Title = updated.Title
			return true
		}
	}
	return false
}

// MoveSection removes the section at from and reinserts it at to in a single
// atomic splice.
func (s *Store) MoveSection(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if from < 0 || from >= len(s.sections) || to < 0 || to >= len(s.sections) || from == to {
		return false
	}
	s.sections = reorder(s.sections, from, to)
	return true
}

// MoveLecture removes the lecture at the source section/index and inserts it
// at the destination section/index. Cross-section moves are supported.
func (s *Store) MoveLecture(fromSec, fromLec, toSec, toLec int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return moveLectureAcross(s.sections, fromSec, fromLec, toSec, toLec)
}

// MarkPendingDelete records that the entity with the given key has a delete
// request in flight.
func (s *Store) MarkPendingDelete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[key] = struct{}{}
}

// ClearPendingDelete removes the marker for the given key.
func (s *Store) ClearPendingDelete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, key)
}

// IsPendingDelete reports whether a delete is in flight for the given key.
func (s *Store) IsPendingDelete(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pending[key]
	return ok
}
