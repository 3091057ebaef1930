package models

import (
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const maxTitleLength = 200

// Lecture is a leaf content unit within a section: a title, an optional
// markdown body, and an optional externally hosted video reference.
type Lecture struct {
	ID       EntityID
	Title    string
	Content  string
	VideoURL string
}

// Section is a named, ordered group of lectures. Lecture order is the
// display/playback order.
type Section struct {
	ID       EntityID
	Title    string
	Lectures []Lecture
}

// Curriculum is the aggregate root loaded per course key.
type Curriculum struct {
	Title    string
	Sections []Section
}

type lectureWire struct {
	DurableID string `json:"_id,omitempty"`
	TempID    string `json:"idindex,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content,omitempty"`
	VideoURL  string `json:"videourl,omitempty"`
}

type sectionWire struct {
	DurableID string    `json:"_id,omitempty"`
	TempID    string    `json:"idindex,omitempty"`
	Title     string    `json:"title"`
	Lectures  []Lecture `json:"lectures"`
}

func (l Lecture) MarshalJSON() ([]byte, error) {
	return json.Marshal(lectureWire{
		DurableID: l.ID.DurableID(),
		TempID:    l.ID.TempID(),
		Title:     l.Title,
		Content:   l.Content,
		VideoURL:  l.VideoURL,
	})
}

func (l *Lecture) UnmarshalJSON(data []byte) error {
	var w lectureWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	l.ID = wireID(w.TempID, w.DurableID)
	l.Title = w.Title
	l.Content = w.Content
	l.VideoURL = w.VideoURL
	return nil
}

func (s Section) MarshalJSON() ([]byte, error) {
	lectures := s.Lectures
	if lectures == nil {
		lectures = []Lecture{}
	}
	return json.Marshal(sectionWire{
		DurableID: s.ID.DurableID(),
		TempID:    s.ID.TempID(),
		Title:     s.Title,
		Lectures:  lectures,
	})
}

func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.ID = wireID(w.TempID, w.DurableID)
	s.Title = w.Title
	s.Lectures = w.Lectures
	return nil
}

// Validate checks a section before it is sent to the gateway.
func (s Section) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Title, validation.Required, validation.Length(1, maxTitleLength)),
	)
}

// Validate checks a lecture before it is sent to the gateway. The video URL
// is optional but must parse as a URL when present.
func (l Lecture) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&l.VideoURL, is.URL),
	)
}

// Clone returns a deep copy of the section list. Store snapshots hand these
// out so callers can never alias live state.
func Clone(sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Lectures = make([]Lecture, len(s.Lectures))
		copy(out[i].Lectures, s.Lectures)
	}
	return out
}
