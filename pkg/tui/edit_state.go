package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type editKind int

const (
	editNone editKind = iota
	editSection
	editLecture
	addSection
	addLecture
)

// EditState manages the inline rename session for a section or lecture
// title. At most one session is active; starting a new one replaces the
// current session outright.
type EditState struct {
	Kind            editKind
	SectionIndex    int
	LectureIndex    int
	Draft           string
	CursorPos       int
	OriginalTitle   string
	ValidationError string
}

// NewEditState creates an idle edit session.
func NewEditState() *EditState {
	return &EditState{}
}

// Active reports whether a rename session is open.
func (es *EditState) Active() bool {
	return es.Kind != editNone
}

// StartSection opens a rename session for the section at secIdx, seeding the
// draft from the current title.
func (es *EditState) StartSection(secIdx int, title string) {
	es.Kind = editSection
	es.SectionIndex = secIdx
	es.LectureIndex = 0
	es.seed(title)
}

// StartLecture opens a rename session for the lecture at (secIdx, lecIdx).
func (es *EditState) StartLecture(secIdx, lecIdx int, title string) {
	es.Kind = editLecture
	es.SectionIndex = secIdx
	es.LectureIndex = lecIdx
	es.seed(title)
}

// StartAddSection opens an empty draft for a new section title.
func (es *EditState) StartAddSection() {
	es.Kind = addSection
	es.SectionIndex = 0
	es.LectureIndex = 0
	es.seed("")
}

// StartAddLecture opens an empty draft for a new lecture under secIdx.
func (es *EditState) StartAddLecture(secIdx int) {
	es.Kind = addLecture
	es.SectionIndex = secIdx
	es.LectureIndex = 0
	es.seed("")
}

func (es *EditState) seed(title string) {
	es.Draft = title
	es.OriginalTitle = title
	es.CursorPos = len([]rune(title))
	es.ValidationError = ""
}

// Reset discards the draft and closes the session.
func (es *EditState) Reset() {
	*es = EditState{}
}

// HandleInput processes keyboard input while a session is open. It returns
// whether the key was consumed and whether the user asked to save the draft;
// the caller owns the actual save and must Reset the session once the
// request settles.
func (es *EditState) HandleInput(msg tea.KeyMsg) (handled bool, save bool) {
	if !es.Active() {
		return false, false
	}

	switch msg.String() {
	case "esc":
		es.Reset()
		return true, false

	case "enter":
		if strings.TrimSpace(es.Draft) == "" {
			es.ValidationError = "title cannot be empty"
			return true, false
		}
		return true, true

	case "backspace":
		if es.CursorPos > 0 {
			runes := []rune(es.Draft)
			es.Draft = string(runes[:es.CursorPos-1]) + string(runes[es.CursorPos:])
			es.CursorPos--
			es.ValidationError = ""
		}
		return true, false

	case "delete":
		runes := []rune(es.Draft)
		if es.CursorPos < len(runes) {
			es.Draft = string(runes[:es.CursorPos]) + string(runes[es.CursorPos+1:])
		}
		return true, false

	case "left", "ctrl+b":
		if es.CursorPos > 0 {
			es.CursorPos--
		}
		return true, false

	case "right", "ctrl+f":
		if es.CursorPos < len([]rune(es.Draft)) {
			es.CursorPos++
		}
		return true, false

	case "home", "ctrl+a":
		es.CursorPos = 0
		return true, false

	case "end", "ctrl+e":
		es.CursorPos = len([]rune(es.Draft))
		return true, false

	case "ctrl+u":
		// Clear from cursor to beginning
		runes := []rune(es.Draft)
		es.Draft = string(runes[es.CursorPos:])
		es.CursorPos = 0
		return true, false

	case "ctrl+k":
		// Clear from cursor to end
		runes := []rune(es.Draft)
		if es.CursorPos < len(runes) {
			es.Draft = string(runes[:es.CursorPos])
		}
		return true, false

	case " ":
		es.insert(" ")
		return true, false

	default:
		if msg.Type == tea.KeyRunes {
			es.insert(string(msg.Runes))
			return true, false
		}
	}

	return true, false
}

func (es *EditState) insert(s string) {
	runes := []rune(es.Draft)
	es.Draft = string(runes[:es.CursorPos]) + s + string(runes[es.CursorPos:])
	es.CursorPos += len([]rune(s))
	es.ValidationError = ""
}
