package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// VideoEditor is the modal input for a lecture's video URL.
type VideoEditor struct {
	Active       bool
	SectionIndex int
	LectureIndex int
	LectureTitle string
	ErrorText    string

	Input textinput.Model
	width int
}

// NewVideoEditor creates an idle video URL editor.
func NewVideoEditor() *VideoEditor {
	ti := textinput.New()
	ti.Placeholder = "https://..."
	ti.CharLimit = 500
	ti.Width = 50

	return &VideoEditor{Input: ti}
}

// Open starts an editing session for the lecture at (secIdx, lecIdx).
func (e *VideoEditor) Open(secIdx, lecIdx int, title, url string) {
	e.Active = true
	e.SectionIndex = secIdx
	e.LectureIndex = lecIdx
	e.LectureTitle = title
	e.ErrorText = ""
	e.Input.SetValue(url)
	e.Input.Focus()
	e.Input.CursorEnd()
}

// Close discards the session.
func (e *VideoEditor) Close() {
	e.Active = false
	e.Input.Blur()
}

// Value returns the current draft URL.
func (e *VideoEditor) Value() string {
	return e.Input.Value()
}

// SetSize adjusts the input to the terminal width.
func (e *VideoEditor) SetSize(width int) {
	e.width = width
	w := width - 12
	if w < 20 {
		w = 20
	}
	e.Input.Width = w
}

// Update handles input while the editor is open. It returns the save flag
// when the draft passes URL validation and the user commits it with enter.
// An empty draft saves as a cleared URL.
func (e *VideoEditor) Update(msg tea.Msg) (save bool, cmd tea.Cmd) {
	if !e.Active {
		return false, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			e.Close()
			return false, nil

		case "enter":
			if err := validation.Validate(e.Input.Value(), is.URL); err != nil {
				e.ErrorText = "not a valid URL"
				return false, nil
			}
			return true, nil
		}
	}

	e.Input, cmd = e.Input.Update(msg)
	e.ErrorText = ""
	return false, cmd
}

// View renders the editor modal.
func (e *VideoEditor) View() string {
	if !e.Active {
		return ""
	}

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Padding(0, 1)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	header := titleStyle.Render(fmt.Sprintf("Video URL: %s", e.LectureTitle))
	footer := helpStyle.Render("enter save • esc close")
	if e.ErrorText != "" {
		footer = errorStyle.Render(e.ErrorText)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", e.Input.View(), "", footer)
	return borderStyle.Render(body)
}
