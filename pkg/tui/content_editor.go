package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ContentEditor is the modal textarea for a lecture's body text. It tracks
// the original content so closing can warn about unsaved changes.
type ContentEditor struct {
	Active          bool
	SectionIndex    int
	LectureIndex    int
	LectureTitle    string
	OriginalContent string

	Textarea    textarea.Model
	ExitConfirm *ConfirmationModel

	width  int
	height int
}

// NewContentEditor creates an idle content editor.
func NewContentEditor() *ContentEditor {
	ta := textarea.New()
	ta.Placeholder = "Write the lecture body..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = false

	return &ContentEditor{
		Textarea:    ta,
		ExitConfirm: NewConfirmation(),
	}
}

// Open starts an editing session for the lecture at (secIdx, lecIdx).
func (e *ContentEditor) Open(secIdx, lecIdx int, title, content string) {
	e.Active = true
	e.SectionIndex = secIdx
	e.LectureIndex = lecIdx
	e.LectureTitle = title
	e.OriginalContent = content
	e.Textarea.SetValue(content)
	e.Textarea.Focus()
	e.Textarea.CursorEnd()
	e.resize()
}

// Close discards the session.
func (e *ContentEditor) Close() {
	e.Active = false
	e.Textarea.Blur()
	e.ExitConfirm.Hide()
}

// HasUnsavedChanges reports whether the draft differs from the content the
// session opened with.
func (e *ContentEditor) HasUnsavedChanges() bool {
	return e.Textarea.Value() != e.OriginalContent
}

// Value returns the current draft.
func (e *ContentEditor) Value() string {
	return e.Textarea.Value()
}

// SetSize adjusts the modal to the terminal dimensions.
func (e *ContentEditor) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.resize()
}

func (e *ContentEditor) resize() {
	w := e.width - 8
	if w < 20 {
		w = 20
	}
	h := e.height - 8
	if h < 5 {
		h = 5
	}
	e.Textarea.SetWidth(w)
	e.Textarea.SetHeight(h)
}

// Update handles input while the editor is open. It returns the save flag
// when the user commits the draft with ctrl+s.
func (e *ContentEditor) Update(msg tea.Msg) (save bool, cmd tea.Cmd) {
	if !e.Active {
		return false, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		if e.ExitConfirm.Active() {
			return false, e.ExitConfirm.Update(key)
		}

		switch key.String() {
		case "ctrl+s":
			return true, nil

		case "esc":
			if !e.HasUnsavedChanges() {
				e.Close()
				return false, nil
			}
			e.ExitConfirm.ShowInline(
				"Discard changes?", true,
				func() tea.Cmd {
					e.Close()
					return nil
				},
				func() tea.Cmd { return nil },
			)
			return false, nil
		}
	}

	e.Textarea, cmd = e.Textarea.Update(msg)
	return false, cmd
}

// View renders the editor modal.
func (e *ContentEditor) View() string {
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

	header := titleStyle.Render(fmt.Sprintf("Editing: %s", e.LectureTitle))
	footer := helpStyle.Render("ctrl+s save • esc close")
	if e.ExitConfirm.Active() {
		footer = e.ExitConfirm.ViewWithWidth(e.Textarea.Width())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, header, "", e.Textarea.View(), "", footer)
	return borderStyle.Render(body)
}
