package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	grabbedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	pendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Strikethrough(true)

	tempStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	videoMarkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	previewBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	editCursorStyle = lipgloss.NewStyle().Reverse(true)
)

func (e *EditorModel) loadingView() string {
	return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center,
		"Loading curriculum...")
}

func (e *EditorModel) View() string {
	e.refresh()

	if e.content.Active {
		return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center,
			e.content.View())
	}
	if e.video.Active {
		return lipgloss.Place(e.width, e.height, lipgloss.Center, lipgloss.Center,
			e.video.View())
	}

	tree := e.renderTree()
	if e.showPreview {
		preview := e.renderPreview()
		if preview != "" {
			tree = lipgloss.JoinHorizontal(lipgloss.Top, tree, preview)
		}
	}

	var parts []string
	parts = append(parts, headerStyle.Render(e.headerTitle()))
	parts = append(parts, tree)
	if e.deleteConfirm.Active() {
		parts = append(parts, e.deleteConfirm.ViewWithWidth(e.width))
	} else {
		parts = append(parts, helpStyle.Render(e.helpLine()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (e *EditorModel) headerTitle() string {
	title := e.store.Title()
	if title == "" {
		title = "(untitled course)"
	}
	return title
}

func (e *EditorModel) helpLine() string {
	if e.grab.Active {
		return "↑/↓ move • esc/enter drop"
	}
	return "a add section • A add lecture • r rename • enter edit body • v video • d delete • g grab • y copy outline • p preview • q quit"
}

func (e *EditorModel) renderTree() string {
	if len(e.rows) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render("No sections yet. Press 'a' to add one.") +
			"\n" + e.renderAddPrompt()
	}

	var b strings.Builder
	secNum := 0
	for i, r := range e.rows {
		prefix := "  "
		if i == e.cursor {
			prefix = cursorStyle.Render("▸ ")
		}

		var line string
		if r.kind == sectionRow {
			secNum++
			line = e.renderSectionRow(r, secNum)
		} else {
			line = e.renderLectureRow(r)
		}

		grabbed := e.grab.Active && e.grab.Row() == r
		if grabbed {
			line = grabbedStyle.Render("≡ ") + line
		}

		b.WriteString(prefix + line + "\n")
	}
	b.WriteString(e.renderAddPrompt())
	return b.String()
}

func (e *EditorModel) renderSectionRow(r row, number int) string {
	sec := e.sections[r.secIdx]

	if e.edit.Active() && e.edit.Kind == editSection && e.edit.SectionIndex == r.secIdx {
		return sectionStyle.Render(fmt.Sprintf("%d. ", number)) + e.renderEditDraft()
	}

	title := sectionStyle.Render(fmt.Sprintf("%d. %s", number, sec.Title))
	switch {
	case e.store.IsPendingDelete(sec.ID.Key()):
		title = pendingStyle.Render(fmt.Sprintf("%d. %s", number, sec.Title))
	case sec.ID.Pending():
		title += tempStyle.Render(" (saving…)")
	}
	return title
}

func (e *EditorModel) renderLectureRow(r row) string {
	lec := e.sections[r.secIdx].Lectures[r.lecIdx]

	if e.edit.Active() && e.edit.Kind == editLecture &&
		e.edit.SectionIndex == r.secIdx && e.edit.LectureIndex == r.lecIdx {
		return "    " + e.renderEditDraft()
	}

	line := "    " + lec.Title
	if lec.VideoURL != "" {
		line += " " + videoMarkStyle.Render("▶")
	}

	switch {
	case e.store.IsPendingDelete(lec.ID.Key()):
		line = "    " + pendingStyle.Render(lec.Title)
	case lec.ID.Pending():
		line += tempStyle.Render(" (saving…)")
	}
	return line
}

// renderEditDraft shows the rename draft with a block cursor.
func (e *EditorModel) renderEditDraft() string {
	runes := []rune(e.edit.Draft)
	pos := e.edit.CursorPos

	var s string
	switch {
	case pos >= len(runes):
		s = string(runes) + editCursorStyle.Render(" ")
	default:
		s = string(runes[:pos]) + editCursorStyle.Render(string(runes[pos])) + string(runes[pos+1:])
	}

	if e.edit.ValidationError != "" {
		s += "  " + pendingStyle.Render(e.edit.ValidationError)
	}
	return s
}

// renderAddPrompt shows the new-title draft below the tree while an add
// session is open.
func (e *EditorModel) renderAddPrompt() string {
	if !e.edit.Active() {
		return ""
	}

	switch e.edit.Kind {
	case addSection:
		return "\n  New section: " + e.renderEditDraft()
	case addLecture:
		label := "New lecture"
		if e.edit.SectionIndex < len(e.sections) {
			label = fmt.Sprintf("New lecture in %q", e.sections[e.edit.SectionIndex].Title)
		}
		return "\n  " + label + ": " + e.renderEditDraft()
	}
	return ""
}

// renderPreview shows the selected lecture's body next to the tree.
func (e *EditorModel) renderPreview() string {
	r, ok := e.currentRow()
	if !ok || r.kind != lectureRow {
		return ""
	}
	lec := e.sections[r.secIdx].Lectures[r.lecIdx]

	w := e.width/2 - 4
	if w < 20 {
		return ""
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render(lec.Title))
	b.WriteString("\n\n")
	if lec.Content == "" {
		b.WriteString(tempStyle.Render("No content yet."))
	} else {
		b.WriteString(wordwrap.String(lec.Content, w))
	}
	if lec.VideoURL != "" {
		b.WriteString("\n\n")
		b.WriteString(videoMarkStyle.Render("▶ " + lec.VideoURL))
	}

	return previewBorder.Width(w).Render(b.String())
}
