package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/outline"
)

// curriculumLoadedMsg signals that the initial fetch settled.
type curriculumLoadedMsg struct {
	err error
}

// syncDoneMsg signals that a coordinator mutation settled. The store already
// reflects the outcome; the message only carries the status line.
type syncDoneMsg struct {
	action string
	err    error
}

func (m syncDoneMsg) status() string {
	if m.err != nil {
		return fmt.Sprintf("× %s failed: %v", m.action, m.err)
	}
	return "✓ " + m.action
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

func (e *EditorModel) loadCurriculum() tea.Cmd {
	return func() tea.Msg {
		err := e.coord.Load(context.Background())
		return curriculumLoadedMsg{err: err}
	}
}

func (e *EditorModel) addSectionCmd(title string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.coord.AddSection(context.Background(), title)
		return syncDoneMsg{action: fmt.Sprintf("Added section %q", title), err: err}
	}
}

func (e *EditorModel) addLectureCmd(secIdx int, title string) tea.Cmd {
	return func() tea.Msg {
		_, err := e.coord.AddLecture(context.Background(), secIdx, title)
		return syncDoneMsg{action: fmt.Sprintf("Added lecture %q", title), err: err}
	}
}

func (e *EditorModel) renameSectionCmd(secIdx int, title string) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.RenameSection(context.Background(), secIdx, title)
		return syncDoneMsg{action: fmt.Sprintf("Renamed section to %q", title), err: err}
	}
}

func (e *EditorModel) renameLectureCmd(secIdx, lecIdx int, title string) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.RenameLecture(context.Background(), secIdx, lecIdx, title)
		return syncDoneMsg{action: fmt.Sprintf("Renamed lecture to %q", title), err: err}
	}
}

func (e *EditorModel) deleteSectionCmd(id models.EntityID) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.DeleteSection(context.Background(), id)
		return syncDoneMsg{action: "Deleted section", err: err}
	}
}

func (e *EditorModel) deleteLectureCmd(secIdx int, id models.EntityID) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.DeleteLecture(context.Background(), secIdx, id)
		return syncDoneMsg{action: "Deleted lecture", err: err}
	}
}

func (e *EditorModel) saveBodyCmd(secIdx int, lecture models.Lecture) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.UpdateLectureBody(context.Background(), secIdx, lecture)
		return syncDoneMsg{action: fmt.Sprintf("Saved %q", lecture.Title), err: err}
	}
}

func (e *EditorModel) moveSectionCmd(from, to int) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.MoveSection(context.Background(), from, to)
		return syncDoneMsg{action: "Moved section", err: err}
	}
}

func (e *EditorModel) moveLectureCmd(mv lectureMove) tea.Cmd {
	return func() tea.Msg {
		err := e.coord.MoveLecture(context.Background(), mv.fromSec, mv.fromLec, mv.toSec, mv.toLec)
		return syncDoneMsg{action: "Moved lecture", err: err}
	}
}

func (e *EditorModel) copyOutlineCmd() tea.Cmd {
	return func() tea.Msg {
		cur := models.Curriculum{Title: e.store.Title(), Sections: e.store.Sections()}
		if err := clipboard.WriteAll(outline.Render(cur)); err != nil {
			return syncDoneMsg{action: "Copy outline", err: err}
		}
		return StatusMsg("✓ Outline copied to clipboard")
	}
}
