package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/store"
	"github.com/syllab/syllab-cli/pkg/syncer"
)

// EditorModel is the curriculum tree editor: a flattened list of section and
// lecture rows with inline rename, grab-and-move reordering, and modal
// editors for lecture content and video URLs. The store is the single source
// of truth; the model re-reads it on every update so background mutations
// from the coordinator show up on the next render.
type EditorModel struct {
	store    *store.Store
	coord    *syncer.Coordinator
	settings *models.Settings

	sections []models.Section
	rows     []row
	cursor   int

	edit          *EditState
	grab          *GrabState
	content       *ContentEditor
	video         *VideoEditor
	deleteConfirm *ConfirmationModel

	showPreview bool
	width       int
	height      int
}

// NewEditorModel creates the editor against a store and coordinator.
func NewEditorModel(st *store.Store, coord *syncer.Coordinator, settings *models.Settings) *EditorModel {
	if settings == nil {
		settings = models.DefaultSettings()
	}

	return &EditorModel{
		store:         st,
		coord:         coord,
		settings:      settings,
		edit:          NewEditState(),
		grab:          NewGrabState(),
		content:       NewContentEditor(),
		video:         NewVideoEditor(),
		deleteConfirm: NewConfirmation(),
		showPreview:   settings.UI.ShowPreview,
	}
}

func (e *EditorModel) Init() tea.Cmd {
	return nil
}

// SetSize propagates the terminal dimensions to the modal editors.
func (e *EditorModel) SetSize(width, height int) {
	e.width = width
	e.height = height
	e.content.SetSize(width, height)
	e.video.SetSize(width)
}

// refresh re-reads the store snapshot and recomputes the flat row list.
func (e *EditorModel) refresh() {
	e.sections = e.store.Sections()
	e.rows = flattenRows(e.sections)
	e.cursor = clampCursor(e.cursor, len(e.rows))
}

// currentRow returns the row under the cursor.
func (e *EditorModel) currentRow() (row, bool) {
	if e.cursor < 0 || e.cursor >= len(e.rows) {
		return row{}, false
	}
	return e.rows[e.cursor], true
}

func (e *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case curriculumLoadedMsg:
		e.refresh()
		return e, nil

	case syncDoneMsg:
		e.refresh()
		if e.grab.Active {
			e.followGrab()
		}
		return e, statusCmd(msg.status())

	case tea.KeyMsg:
		return e.handleKey(msg)
	}

	// Bubbles components consume non-key messages too (blink ticks).
	if e.content.Active {
		_, cmd := e.content.Update(msg)
		return e, cmd
	}
	if e.video.Active {
		_, cmd := e.video.Update(msg)
		return e, cmd
	}
	return e, nil
}

func (e *EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e.refresh()

	// Modal editors take input precedence.
	if e.content.Active {
		return e.handleContentKey(msg)
	}
	if e.video.Active {
		return e.handleVideoKey(msg)
	}
	if e.deleteConfirm.Active() {
		return e, e.deleteConfirm.Update(msg)
	}
	if e.edit.Active() {
		return e.handleEditKey(msg)
	}
	if e.grab.Active {
		return e.handleGrabKey(msg)
	}

	switch msg.String() {
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}

	case "down", "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}

	case "home":
		e.cursor = 0

	case "end":
		e.cursor = clampCursor(len(e.rows)-1, len(e.rows))

	case "a":
		e.edit.StartAddSection()

	case "A":
		if r, ok := e.currentRow(); ok {
			e.edit.StartAddLecture(r.secIdx)
		}

	case "r":
		if r, ok := e.currentRow(); ok {
			if r.kind == sectionRow {
				e.edit.StartSection(r.secIdx, e.sections[r.secIdx].Title)
			} else {
				e.edit.StartLecture(r.secIdx, r.lecIdx, e.sections[r.secIdx].Lectures[r.lecIdx].Title)
			}
		}

	case "d":
		return e.startDelete()

	case "enter", "c":
		if r, ok := e.currentRow(); ok && r.kind == lectureRow {
			lec := e.sections[r.secIdx].Lectures[r.lecIdx]
			e.content.Open(r.secIdx, r.lecIdx, lec.Title, lec.Content)
		}

	case "v":
		if r, ok := e.currentRow(); ok && r.kind == lectureRow {
			lec := e.sections[r.secIdx].Lectures[r.lecIdx]
			e.video.Open(r.secIdx, r.lecIdx, lec.Title, lec.VideoURL)
		}

	case "g", " ":
		if r, ok := e.currentRow(); ok {
			e.grab.Start(r)
		}

	case "p":
		e.showPreview = !e.showPreview

	case "y":
		return e, e.copyOutlineCmd()

	case "R":
		return e, e.loadCurriculum()

	case "q":
		return e, tea.Quit
	}

	return e, nil
}

func (e *EditorModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	handled, save := e.edit.HandleInput(msg)
	if !handled || !save {
		return e, nil
	}

	kind := e.edit.Kind
	secIdx := e.edit.SectionIndex
	lecIdx := e.edit.LectureIndex
	draft := e.edit.Draft
	original := e.edit.OriginalTitle
	e.edit.Reset()

	switch kind {
	case addSection:
		return e, e.addSectionCmd(draft)
	case addLecture:
		return e, e.addLectureCmd(secIdx, draft)
	case editSection:
		if draft == original {
			return e, nil
		}
		return e, e.renameSectionCmd(secIdx, draft)
	case editLecture:
		if draft == original {
			return e, nil
		}
		return e, e.renameLectureCmd(secIdx, lecIdx, draft)
	}
	return e, nil
}

func (e *EditorModel) handleGrabKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		return e.stepGrab(-1)

	case "down", "j":
		return e.stepGrab(1)

	case "esc", "enter", "g", " ":
		e.grab.Reset()
	}
	return e, nil
}

// stepGrab moves the grabbed row one step and fires the coordinator move.
// The grab position is advanced optimistically so rapid steps stay coherent
// while requests are still in flight.
func (e *EditorModel) stepGrab(delta int) (tea.Model, tea.Cmd) {
	if e.grab.Kind == sectionRow {
		from, to, ok := planSectionMove(e.grab.SecIdx, delta, len(e.sections))
		if !ok {
			return e, nil
		}
		e.grab.SecIdx = to
		return e, e.moveSectionCmd(from, to)
	}

	mv, ok := planLectureMove(e.sections, e.grab.SecIdx, e.grab.LecIdx, delta)
	if !ok {
		return e, nil
	}
	e.grab.SecIdx = mv.toSec
	e.grab.LecIdx = mv.toLec
	return e, e.moveLectureCmd(mv)
}

// followGrab keeps the cursor glued to the grabbed row after the store
// reshuffles under it.
func (e *EditorModel) followGrab() {
	if idx := rowIndexOf(e.rows, e.grab.Row()); idx >= 0 {
		e.cursor = idx
	}
}

func (e *EditorModel) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	save, cmd := e.content.Update(msg)
	if !save {
		return e, cmd
	}

	secIdx := e.content.SectionIndex
	lecIdx := e.content.LectureIndex
	body := e.content.Value()
	e.content.Close()

	if secIdx >= len(e.sections) || lecIdx >= len(e.sections[secIdx].Lectures) {
		return e, nil
	}
	lec := e.sections[secIdx].Lectures[lecIdx]
	lec.Content = body
	return e, e.saveBodyCmd(secIdx, lec)
}

func (e *EditorModel) handleVideoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	save, cmd := e.video.Update(msg)
	if !save {
		return e, cmd
	}

	secIdx := e.video.SectionIndex
	lecIdx := e.video.LectureIndex
	url := e.video.Value()
	e.video.Close()

	if secIdx >= len(e.sections) || lecIdx >= len(e.sections[secIdx].Lectures) {
		return e, nil
	}
	lec := e.sections[secIdx].Lectures[lecIdx]
	lec.VideoURL = url
	return e, e.saveBodyCmd(secIdx, lec)
}

func (e *EditorModel) startDelete() (tea.Model, tea.Cmd) {
	r, ok := e.currentRow()
	if !ok {
		return e, nil
	}

	if r.kind == sectionRow {
		sec := e.sections[r.secIdx]
		message := fmt.Sprintf("Delete section %q and its %d lectures?", sec.Title, len(sec.Lectures))
		e.deleteConfirm.ShowInline(message, true,
			func() tea.Cmd { return e.deleteSectionCmd(sec.ID) },
			func() tea.Cmd { return nil },
		)
		return e, nil
	}

	lec := e.sections[r.secIdx].Lectures[r.lecIdx]
	message := fmt.Sprintf("Delete lecture %q?", lec.Title)
	e.deleteConfirm.ShowInline(message, true,
		func() tea.Cmd { return e.deleteLectureCmd(r.secIdx, lec.ID) },
		func() tea.Cmd { return nil },
	)
	return e, nil
}
