package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/syllab/syllab-cli/pkg/models"
	"github.com/syllab/syllab-cli/pkg/store"
	"github.com/syllab/syllab-cli/pkg/syncer"
)

type sessionState int

const (
	loadingView sessionState = iota
	editorView
)

// StatusMsg carries a transient message for the status bar.
type StatusMsg string

// App is the top-level Bubble Tea model: it loads the curriculum, then hosts
// the editor.
type App struct {
	state     sessionState
	editor    *EditorModel
	width     int
	height    int
	statusMsg string
}

// NewApp wires the editor against a store and mutation coordinator.
func NewApp(st *store.Store, coord *syncer.Coordinator, settings *models.Settings) *App {
	return &App{
		state:  loadingView,
		editor: NewEditorModel(st, coord, settings),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.editor.Init(), a.editor.loadCurriculum())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case curriculumLoadedMsg:
		a.state = editorView
		if msg.err != nil {
			a.statusMsg = "× Load failed: " + msg.err.Error()
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	// Route everything else to the editor
	m, cmd := a.editor.Update(msg)
	if ed, ok := m.(*EditorModel); ok {
		a.editor = ed
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case loadingView:
		content = a.editor.loadingView()
	default:
		content = a.editor.View()
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}
