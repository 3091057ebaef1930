package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // Simple inline message
	ConfirmTypeDialog                         // Full dialog with border and centered layout
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string           // Title for dialog type (optional)
	Message     string           // Main confirmation message
	Warning     string           // Optional warning text (shown in orange)
	Destructive bool             // If true, Yes is red, No is green
	Type        ConfirmationType // Visual style
	Width       int              // Width for dialog type
	Height      int              // Height for dialog type
}

// ConfirmationModel handles confirmation prompts
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
	viewWidth int // Width for centering inline messages
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events for the confirmation
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	switch m.config.Type {
	case ConfirmTypeDialog:
		return m.renderDialog()
	default:
		return m.renderInline()
	}
}

// ViewWithWidth renders the confirmation with a specific width for centering
func (m *ConfirmationModel) ViewWithWidth(width int) string {
	m.viewWidth = width
	return m.View()
}

// renderInline renders a simple inline confirmation message
func (m *ConfirmationModel) renderInline() string {
	message := fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))

	if m.viewWidth > 0 && lipgloss.Width(message) < m.viewWidth {
		return lipgloss.NewStyle().
			Width(m.viewWidth).
			Align(lipgloss.Center).
			Render(message)
	}

	return message
}

// renderDialog renders a full dialog with border
func (m *ConfirmationModel) renderDialog() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170"))

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("214"))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	width := m.config.Width
	if width == 0 {
		width = 60
	}
	height := m.config.Height
	if height == 0 {
		height = 8
	}

	contentWidth := width - 4
	center := lipgloss.NewStyle().
		Width(contentWidth - 4).
		Align(lipgloss.Center)

	var b strings.Builder

	if m.config.Title != "" {
		b.WriteString(center.Render(headerStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}

	if m.config.Message != "" {
		message := m.config.Message
		if len(message) < contentWidth-4 {
			message = center.Render(message)
		}
		b.WriteString(message)
		b.WriteString("\n")
	}

	if m.config.Warning != "" {
		b.WriteString("\n")
		warning := warningStyle.Render(m.config.Warning)
		if lipgloss.Width(warning) < contentWidth-4 {
			warning = center.Render(warning)
		}
		b.WriteString(warning)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive)))

	return borderStyle.
		Width(width).
		Height(height).
		Render(b.String())
}

// ShowInline is a helper for a quick inline confirmation
func (m *ConfirmationModel) ShowInline(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.Show(ConfirmationConfig{
		Message:     message,
		Destructive: destructive,
		Type:        ConfirmTypeInline,
	}, onConfirm, onCancel)
}

// formatConfirmOptions renders the y/n hint, coloring the destructive
// choice red.
func formatConfirmOptions(destructive bool) string {
	yesStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	noStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	if destructive {
		yesStyle, noStyle = noStyle, yesStyle
	}
	return fmt.Sprintf("%s/%s", yesStyle.Render("y"), noStyle.Render("n"))
}
