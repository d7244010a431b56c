package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/project-board/internal/keys"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/theme"
)

// Source provides recent journal events.
type Source interface {
	Recent(ctx context.Context, limit int) ([]model.ChangeEvent, error)
}

// BackMsg signals the parent to navigate back to the board.
type BackMsg struct{}

// LoadedMsg carries the events read from the journal.
type LoadedMsg struct {
	Events []model.ChangeEvent
	Err    error
}

// Model is the activity history view.
type Model struct {
	source   Source
	limit    int
	events   []model.ChangeEvent
	err      error
	loading  bool
	viewport viewport.Model
	keys     *keys.KeyMap
	width    int
	height   int
}

// New creates a new history view model.
func New(src Source, limit int, k *keys.KeyMap, width, height int) Model {
	vp := viewport.New(width, height-2)
	vp.Style = lipgloss.NewStyle()

	return Model{
		source:   src,
		limit:    limit,
		viewport: vp,
		keys:     k,
		width:    width,
		height:   height,
	}
}

// Init loads the latest events.
func (m *Model) Init() tea.Cmd {
	m.loading = true
	return m.load()
}

func (m Model) load() tea.Cmd {
	src, limit := m.source, m.limit
	return func() tea.Msg {
		events, err := src.Recent(context.Background(), limit)
		return LoadedMsg{Events: events, Err: err}
	}
}

// Update handles messages for the history view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.events = msg.Events
		m.err = msg.Err
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Back) {
			return m, func() tea.Msg { return BackMsg{} }
		}
	}

	// Delegate to viewport for scrolling (j/k, up/down, pgup/pgdn)
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m Model) View() string {
	placeholder := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	switch {
	case m.loading:
		return placeholder.Render("Loading history...")
	case m.err != nil:
		return placeholder.Foreground(theme.ColorRed).Render("Could not load history:\n" + m.err.Error())
	case len(m.events) == 0:
		return placeholder.Render("No activity yet.")
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Render("Activity")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", m.viewport.View())
}

func (m Model) renderContent() string {
	lines := make([]string, 0, len(m.events))
	for _, e := range m.events {
		lines = append(lines, FormatEvent(e))
	}
	return strings.Join(lines, "\n")
}

// FormatEvent renders one event as a single line.
func FormatEvent(e model.ChangeEvent) string {
	when := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(e.OccurredAt.Local().Format("15:04:05"))
	op := theme.OperationStyle(e.Operation).Render(fmt.Sprintf("%-6s", e.Operation))

	var detail string
	switch e.Operation {
	case model.ChangeOperationMove:
		detail = theme.StatusStyle(e.From).Render(e.From.String()) + "→" +
			theme.StatusStyle(e.To).Render(e.To.String())
	default:
		detail = theme.StatusStyle(e.To).Render(e.To.String())
	}

	return fmt.Sprintf("%s  %s  %s  %s", when, op, e.Title, detail)
}

// SetSize updates the history view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 2
	m.viewport.SetContent(m.renderContent())
}
