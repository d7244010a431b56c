package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
	"github.com/nhle/project-board/internal/ui"
	"github.com/nhle/project-board/internal/ui/command"
	helpview "github.com/nhle/project-board/internal/ui/help"
	"github.com/nhle/project-board/internal/ui/history"
	"github.com/nhle/project-board/internal/ui/projectinput"
	"github.com/nhle/project-board/internal/ui/projectlist"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewBoard ViewState = iota
	ViewInput
	ViewHistory
	ViewHelp
	ViewCommand
)

// Options configures the root model.
type Options struct {
	ShowIDs      bool
	HistoryLimit int
	Logger       *zap.Logger
}

// Model is the root Bubble Tea model that manages view routing,
// layout, the board columns and the drag session.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	store        store.Store
	keys         *KeyMap
	columns      []projectlist.Model
	focus        int
	drag         dragSession
	inputView    projectinput.Model
	historyView  history.Model
	helpView     helpview.Model
	commandView  command.Model
	logger       *zap.Logger
	ready        bool
}

// New creates the root model. One column per status subscribes to s;
// events is where the history view reads from.
func New(s store.Store, events history.Source, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := DefaultKeyMap()

	columns := make([]projectlist.Model, len(model.Statuses))
	for i, status := range model.Statuses {
		columns[i] = projectlist.New(s, status, keys, 40, 24, projectlist.Options{
			ShowIDs: opts.ShowIDs,
			Logger:  logger,
		})
	}

	m := Model{
		currentView: ViewBoard,
		store:       s,
		keys:        keys,
		columns:     columns,
		inputView:   projectinput.New(s, logger, 80, 24),
		historyView: history.New(events, opts.HistoryLimit, keys, 80, 24),
		helpView:    helpview.New(keys, 80, 24),
		commandView: command.New(80, 24),
		logger:      logger,
	}
	m.setFocus(0)
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		colWidth := m.layout.ColumnWidth(len(m.columns))
		for i := range m.columns {
			m.columns[i].SetSize(colWidth, contentHeight)
		}
		m.inputView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case projectinput.ProjectCreatedMsg:
		m.logger.Info("project created",
			zap.String("id", msg.Project.ID),
			zap.String("title", msg.Project.Title),
		)
		m.currentView = ViewBoard
		m.setFocus(columnIndex(msg.Project.Status))
		m.columns[m.focus].SelectByID(msg.Project.ID)
		return m, nil

	case projectinput.ProjectInputCancelMsg:
		m.currentView = ViewBoard
		return m, nil

	case history.BackMsg:
		m.currentView = ViewBoard
		return m, nil

	case history.LoadedMsg:
		if msg.Err != nil {
			m.logger.Error("loading history", zap.Error(msg.Err))
		}
		var cmd tea.Cmd
		m.historyView, cmd = m.historyView.Update(msg)
		return m, cmd

	case command.CommandMsg:
		m.currentView = m.previousView
		return m, m.executeCommand(string(msg))

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Views that take text input get every other key.
		if m.currentView == ViewInput {
			break
		}

		switch msg.String() {
		case "?":
			if m.currentView == ViewCommand {
				break
			}
			if m.currentView == ViewHelp {
				m.currentView = m.previousView
				return m, nil
			}
			m.previousView = m.currentView
			m.currentView = ViewHelp
			return m, nil

		case ":":
			if m.currentView == ViewCommand {
				m.currentView = m.previousView
				return m, nil
			}
			if m.drag.active {
				break
			}
			m.previousView = m.currentView
			m.currentView = ViewCommand
			return m, m.commandView.Focus()

		case "esc":
			if m.currentView == ViewHelp || m.currentView == ViewCommand {
				m.currentView = m.previousView
				return m, nil
			}
		}

		if m.currentView == ViewBoard {
			return m.handleBoardKey(msg)
		}
	}

	// Delegate to active sub-view
	return m.updateActiveView(msg)
}

// handleBoardKey processes keys while the board is showing.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drag.active {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.hoverDrag(m.drag.over - 1)
		case key.Matches(msg, m.keys.Right):
			m.hoverDrag(m.drag.over + 1)
		case key.Matches(msg, m.keys.Grab):
			m.dropDrag()
		case key.Matches(msg, m.keys.Back):
			m.cancelDrag()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.Grab):
		m.startDrag()
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, m.openInput()

	case key.Matches(msg, m.keys.History):
		return m, m.openHistory()
	}

	var cmd tea.Cmd
	m.columns[m.focus], cmd = m.columns[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) openInput() tea.Cmd {
	m.previousView = m.currentView
	m.currentView = ViewInput
	return m.inputView.Start()
}

func (m *Model) openHistory() tea.Cmd {
	m.previousView = m.currentView
	m.currentView = ViewHistory
	return m.historyView.Init()
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewBoard:
		m.columns[m.focus], cmd = m.columns[m.focus].Update(msg)
	case ViewInput:
		m.inputView, cmd = m.inputView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	case ViewCommand:
		m.commandView, cmd = m.commandView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Project Board", m.boardStatus())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewBoard:
		cols := make([]string, len(m.columns))
		for i, col := range m.columns {
			cols[i] = col.View()
		}
		return m.layout.RenderColumns(cols...)
	case ViewInput:
		return m.inputView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	default:
		return ""
	}
}

// boardStatus summarizes the board for the header.
func (m Model) boardStatus() string {
	if m.drag.active {
		return fmt.Sprintf("moving %q → %s", m.drag.title, m.columns[m.drag.over].Category())
	}
	return fmt.Sprintf("%d active · %d finished",
		len(m.columns[columnIndex(model.StatusActive)].Projects()),
		len(m.columns[columnIndex(model.StatusFinished)].Projects()),
	)
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return ": close command | enter execute | esc back"
	case ViewInput:
		if m.inputView.Alert() != "" {
			return "enter dismiss"
		}
		return "enter next/submit | esc cancel"
	case ViewHistory:
		return "j/k scroll | esc back"
	default:
		if m.drag.active {
			return "h/l choose column | space drop | esc cancel"
		}
		return "q quit | ? help | n new | space pick up | h/l column | H history"
	}
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case "new", "new project":
		return m.openInput()
	case "history":
		return m.openHistory()
	case "help":
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return nil
	case "quit", "q":
		return tea.Quit
	}

	if status, err := model.ParseStatus(cmd); err == nil {
		if m.currentView == ViewBoard {
			m.moveSelected(status)
		}
		return nil
	}

	m.logger.Debug("unknown command", zap.String("command", cmd))
	return nil
}
