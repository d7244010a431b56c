package projectlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/dnd"
	"github.com/nhle/project-board/internal/keys"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
	"github.com/nhle/project-board/internal/theme"
)

// DropTarget is implemented by views that accept dragged cards.
type DropTarget interface {
	// DragOver reports whether the target accepts t and, if so, shows
	// that it does.
	DragOver(t *dnd.Transfer) bool
	// Drop performs the transfer.
	Drop(t *dnd.Transfer)
	// DragLeave removes the acceptance highlight.
	DragLeave(t *dnd.Transfer)
}

// FilterByStatus returns the projects whose status is status, in order.
func FilterByStatus(projects []model.Project, status model.Status) []model.Project {
	var out []model.Project
	for _, p := range projects {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// state holds everything the store listener writes to. It lives on the
// heap so the listener and every copy of Model see the same values.
type state struct {
	list       list.Model
	assigned   []model.Project
	droppable  bool
	focused    bool
	showIDs    bool
	draggingID string
}

// Model is one board column bound to a single status.
type Model struct {
	category model.Status
	store    store.Store
	keys     *keys.KeyMap
	logger   *zap.Logger
	st       *state
	width    int
	height   int
}

// Options configures a column.
type Options struct {
	ShowIDs bool
	Logger  *zap.Logger
}

// New creates a column for category and subscribes it to s. The column
// starts empty; it only reflects projects after the next notification.
func New(s store.Store, category model.Status, k *keys.KeyMap, width, height int, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	st := &state{showIDs: opts.ShowIDs}
	l := list.New([]list.Item{}, cardDelegate{st: st}, width, height)
	l.Title = category.Heading()
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle
	st.list = l

	m := Model{
		category: category,
		store:    s,
		keys:     k,
		logger:   logger.With(zap.Stringer("column", category)),
		st:       st,
		width:    width,
		height:   height,
	}
	st.list.SetSize(m.innerWidth(), m.innerHeight())
	s.AddListener(m.onProjects)
	return m
}

// onProjects replaces the column's subset with the matching projects from
// the latest snapshot.
func (m Model) onProjects(projects []model.Project) {
	assigned := FilterByStatus(projects, m.category)
	m.st.assigned = assigned

	items := make([]list.Item, len(assigned))
	for i, p := range assigned {
		items[i] = NewItem(p, m.logger)
	}
	// Filtering is disabled, so SetItems never returns a command.
	_ = m.st.list.SetItems(items)

	m.logger.Debug("column rendered", zap.Int("projects", len(assigned)))
}

// Category returns the status this column shows.
func (m Model) Category() model.Status { return m.category }

// Projects returns the column's current subset.
func (m Model) Projects() []model.Project {
	out := make([]model.Project, len(m.st.assigned))
	copy(out, m.st.assigned)
	return out
}

// Droppable reports whether the column is highlighted as a drop target.
func (m Model) Droppable() bool { return m.st.droppable }

// SelectedItem returns the card under the cursor.
func (m Model) SelectedItem() (Item, bool) {
	item, ok := m.st.list.SelectedItem().(Item)
	return item, ok
}

// SelectByID moves the cursor to the project with the given ID.
func (m Model) SelectByID(id string) {
	for i, p := range m.st.assigned {
		if p.ID == id {
			m.st.list.Select(i)
			return
		}
	}
}

// SetFocused marks whether the column owns the cursor.
func (m Model) SetFocused(focused bool) { m.st.focused = focused }

// SetDragging marks the card being carried, or clears it with "".
func (m Model) SetDragging(id string) { m.st.draggingID = id }

// DragOver accepts plain-text payloads.
func (m Model) DragOver(t *dnd.Transfer) bool {
	if t == nil || !t.HasType(dnd.MediaTypePlain) {
		return false
	}
	m.st.droppable = true
	return true
}

// Drop moves the carried project into this column's status.
func (m Model) Drop(t *dnd.Transfer) {
	m.st.droppable = false
	if t == nil {
		return
	}
	id := t.GetData(dnd.MediaTypePlain)
	m.logger.Debug("drop", zap.String("id", id))
	m.store.MoveProject(id, m.category)
}

// DragLeave clears the drop highlight.
func (m Model) DragLeave(_ *dnd.Transfer) {
	m.st.droppable = false
}

var _ DropTarget = Model{}

// Update handles cursor movement within the column.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.st.list.CursorUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.st.list.CursorDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.st.list, cmd = m.st.list.Update(msg)
	return m, cmd
}

// View renders the column.
func (m Model) View() string {
	style := theme.ColumnStyle
	if m.st.droppable {
		style = theme.DroppableColumnStyle
	}

	var body string
	if len(m.st.assigned) == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.HeaderStyle.Render(m.category.Heading()),
			"",
			lipgloss.NewStyle().
				Foreground(theme.ColorGray).
				Render(emptyText(m.category)),
		)
	} else {
		body = m.st.list.View()
	}

	return style.
		Width(m.innerWidth()).
		Height(m.innerHeight()).
		Render(body)
}

func emptyText(s model.Status) string {
	if s == model.StatusActive {
		return "No projects yet.\nPress n to add one."
	}
	return fmt.Sprintf("Nothing %s yet.\nDrag a card here.", s)
}

// SetSize updates the column dimensions, including its border.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.st.list.SetSize(m.innerWidth(), m.innerHeight())
}

func (m Model) innerWidth() int {
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) innerHeight() int {
	h := m.height - 2
	if h < 3 {
		h = 3
	}
	return h
}
