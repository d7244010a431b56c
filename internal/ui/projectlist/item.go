package projectlist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/dnd"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/theme"
)

// DragSource is implemented by views that can be picked up and carried.
type DragSource interface {
	DragStart(t *dnd.Transfer)
	DragEnd(t *dnd.Transfer)
}

// Item renders a single project card and originates drags.
type Item struct {
	Project model.Project
	logger  *zap.Logger
}

// NewItem wraps p for display in a column.
func NewItem(p model.Project, logger *zap.Logger) Item {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Item{Project: p, logger: logger}
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Project.Title }

// Title returns the project title.
func (i Item) Title() string { return i.Project.Title }

// Description returns the project description.
func (i Item) Description() string { return i.Project.Description }

// PeopleText returns the assignment line, e.g. "3 persons assigned".
func (i Item) PeopleText() string {
	return i.Project.PeopleLabel() + " assigned"
}

// DragStart puts the project ID on the transfer and allows a move.
func (i Item) DragStart(t *dnd.Transfer) {
	t.SetData(dnd.MediaTypePlain, i.Project.ID)
	t.SetEffectAllowed(dnd.EffectMove)
	i.logger.Debug("drag start", zap.String("id", i.Project.ID))
}

// DragEnd does not change any state.
func (i Item) DragEnd(_ *dnd.Transfer) {
	i.logger.Debug("drag end", zap.String("id", i.Project.ID))
}

var _ DragSource = Item{}

// cardDelegate implements list.ItemDelegate for project cards.
type cardDelegate struct {
	// st is shared with the owning Model so focus and drag state changes
	// are visible without rebuilding the delegate.
	st *state
}

// Height returns the number of lines each card takes.
func (d cardDelegate) Height() int {
	if d.st.showIDs {
		return 4
	}
	return 3
}

// Spacing returns the number of blank lines between cards.
func (d cardDelegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a project card.
func (d cardDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	item, ok := li.(Item)
	if !ok {
		return
	}

	width := m.Width() - 3
	if width < 10 {
		width = 10
	}

	lines := []string{
		ansi.Truncate(item.Title(), width, "…"),
	}
	if d.st.showIDs {
		lines = append(lines, theme.DimmedStyle.Render(ansi.Truncate(item.Project.ID, width, "…")))
	}
	lines = append(lines,
		theme.DimmedStyle.Render(item.PeopleText()),
		ansi.Truncate(item.Description(), width, "…"),
	)
	card := strings.Join(lines, "\n")

	switch {
	case d.st.draggingID == item.Project.ID:
		card = theme.DraggedCardStyle.Render(card)
	case d.st.focused && index == m.Index():
		card = theme.SelectedCardStyle.Render(card)
	default:
		card = theme.CardStyle.Render(card)
	}

	fmt.Fprint(w, card)
}
