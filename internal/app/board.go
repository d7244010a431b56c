package app

import (
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/dnd"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/ui/projectlist"
)

// dragSession tracks a card being carried across columns with the keyboard.
// Only the transfer carries the project identity; the session just
// remembers which column is under the card.
type dragSession struct {
	active   bool
	transfer *dnd.Transfer
	source   projectlist.DragSource
	id       string
	title    string
	from     int
	over     int
	accepted bool
}

// startDrag picks up the card under the cursor in the focused column.
func (m *Model) startDrag() {
	item, ok := m.columns[m.focus].SelectedItem()
	if !ok {
		return
	}

	t := dnd.NewTransfer()
	item.DragStart(t)

	m.drag = dragSession{
		active:   true,
		transfer: t,
		source:   item,
		id:       item.Project.ID,
		title:    item.Project.Title,
		from:     m.focus,
		over:     m.focus,
	}
	for _, col := range m.columns {
		col.SetDragging(item.Project.ID)
	}
	m.drag.accepted = m.columns[m.focus].DragOver(t)
}

// hoverDrag moves the carried card to the column at idx.
func (m *Model) hoverDrag(idx int) {
	if !m.drag.active || idx < 0 || idx >= len(m.columns) || idx == m.drag.over {
		return
	}
	m.columns[m.drag.over].DragLeave(m.drag.transfer)
	m.drag.over = idx
	m.drag.accepted = m.columns[idx].DragOver(m.drag.transfer)
	m.setFocus(idx)
}

// dropDrag releases the card over the hovered column.
func (m *Model) dropDrag() {
	if !m.drag.active {
		return
	}
	target := m.columns[m.drag.over]
	if m.drag.accepted {
		target.Drop(m.drag.transfer)
	}
	m.endDrag()
	target.SelectByID(m.drag.id)
}

// cancelDrag abandons the drag without dropping and puts the cursor back
// on the card.
func (m *Model) cancelDrag() {
	if !m.drag.active {
		return
	}
	m.columns[m.drag.over].DragLeave(m.drag.transfer)
	m.endDrag()
	m.setFocus(m.drag.from)
	m.columns[m.drag.from].SelectByID(m.drag.id)
}

func (m *Model) endDrag() {
	m.drag.source.DragEnd(m.drag.transfer)
	for _, col := range m.columns {
		col.SetDragging("")
	}
	m.drag.active = false
}

// moveSelected carries the selected card straight into the column for
// status, going through the same drop protocol as a manual drag.
func (m *Model) moveSelected(status model.Status) {
	idx := columnIndex(status)
	if idx < 0 {
		return
	}
	m.startDrag()
	if !m.drag.active {
		return
	}
	m.hoverDrag(idx)
	m.logger.Debug("keyboard move",
		zap.String("id", m.drag.id),
		zap.Stringer("to", status),
	)
	m.dropDrag()
}

func (m *Model) setFocus(idx int) {
	if idx < 0 || idx >= len(m.columns) {
		return
	}
	m.focus = idx
	for i, col := range m.columns {
		col.SetFocused(i == idx)
	}
}

func columnIndex(status model.Status) int {
	for i, s := range model.Statuses {
		if s == status {
			return i
		}
	}
	return -1
}
