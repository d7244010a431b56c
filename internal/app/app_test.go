package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
	"github.com/nhle/project-board/internal/ui/command"
	"github.com/nhle/project-board/internal/ui/projectinput"
	"github.com/nhle/project-board/tests/testutil"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestModel(t *testing.T) (Model, *store.MemoryStore) {
	t.Helper()
	s := testutil.NewTestStore(t)
	j := testutil.NewTestJournal(t)
	s.AddListener(j.Listener())

	m := New(s, j, Options{HistoryLimit: 10, Logger: zaptest.NewLogger(t)})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), s
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestDragCardToFinished(t *testing.T) {
	m, s := newTestModel(t)
	p := s.AddProject("Build API", "Create REST endpoints", 3)

	m = send(m, space)
	require.True(t, m.drag.active)
	assert.Equal(t, p.ID, m.drag.id)
	assert.Contains(t, m.View(), "moving")

	m = send(m, runes("l"))
	assert.Equal(t, 1, m.drag.over)
	assert.True(t, m.columns[1].Droppable())
	assert.False(t, m.columns[0].Droppable())

	m = send(m, space)
	assert.False(t, m.drag.active)
	assert.False(t, m.columns[1].Droppable())
	assert.Equal(t, model.StatusFinished, s.Projects()[0].Status)
	assert.Empty(t, m.columns[0].Projects())
	assert.Len(t, m.columns[1].Projects(), 1)
	assert.Equal(t, 1, m.focus)
}

func TestCancelDragLeavesProject(t *testing.T) {
	m, s := newTestModel(t)
	s.AddProject("Build API", "Create REST endpoints", 3)

	m = send(m, space, runes("l"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.drag.active)
	assert.False(t, m.columns[1].Droppable())
	assert.Equal(t, model.StatusActive, s.Projects()[0].Status)
	assert.Equal(t, 0, m.focus)
	item, ok := m.columns[0].SelectedItem()
	require.True(t, ok)
	assert.Equal(t, s.Projects()[0].ID, item.Project.ID)
}

func TestDropOnSourceColumnIsNoop(t *testing.T) {
	m, s := newTestModel(t)
	s.AddProject("Build API", "Create REST endpoints", 3)
	var rec testutil.Recorder
	s.AddListener(rec.Listen)

	m = send(m, space, space)

	assert.False(t, m.drag.active)
	assert.Equal(t, model.StatusActive, s.Projects()[0].Status)
	assert.Empty(t, rec.Calls)
}

func TestGrabOnEmptyColumnDoesNothing(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, space)
	assert.False(t, m.drag.active)
}

func TestPaletteMovesSelectedProject(t *testing.T) {
	m, s := newTestModel(t)
	s.AddProject("Build API", "Create REST endpoints", 3)

	m = send(m, runes(":"))
	assert.Equal(t, ViewCommand, m.currentView)

	m = send(m, command.CommandMsg("finished"))
	assert.Equal(t, ViewBoard, m.currentView)
	assert.Equal(t, model.StatusFinished, s.Projects()[0].Status)

	m = send(m, command.CommandMsg("active"))
	assert.Equal(t, model.StatusActive, s.Projects()[0].Status)
}

func TestProjectCreatedReturnsToBoard(t *testing.T) {
	m, s := newTestModel(t)

	m = send(m, runes("n"))
	assert.Equal(t, ViewInput, m.currentView)

	// q belongs to the form while it is open.
	m = send(m, runes("q"))
	assert.Equal(t, ViewInput, m.currentView)

	p := s.AddProject("Build API", "Create REST endpoints", 3)
	m = send(m, projectinput.ProjectCreatedMsg{Project: p})
	assert.Equal(t, ViewBoard, m.currentView)
	item, ok := m.columns[0].SelectedItem()
	require.True(t, ok)
	assert.Equal(t, p.ID, item.Project.ID)
}

func TestHistoryShowsJournal(t *testing.T) {
	m, s := newTestModel(t)
	p := s.AddProject("Build API", "Create REST endpoints", 3)
	s.MoveProject(p.ID, model.StatusFinished)

	updated, cmd := m.Update(runes("H"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, ViewHistory, m.currentView)

	m = send(m, cmd())
	view := m.View()
	assert.Contains(t, view, "Build API")
	assert.Contains(t, view, "move")

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	require.NotNil(t, cmd)
	m = send(m, cmd())
	assert.Equal(t, ViewBoard, m.currentView)
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(m, runes("?"))
	assert.Equal(t, ViewHelp, m.currentView)
	assert.Contains(t, m.View(), "Commands")
	m = send(m, runes("?"))
	assert.Equal(t, ViewBoard, m.currentView)
}

func TestHeaderCounts(t *testing.T) {
	m, s := newTestModel(t)
	s.AddProject("a", "Create REST endpoints", 2)
	p := s.AddProject("b", "Create REST endpoints", 2)
	s.MoveProject(p.ID, model.StatusFinished)

	assert.Contains(t, m.View(), "1 active · 1 finished")
}
