package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/project-board/internal/keys"
	"github.com/nhle/project-board/internal/model"
)

type fakeSource struct {
	events []model.ChangeEvent
	err    error
	limit  int
}

func (f *fakeSource) Recent(_ context.Context, limit int) ([]model.ChangeEvent, error) {
	f.limit = limit
	return f.events, f.err
}

func TestLoadAndRender(t *testing.T) {
	src := &fakeSource{events: []model.ChangeEvent{
		{
			ProjectID:  "p1",
			Title:      "Build API",
			Operation:  model.ChangeOperationMove,
			From:       model.StatusActive,
			To:         model.StatusFinished,
			OccurredAt: time.Now(),
		},
		{
			ProjectID:  "p1",
			Title:      "Build API",
			Operation:  model.ChangeOperationCreate,
			OccurredAt: time.Now(),
		},
	}}
	m := New(src, 10, keys.DefaultKeyMap(), 80, 20)

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Loading")

	m, _ = m.Update(cmd())
	assert.Equal(t, 10, src.limit)

	view := m.View()
	assert.Contains(t, view, "Build API")
	assert.Contains(t, view, "move")
	assert.Contains(t, view, "finished")
	assert.Contains(t, view, "create")
}

func TestEmptyAndErrorStates(t *testing.T) {
	m := New(&fakeSource{}, 10, keys.DefaultKeyMap(), 80, 20)
	m, _ = m.Update(LoadedMsg{})
	assert.Contains(t, m.View(), "No activity yet.")

	m, _ = m.Update(LoadedMsg{Err: errors.New("disk on fire")})
	assert.Contains(t, m.View(), "disk on fire")
}

func TestBackKey(t *testing.T) {
	m := New(&fakeSource{}, 10, keys.DefaultKeyMap(), 80, 20)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, BackMsg{}, cmd())
}
