package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/project-board/internal/model"
)

// recorder captures every snapshot delivered to a listener.
type recorder struct {
	calls [][]model.Project
}

func (r *recorder) listen(projects []model.Project) {
	r.calls = append(r.calls, projects)
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func TestAddProject(t *testing.T) {
	s := NewMemoryStore()
	var a, b recorder
	s.AddListener(a.listen)
	s.AddListener(b.listen)

	p := s.AddProject("Build API", "Create REST endpoints", 3)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, model.StatusActive, p.Status)
	assert.Len(t, s.Projects(), 1)

	for _, r := range []*recorder{&a, &b} {
		require.Len(t, r.calls, 1)
		require.Len(t, r.calls[0], 1)
		assert.Equal(t, p, r.calls[0][0])
	}
}

func TestAddProjectGeneratesUniqueIDs(t *testing.T) {
	s := NewMemoryStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		p := s.AddProject("t", "description", 2)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestAddProjectPreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore(WithIDGenerator(sequentialIDs()))
	s.AddProject("first", "description", 2)
	s.AddProject("second", "description", 2)
	s.AddProject("third", "description", 2)

	var titles []string
	for _, p := range s.Projects() {
		titles = append(titles, p.Title)
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles)
}

func TestListenerNotCalledOnRegistration(t *testing.T) {
	s := NewMemoryStore()
	s.AddProject("existing", "description", 2)

	var r recorder
	s.AddListener(r.listen)
	assert.Empty(t, r.calls)
}

func TestListenersCalledInRegistrationOrder(t *testing.T) {
	s := NewMemoryStore()
	var order []string
	s.AddListener(func([]model.Project) { order = append(order, "first") })
	s.AddListener(func([]model.Project) { order = append(order, "second") })
	s.AddListener(func([]model.Project) { order = append(order, "third") })

	s.AddProject("t", "description", 2)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := NewMemoryStore()
	var r recorder
	s.AddListener(func(projects []model.Project) {
		projects[0].Title = "mutated by listener"
		r.listen(projects)
	})
	var other recorder
	s.AddListener(other.listen)

	s.AddProject("original", "description", 2)

	assert.Equal(t, "original", s.Projects()[0].Title)
	require.Len(t, other.calls, 1)
	assert.Equal(t, "original", other.calls[0][0].Title)
}

func TestMoveProjectSameStatusIsNoop(t *testing.T) {
	s := NewMemoryStore()
	p := s.AddProject("t", "description", 2)
	var r recorder
	s.AddListener(r.listen)
	before := s.Projects()

	moved := s.MoveProject(p.ID, model.StatusActive)

	assert.False(t, moved)
	assert.Empty(t, r.calls)
	assert.Equal(t, before, s.Projects())
}

func TestMoveProjectChangesStatus(t *testing.T) {
	s := NewMemoryStore(WithIDGenerator(sequentialIDs()))
	first := s.AddProject("first", "description", 2)
	second := s.AddProject("second", "description", 2)
	var r recorder
	s.AddListener(r.listen)

	moved := s.MoveProject(second.ID, model.StatusFinished)

	require.True(t, moved)
	require.Len(t, r.calls, 1)
	snapshot := r.calls[0]
	require.Len(t, snapshot, 2)
	assert.Equal(t, first.ID, snapshot[0].ID)
	assert.Equal(t, model.StatusActive, snapshot[0].Status)
	assert.Equal(t, second.ID, snapshot[1].ID)
	assert.Equal(t, model.StatusFinished, snapshot[1].Status)

	assert.True(t, s.MoveProject(second.ID, model.StatusActive))
	assert.Len(t, r.calls, 2)
}

func TestMoveProjectUnknownIDIsNoop(t *testing.T) {
	s := NewMemoryStore()
	s.AddProject("t", "description", 2)
	var r recorder
	s.AddListener(r.listen)
	before := s.Projects()

	assert.NotPanics(t, func() {
		assert.False(t, s.MoveProject("does-not-exist", model.StatusFinished))
	})
	assert.Empty(t, r.calls)
	assert.Equal(t, before, s.Projects())
}

func TestAddThenMove(t *testing.T) {
	s := NewMemoryStore()
	var r recorder
	s.AddListener(r.listen)

	p := s.AddProject("Build API", "Create REST endpoints", 3)
	s.MoveProject(p.ID, model.StatusFinished)

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, model.StatusFinished, projects[0].Status)

	require.Len(t, r.calls, 2)
	assert.Equal(t, model.StatusActive, r.calls[0][0].Status)
	assert.Equal(t, model.StatusFinished, r.calls[1][0].Status)
}

func TestRemoveListener(t *testing.T) {
	s := NewMemoryStore()
	var kept, removed recorder
	s.AddListener(kept.listen)
	remove := s.AddListener(removed.listen)

	s.AddProject("one", "description", 2)
	remove()
	remove()
	s.AddProject("two", "description", 2)

	assert.Len(t, kept.calls, 2)
	assert.Len(t, removed.calls, 1)
}

func TestListenerMayReadStore(t *testing.T) {
	s := NewMemoryStore()
	var seen int
	s.AddListener(func([]model.Project) {
		seen = len(s.Projects())
	})

	s.AddProject("t", "description", 2)
	assert.Equal(t, 1, seen)
}
