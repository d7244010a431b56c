package testutil

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/nhle/project-board/internal/journal"
	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
)

// NewTestStore creates an empty MemoryStore that logs through the test.
func NewTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	return store.NewMemoryStore(store.WithLogger(zaptest.NewLogger(t)))
}

// NewTestJournal creates an in-memory Journal with all migrations applied.
// It automatically closes the journal when the test completes.
func NewTestJournal(t *testing.T) *journal.Journal {
	t.Helper()

	j, err := journal.Open(":memory:", zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("creating test journal: %v", err)
	}

	t.Cleanup(func() {
		if err := j.Close(); err != nil {
			t.Errorf("closing test journal: %v", err)
		}
	})

	return j
}

// Recorder collects every snapshot a store delivers to it.
type Recorder struct {
	Calls [][]model.Project
}

// Listen implements store.Listener.
func (r *Recorder) Listen(projects []model.Project) {
	r.Calls = append(r.Calls, projects)
}

// Last returns the most recent snapshot, or nil when none arrived.
func (r *Recorder) Last() []model.Project {
	if len(r.Calls) == 0 {
		return nil
	}
	return r.Calls[len(r.Calls)-1]
}
