package store

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nhle/project-board/internal/model"
)

// listenerEntry pairs a listener with the handle used to remove it.
type listenerEntry struct {
	id uint64
	fn Listener
}

// MemoryStore implements Store with an in-process slice.
// Notifications are delivered synchronously, in registration order,
// before AddProject or MoveProject returns.
type MemoryStore struct {
	mu        sync.Mutex
	projects  []model.Project
	listeners []listenerEntry
	nextID    uint64
	newID     func() string
	logger    *zap.Logger
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *zap.Logger) Option {
	return func(s *MemoryStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		newID:  func() string { return uuid.New().String() },
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddProject creates an active project and notifies all listeners.
func (s *MemoryStore) AddProject(title, description string, people int) model.Project {
	s.mu.Lock()
	p := model.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      model.StatusActive,
	}
	s.projects = append(s.projects, p)
	s.mu.Unlock()

	s.logger.Debug("project added",
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.Int("people", p.People),
	)
	s.notify()
	return p
}

// MoveProject changes a project's status and notifies listeners if it
// actually changed.
func (s *MemoryStore) MoveProject(id string, status model.Status) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.projects {
		if s.projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 || s.projects[idx].Status == status {
		s.mu.Unlock()
		s.logger.Debug("move ignored",
			zap.String("id", id),
			zap.Stringer("status", status),
			zap.Bool("found", idx >= 0),
		)
		return false
	}
	from := s.projects[idx].Status
	s.projects[idx].Status = status
	s.mu.Unlock()

	s.logger.Debug("project moved",
		zap.String("id", id),
		zap.Stringer("from", from),
		zap.Stringer("to", status),
	)
	s.notify()
	return true
}

// AddListener registers l and returns a func that unregisters it.
func (s *MemoryStore) AddListener(l Listener) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: l})
	count := len(s.listeners)
	s.mu.Unlock()

	s.logger.Debug("listener added", zap.Int("listeners", count))

	var once sync.Once
	return func() {
		once.Do(func() { s.removeListener(id) })
	}
}

func (s *MemoryStore) removeListener(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.listeners {
		if e.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Projects returns a snapshot of the current collection.
func (s *MemoryStore) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *MemoryStore) snapshotLocked() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// notify hands each listener its own copy of the collection. Dispatch runs
// outside the lock so listeners may call back into the store.
func (s *MemoryStore) notify() {
	s.mu.Lock()
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, e := range listeners {
		s.mu.Lock()
		snapshot := s.snapshotLocked()
		s.mu.Unlock()
		e.fn(snapshot)
	}
}

var _ Store = (*MemoryStore)(nil)
