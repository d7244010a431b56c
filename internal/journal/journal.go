// Package journal records board activity in a SQLite database.
//
// The journal is a plain store listener: it never sees individual
// operations, only consecutive snapshots, and derives create and move
// events by comparing each snapshot with the previous one.
package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/nhle/project-board/internal/model"
	"github.com/nhle/project-board/internal/store"
)

// Journal persists change events derived from store snapshots.
type Journal struct {
	db     *sqlx.DB
	logger *zap.Logger
	now    func() time.Time

	mu   sync.Mutex
	last map[string]model.Status
}

// Open opens (or creates) the SQLite database at path and runs any
// pending schema migrations. Use ":memory:" for a session-only journal.
func Open(path string, logger *zap.Logger) (*Journal, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Every connection to ":memory:" is a separate database, so keep one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	j := &Journal{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		last:   make(map[string]model.Status),
	}
	if err := j.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	logger.Debug("journal opened", zap.String("path", path))
	return j, nil
}

// Close closes the underlying database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (j *Journal) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := j.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = j.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := j.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Listener returns a store listener that records every change.
func (j *Journal) Listener() store.Listener {
	return j.Observe
}

// Observe diffs projects against the previously observed snapshot and
// records the resulting events. Write failures are logged, not returned:
// the store must not be affected by the journal.
func (j *Journal) Observe(projects []model.Project) {
	j.mu.Lock()
	events := Diff(j.last, projects)
	next := make(map[string]model.Status, len(projects))
	for _, p := range projects {
		next[p.ID] = p.Status
	}
	j.last = next
	j.mu.Unlock()

	if len(events) == 0 {
		return
	}

	now := j.now()
	for i := range events {
		events[i].OccurredAt = now
	}

	if err := j.Record(context.Background(), events); err != nil {
		j.logger.Error("recording board changes", zap.Error(err), zap.Int("events", len(events)))
	}
}

// Diff derives change events from two consecutive snapshots. Projects
// absent from prev are creates; projects whose status differs are moves.
// Events follow snapshot order.
func Diff(prev map[string]model.Status, projects []model.Project) []model.ChangeEvent {
	var events []model.ChangeEvent
	for _, p := range projects {
		old, seen := prev[p.ID]
		switch {
		case !seen:
			events = append(events, model.ChangeEvent{
				ProjectID: p.ID,
				Title:     p.Title,
				Operation: model.ChangeOperationCreate,
				From:      p.Status,
				To:        p.Status,
			})
		case old != p.Status:
			events = append(events, model.ChangeEvent{
				ProjectID: p.ID,
				Title:     p.Title,
				Operation: model.ChangeOperationMove,
				From:      old,
				To:        p.Status,
			})
		}
	}
	return events
}

// Record inserts a batch of events in one transaction.
func (j *Journal) Record(ctx context.Context, events []model.ChangeEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := j.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO change_events (
			project_id, title, operation, from_status, to_status, occurred_at
		) VALUES (
			:project_id, :title, :operation, :from_status, :to_status, :occurred_at
		)`

	for _, e := range events {
		if e.OccurredAt.IsZero() {
			e.OccurredAt = j.now()
		}
		if _, err := tx.NamedExecContext(ctx, query, e); err != nil {
			return fmt.Errorf("inserting %s event for project %s: %w", e.Operation, e.ProjectID, err)
		}
	}

	return tx.Commit()
}

// Recent returns up to limit events, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]model.ChangeEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	var events []model.ChangeEvent
	err := j.db.SelectContext(ctx, &events, `
		SELECT id, project_id, title, operation, from_status, to_status, occurred_at
		FROM change_events
		ORDER BY id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying change events: %w", err)
	}
	return events, nil
}

// ForProject returns every event for one project, oldest first.
func (j *Journal) ForProject(ctx context.Context, projectID string) ([]model.ChangeEvent, error) {
	var events []model.ChangeEvent
	err := j.db.SelectContext(ctx, &events, `
		SELECT id, project_id, title, operation, from_status, to_status, occurred_at
		FROM change_events
		WHERE project_id = ?
		ORDER BY id`, projectID)
	if err != nil {
		return nil, fmt.Errorf("querying events for project %s: %w", projectID, err)
	}
	return events, nil
}

// Count returns the total number of recorded events.
func (j *Journal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM change_events"); err != nil {
		return 0, fmt.Errorf("counting change events: %w", err)
	}
	return n, nil
}
