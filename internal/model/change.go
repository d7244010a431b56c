package model

import "time"

// ChangeOperation describes what happened to a project.
type ChangeOperation string

// ChangeOperation values recorded by the activity journal.
const (
	ChangeOperationCreate ChangeOperation = "create"
	ChangeOperationMove   ChangeOperation = "move"
)

// ChangeEvent is a single entry in the activity journal.
type ChangeEvent struct {
	ID        int64           `json:"id" db:"id"`
	ProjectID string          `json:"project_id" db:"project_id"`
	Title     string          `json:"title" db:"title"`
	Operation ChangeOperation `json:"operation" db:"operation"`

	// From is only meaningful for moves. Creates record From == To.
	From Status `json:"from" db:"from_status"`
	To   Status `json:"to" db:"to_status"`

	OccurredAt time.Time `json:"occurred_at" db:"occurred_at"`
}
