package store

import "github.com/nhle/project-board/internal/model"

// Listener receives a copy of the full project collection after every
// change. It must not retain assumptions about being called only once
// per user action.
type Listener func(projects []model.Project)

// Store defines the project board state shared by every view.
type Store interface {
	// AddProject appends a new active project and notifies listeners.
	// Inputs are not validated here.
	AddProject(title, description string, people int) model.Project

	// MoveProject sets the status of the project with the given ID.
	// Unknown IDs and unchanged statuses are silent no-ops; the result
	// reports whether the project actually moved.
	MoveProject(id string, status model.Status) bool

	// AddListener registers l for future notifications. It is not called
	// with the current state. The returned func removes the registration.
	AddListener(l Listener) (remove func())

	// Projects returns a copy of the current collection in insertion order.
	Projects() []model.Project
}
