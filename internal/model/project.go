package model

import (
	"fmt"
	"strings"
)

// Status is the board column a project belongs to.
type Status int

// Project status values. A project is always in exactly one of them.
const (
	StatusActive Status = iota
	StatusFinished
)

// Statuses lists every status in board order.
var Statuses = []Status{StatusActive, StatusFinished}

// String returns the lowercase name used in config, commands and the journal.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Heading returns the column heading, e.g. "ACTIVE PROJECTS".
func (s Status) Heading() string {
	return strings.ToUpper(s.String()) + " PROJECTS"
}

// ParseStatus converts "active" or "finished" (any case) to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("unknown project status %q", s)
	}
}

// Project is a single card on the board.
type Project struct {
	// ID is assigned by the store at creation and never changes.
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// People is the number of people assigned to the project.
	People int    `json:"people"`
	Status Status `json:"status"`
}

// PeopleLabel formats the assignee count: "1 person" or "N persons".
func (p Project) PeopleLabel() string {
	if p.People == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d persons", p.People)
}
