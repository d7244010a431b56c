package projectinput

import (
	"strconv"
	"strings"

	"github.com/nhle/project-board/internal/validation"
)

// RawInput is the form content exactly as typed.
type RawInput struct {
	Title       string
	Description string
	People      string
}

// Input is validated form content ready for the store.
type Input struct {
	Title       string
	Description string
	People      int
}

// Gather validates raw and converts it to an Input. Each field is checked
// independently; the result is ok only if all three pass. A people value
// that is not an integer fails validation.
func Gather(raw RawInput) (Input, bool) {
	title := validation.Validatable{
		Value:    raw.Title,
		Required: true,
	}
	description := validation.Validatable{
		Value:     raw.Description,
		Required:  true,
		MinLength: validation.Len(5),
	}

	people, err := strconv.Atoi(strings.TrimSpace(raw.People))
	peopleOK := err == nil && validation.Validate(validation.Validatable{
		Value:    people,
		Required: true,
		Min:      validation.Num(1),
	})

	if !validation.Validate(title) || !validation.Validate(description) || !peopleOK {
		return Input{}, false
	}

	return Input{
		Title:       raw.Title,
		Description: raw.Description,
		People:      people,
	}, true
}
