// Package validation checks raw form values against simple field rules.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validatable describes one value and the rules it must satisfy.
// Nil constraints are skipped. Value is either a string or a number
// (any Go integer or float type).
type Validatable struct {
	Value     any
	Required  bool
	MinLength *int
	MaxLength *int
	Min       *float64
	Max       *float64
}

// Len returns a pointer for use as MinLength or MaxLength.
func Len(n int) *int { return &n }

// Num returns a pointer for use as Min or Max.
func Num(f float64) *float64 { return &f }

// Validate reports whether v satisfies all of its rules.
//
// Length and numeric bounds are exclusive: a MinLength of 5 requires at
// least 6 characters and a Min of 1 requires at least 2.
func Validate(v Validatable) bool {
	valid := true

	if v.Required {
		valid = valid && utf8.RuneCountInString(strings.TrimSpace(stringForm(v.Value))) != 0
	}

	if s, ok := v.Value.(string); ok {
		n := utf8.RuneCountInString(strings.TrimSpace(s))
		if v.MinLength != nil {
			valid = valid && n > *v.MinLength
		}
		if v.MaxLength != nil {
			valid = valid && n < *v.MaxLength
		}
	}

	if f, ok := number(v.Value); ok {
		if v.Min != nil {
			valid = valid && f > *v.Min
		}
		if v.Max != nil {
			valid = valid && f < *v.Max
		}
	}

	return valid
}

func stringForm(value any) string {
	switch val := value.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

func number(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
