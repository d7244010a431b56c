package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Validatable
		want bool
	}{
		{
			name: "empty required string",
			in:   Validatable{Value: "", Required: true},
			want: false,
		},
		{
			name: "whitespace required string",
			in:   Validatable{Value: "   ", Required: true},
			want: false,
		},
		{
			name: "short string under min length",
			in:   Validatable{Value: "ab", Required: true, MinLength: Len(3)},
			want: false,
		},
		{
			name: "length equal to min length is rejected",
			in:   Validatable{Value: "abc", MinLength: Len(3)},
			want: false,
		},
		{
			name: "length above min length",
			in:   Validatable{Value: "hello", MinLength: Len(3)},
			want: true,
		},
		{
			name: "min length counts trimmed text",
			in:   Validatable{Value: "  abc  ", MinLength: Len(3)},
			want: false,
		},
		{
			name: "length equal to max length is rejected",
			in:   Validatable{Value: "hello", MaxLength: Len(5)},
			want: false,
		},
		{
			name: "length below max length",
			in:   Validatable{Value: "hell", MaxLength: Len(5)},
			want: true,
		},
		{
			name: "zero not above min",
			in:   Validatable{Value: 0, Min: Num(1)},
			want: false,
		},
		{
			name: "value equal to min is rejected",
			in:   Validatable{Value: 1, Min: Num(1)},
			want: false,
		},
		{
			name: "within min and max",
			in:   Validatable{Value: 5, Min: Num(1), Max: Num(10)},
			want: true,
		},
		{
			name: "value equal to max is rejected",
			in:   Validatable{Value: 10.0, Max: Num(10)},
			want: false,
		},
		{
			name: "length rules skipped for numbers",
			in:   Validatable{Value: 7, MinLength: Len(100)},
			want: true,
		},
		{
			name: "numeric rules skipped for strings",
			in:   Validatable{Value: "0", Min: Num(1)},
			want: true,
		},
		{
			name: "required number",
			in:   Validatable{Value: 0, Required: true},
			want: true,
		},
		{
			name: "no rules",
			in:   Validatable{Value: ""},
			want: true,
		},
		{
			name: "nil value required",
			in:   Validatable{Required: true},
			want: false,
		},
		{
			name: "multibyte length counts characters",
			in:   Validatable{Value: "héllo", MinLength: Len(4), MaxLength: Len(6)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.in))
		})
	}
}
