package domain

import (
	"fmt"
	"sort"
	"strings"
)

// FieldType is the value type of a schema field
type FieldType int

const (
	FieldText FieldType = iota + 1
	FieldInteger
)

func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	default:
		return fmt.Sprintf("field_type(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler
func (t FieldType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *FieldType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "text":
		*t = FieldText
	case "integer":
		*t = FieldInteger
	default:
		return fmt.Errorf("unknown field type %q", text)
	}
	return nil
}

// Validator checks a field value and returns the value to store. A failing
// validator returns a non-nil error describing why the value was rejected.
type Validator func(value interface{}) (interface{}, error)

// FieldSpec declares one field of a record
type FieldSpec struct {
	Name      string      `json:"name"`
	Type      FieldType   `json:"type"`
	Default   interface{} `json:"default,omitempty"`
	Choices   []string    `json:"choices,omitempty"`
	Validator Validator   `json:"-"`
}

// Check normalizes the value to the field's type and runs its validator
func (fs FieldSpec) Check(value interface{}) (interface{}, error) {
	var normalized interface{}
	switch fs.Type {
	case FieldText:
		s, ok := value.(string)
		if !ok {
			return nil, NewValidationError(fs.Name, fmt.Sprintf("expected text, got %T", value))
		}
		normalized = s
	case FieldInteger:
		n, ok := ToInt(value)
		if !ok {
			return nil, NewValidationError(fs.Name, fmt.Sprintf("expected integer, got %T", value))
		}
		normalized = n
	default:
		return nil, NewValidationError(fs.Name, "unsupported field type "+fs.Type.String())
	}

	if fs.Validator == nil {
		return normalized, nil
	}
	out, err := fs.Validator(normalized)
	if err != nil {
		if ve, ok := err.(*ValidationError); ok {
			return nil, ve
		}
		return nil, NewValidationError(fs.Name, err.Error())
	}
	return out, nil
}

// Schema is the ordered field list shared by validation, display and editing
type Schema []FieldSpec

// Field looks up a field by name
func (s Schema) Field(name string) (FieldSpec, bool) {
	for _, fs := range s {
		if fs.Name == name {
			return fs, true
		}
	}
	return FieldSpec{}, false
}

// Names returns the field names in schema order
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, fs := range s {
		names[i] = fs.Name
	}
	return names
}

// Defaults returns a field map holding each field's default value
func (s Schema) Defaults() Fields {
	out := make(Fields, len(s))
	for _, fs := range s {
		if fs.Default != nil {
			out[fs.Name] = fs.Default
			continue
		}
		switch fs.Type {
		case FieldInteger:
			out[fs.Name] = 0
		default:
			out[fs.Name] = ""
		}
	}
	return out
}

// Validate checks a complete field set. Unknown fields are rejected first,
// then every field runs through its validator in schema order; the first
// failure is returned. The returned map holds the normalized values.
func (s Schema) Validate(fields Fields) (Fields, error) {
	var unknown []string
	for name := range fields {
		if _, ok := s.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, NewValidationError(unknown[0], "unknown field")
	}

	out := make(Fields, len(s))
	for _, fs := range s {
		value, ok := fields[fs.Name]
		if !ok {
			return nil, NewValidationError(fs.Name, "missing value")
		}
		v, err := fs.Check(value)
		if err != nil {
			return nil, err
		}
		out[fs.Name] = v
	}
	return out, nil
}

// IntRange rejects integers outside [lo, hi]
func IntRange(lo, hi int) Validator {
	return func(value interface{}) (interface{}, error) {
		n, ok := ToInt(value)
		if !ok {
			return nil, fmt.Errorf("expected integer")
		}
		if n < lo || n > hi {
			return nil, fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return n, nil
	}
}

// OneOf accepts only the listed text values
func OneOf(choices ...string) Validator {
	return func(value interface{}) (interface{}, error) {
		s, _ := value.(string)
		for _, c := range choices {
			if s == c {
				return s, nil
			}
		}
		return nil, fmt.Errorf("must be one of %s", strings.Join(choices, ", "))
	}
}

// NonEmpty rejects blank text. Surrounding whitespace is trimmed.
func NonEmpty() Validator {
	return func(value interface{}) (interface{}, error) {
		s, _ := value.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			return nil, fmt.Errorf("must not be empty")
		}
		return s, nil
	}
}

// MaxLength rejects text longer than n runes
func MaxLength(n int) Validator {
	return func(value interface{}) (interface{}, error) {
		s, _ := value.(string)
		if len([]rune(s)) > n {
			return nil, fmt.Errorf("must be at most %d characters", n)
		}
		return s, nil
	}
}

// Chain runs validators in order, feeding each one's output to the next
func Chain(validators ...Validator) Validator {
	return func(value interface{}) (interface{}, error) {
		var err error
		for _, v := range validators {
			if value, err = v(value); err != nil {
				return nil, err
			}
		}
		return value, nil
	}
}

// Grades lists the letter grades a student record may carry
var Grades = []string{"A", "A-", "B+", "B", "B-", "C+", "C", "C-", "D+", "D", "F"}

const (
	MinStudentAge = 16
	MaxStudentAge = 99
)

// StudentSchema returns the field schema of the student records manager
func StudentSchema() Schema {
	return Schema{
		{Name: "name", Type: FieldText, Validator: Chain(NonEmpty(), MaxLength(100))},
		{Name: "age", Type: FieldInteger, Default: MinStudentAge, Validator: IntRange(MinStudentAge, MaxStudentAge)},
		{Name: "grade", Type: FieldText, Default: Grades[0], Choices: Grades, Validator: OneOf(Grades...)},
		{Name: "major", Type: FieldText, Validator: MaxLength(100)},
	}
}
