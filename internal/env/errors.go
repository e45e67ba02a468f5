package env

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies why a key failed its rule
type Kind string

const (
	KindMissing       Kind = "missing"
	KindInvalidURL    Kind = "invalid_url"
	KindInvalidNumber Kind = "invalid_number"
	KindNotInteger    Kind = "not_integer"
	KindNotPositive   Kind = "not_positive"
	KindInvalidEnum   Kind = "invalid_enum"
	KindInvalid       Kind = "invalid"
)

func (k Kind) message() string {
	switch k {
	case KindMissing:
		return "is required"
	case KindInvalidURL:
		return "must be a valid URL"
	case KindInvalidNumber:
		return "must be a number"
	case KindNotInteger:
		return "must be an integer"
	case KindNotPositive:
		return "must be greater than 0"
	case KindInvalidEnum:
		return "is not an allowed value"
	default:
		return "is invalid"
	}
}

// Violation describes one key that failed its rule
type Violation struct {
	Key      string
	Kind     Kind
	Expected string
	// Received is the raw value; meaningful only when Present is true
	Received string
	Present  bool
}

func (v Violation) String() string {
	received := "undefined"
	if v.Present {
		received = strconv.Quote(v.Received)
	}
	return fmt.Sprintf("%s %s (expected %s, received %s)", v.Key, v.Kind.message(), v.Expected, received)
}

// ValidationError is returned when one or more keys fail their schema
type ValidationError struct {
	Schema     string
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("invalid %s environment variables: %s", e.Schema, strings.Join(parts, "; "))
}

// Keys lists the failing keys in schema order
func (e *ValidationError) Keys() []string {
	keys := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		keys[i] = v.Key
	}
	return keys
}

// Has reports whether key is among the violations
func (e *ValidationError) Has(key string) bool {
	for _, v := range e.Violations {
		if v.Key == key {
			return true
		}
	}
	return false
}

// Format renders one violation per line for terminal output
func (e *ValidationError) Format() string {
	var b strings.Builder
	for i, v := range e.Violations {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ✖ ")
		b.WriteString(v.String())
	}
	return b.String()
}
