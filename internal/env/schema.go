package env

import (
	"errors"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"nestbase-go/internal/logger"
	"nestbase-go/internal/validation"
)

// rule describes one key of a schema. Defaults are applied only when the key
// is unset and go through the same validation as supplied values.
type rule struct {
	key      string
	required bool
	expected string
	coerce   func(string) (interface{}, error)
	validate string // validator tag expression
	def      interface{}
}

// schema is a named, immutable rule table
type schema struct {
	name  string
	title string
	rules []rule
}

// parse evaluates every rule and collects all violations in one pass
func (s *schema) parse(raw Raw) (map[string]interface{}, error) {
	values := make(map[string]interface{}, len(s.rules))
	var violations []Violation

	for _, r := range s.rules {
		value, violation := r.apply(raw)
		if violation != nil {
			violations = append(violations, *violation)
			continue
		}
		values[r.key] = value
	}

	if len(violations) > 0 {
		err := &ValidationError{Schema: s.name, Violations: violations}
		report(s, err)
		return nil, err
	}
	return values, nil
}

func (r rule) apply(raw Raw) (interface{}, *Violation) {
	s, present := raw.lookup(r.key)
	violation := func(kind Kind) *Violation {
		return &Violation{Key: r.key, Kind: kind, Expected: r.expected, Received: s, Present: present}
	}

	var value interface{}
	switch {
	case present && r.coerce != nil:
		v, err := r.coerce(s)
		if err != nil {
			var ce *coerceError
			if errors.As(err, &ce) {
				return nil, violation(ce.kind)
			}
			return nil, violation(KindInvalid)
		}
		value = v
	case present:
		value = s
	case r.def != nil:
		value = r.def
	case r.required:
		return nil, violation(KindMissing)
	default:
		return nil, nil
	}

	if r.validate != "" {
		if err := validation.Var(value, r.validate); err != nil {
			return nil, violation(kindOf(err))
		}
	}
	return value, nil
}

func kindOf(err error) Kind {
	fieldErrors := validation.FormatError(err)
	if len(fieldErrors) == 0 {
		return KindInvalid
	}
	switch fieldErrors[0].Tag {
	case "required":
		return KindMissing
	case "url":
		return KindInvalidURL
	case "oneof":
		return KindInvalidEnum
	case "gt":
		return KindNotPositive
	default:
		return KindInvalid
	}
}

type coerceError struct {
	kind Kind
}

func (e *coerceError) Error() string { return string(e.kind) }

// maxSafeInteger bounds coerced integers to values exactly representable as float64
const maxSafeInteger = 1<<53 - 1

// coerceInt converts a string the way a numeric environment value is read:
// surrounding whitespace is ignored, an empty value reads as 0, and the
// result must be a finite whole number.
func coerceInt(s string) (interface{}, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(t, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &coerceError{kind: KindInvalidNumber}
	}
	if math.IsNaN(f) {
		return nil, &coerceError{kind: KindInvalidNumber}
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxSafeInteger {
		return nil, &coerceError{kind: KindNotInteger}
	}
	return int(f), nil
}

var (
	diagMu      sync.Mutex
	diagnostics = logger.NewDiagnostic(os.Stderr)
)

// SetDiagnosticOutput redirects validation failure reports, stderr by default
func SetDiagnosticOutput(w io.Writer) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diagnostics = logger.NewDiagnostic(w)
}

func report(s *schema, err *ValidationError) {
	diagMu.Lock()
	defer diagMu.Unlock()
	diagnostics.Error().
		Str("schema", s.name).
		Strs("keys", err.Keys()).
		Msg("❌ " + s.title + "\n" + err.Format())
}
