// Package env validates raw environment variables against the fixed
// server, database and client schemas and returns typed configuration.
//
// Each Validate function is a pure function of its input: it never mutates
// the raw mapping, ignores keys its schema does not declare, and either
// returns a complete config or a *ValidationError listing every failing key.
// On failure a human-readable report is written to the diagnostic output
// (stderr unless changed with SetDiagnosticOutput) before the error is returned.
package env

import (
	"os"
	"strings"
)

// Raw maps environment variable names to values. A missing key is "unset";
// an empty string is a value.
type Raw map[string]string

// FromOS snapshots the process environment
func FromOS() Raw {
	raw := make(Raw)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		raw[key] = value
	}
	return raw
}

// FromMap copies m so later changes to it do not leak into validation
func FromMap(m map[string]string) Raw {
	raw := make(Raw, len(m))
	for k, v := range m {
		raw[k] = v
	}
	return raw
}

func (r Raw) lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}
