// Package editor holds per-entity draft state and the submit-then-reconcile
// protocol: validate locally, call the gateway, and on success splice the
// server's canonical entity into the cache and reset the draft. A failed
// submit leaves the draft untouched so the user can retry.
package editor

import (
	"strconv"
	"strings"
)

// coerceInt converts free-form numeric input to an integer with a zero
// fallback. Empty or unparsable input is 0, never an error; the server is
// the authority on acceptable values.
func coerceInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// coerceID resolves an optional foreign-key field: empty input means no
// reference (null), anything else is coerced like other numerics.
func coerceID(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	id := int64(coerceInt(s))
	return &id
}
