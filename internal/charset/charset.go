// Package charset defines the character classes used for generation and
// strength analysis.
package charset

import (
	"strings"

	"github.com/verte-zerg/passgen/internal/model"
)

// Character classes. Symbols is a fixed set, not derived from punctuation.
const (
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Ambiguous holds characters that are easy to misread in some fonts.
const Ambiguous = "il1Lo0O"

// Pool builds the candidate pool for a generation spec. Lowercase is always
// included; the ambiguous filter is applied by the caller so that mandatory
// per-class seeds are drawn from the unfiltered classes.
func Pool(spec model.GenerationSpec) string {
	pool := Lowercase
	if spec.Upper {
		pool += Uppercase
	}
	if spec.Digits {
		pool += Digits
	}
	if spec.Symbols {
		pool += Symbols
	}
	return pool
}

// StripAmbiguous removes every ambiguous character from the pool.
func StripAmbiguous(pool string) string {
	var b strings.Builder
	b.Grow(len(pool))
	for i := 0; i < len(pool); i++ {
		if strings.IndexByte(Ambiguous, pool[i]) >= 0 {
			continue
		}
		b.WriteByte(pool[i])
	}
	return b.String()
}

// IsAmbiguous reports whether b is in the ambiguous set.
func IsAmbiguous(b byte) bool {
	return strings.IndexByte(Ambiguous, b) >= 0
}
