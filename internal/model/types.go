// Package model defines shared data structures.
package model

import "time"

// GenerationSpec defines password generation settings. Lowercase letters are
// always included and are not part of the spec.
type GenerationSpec struct {
	Length           int
	Upper            bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// EnabledClasses returns the number of character classes the spec enables,
// counting the always-on lowercase class.
func (s GenerationSpec) EnabledClasses() int {
	n := 1
	if s.Upper {
		n++
	}
	if s.Digits {
		n++
	}
	if s.Symbols {
		n++
	}
	return n
}

// Rating is a categorical strength label derived from a numeric score.
type Rating string

// Rating bands, ordered weakest to strongest.
const (
	RatingWeak   Rating = "WEAK"
	RatingFair   Rating = "FAIR"
	RatingGood   Rating = "GOOD"
	RatingStrong Rating = "STRONG"
)

// StrengthReport is the result of analyzing a password.
type StrengthReport struct {
	Score    int
	Rating   Rating
	Feedback []string
}

// History entry kinds.
const (
	KindPassword   = "password"
	KindPassphrase = "passphrase"
)

// HistoryEntry records one generated credential for the session.
type HistoryEntry struct {
	ID        int64
	CreatedAt time.Time
	Kind      string
	Value     string
}

// Config defines resolved generation defaults used by the CLI and TUI.
type Config struct {
	Length           int
	Upper            bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
	Words            int
	Separator        string
	WordListPath     string
}
