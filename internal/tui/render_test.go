package tui

import (
	"strings"
	"testing"
)

func TestScoreBar(t *testing.T) {
	cases := []struct {
		score  int
		width  int
		filled int
	}{
		{0, 10, 0},
		{100, 10, 10},
		{50, 10, 5},
		{-20, 10, 0},
		{120, 10, 10},
		{25, 4, 1},
	}
	for _, tc := range cases {
		bar := scoreBar(tc.score, tc.width)
		filled := strings.Count(bar, "█")
		if filled != tc.filled {
			t.Fatalf("score %d width %d: expected %d filled, got %d (%q)", tc.score, tc.width, tc.filled, filled, bar)
		}
		if got := filled + strings.Count(bar, "░"); got != tc.width {
			t.Fatalf("score %d: expected total width %d, got %d", tc.score, tc.width, got)
		}
	}
}

func TestScoreBarZeroWidth(t *testing.T) {
	if bar := scoreBar(50, 0); bar != "" {
		t.Fatalf("expected empty bar, got %q", bar)
	}
}

func TestPadLines(t *testing.T) {
	lines := padLines([]string{"short", "a longer line", ""})
	want := len("a longer line")
	for i, line := range lines {
		if len(line) != want {
			t.Fatalf("line %d: expected width %d, got %d (%q)", i, want, len(line), line)
		}
	}
}
