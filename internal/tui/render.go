package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/passgen/internal/model"
)

const scoreBarWidth = 30

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	fairStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ACD32"))
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
)

func ratingStyle(rating model.Rating) lipgloss.Style {
	switch rating {
	case model.RatingStrong:
		return strongStyle
	case model.RatingGood:
		return goodStyle
	case model.RatingFair:
		return fairStyle
	default:
		return weakStyle
	}
}

// scoreBar renders a fixed-width bar. The bar clamps into [0, 100] for
// display even though reported scores may be negative.
func scoreBar(score, width int) string {
	if width < 1 {
		return ""
	}
	clamped := score
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 100 {
		clamped = 100
	}
	filled := clamped * width / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// padLines pads every line to the widest display width so bordered boxes
// render with straight edges.
func padLines(lines []string) []string {
	maxWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		padding := maxWidth - runewidth.StringWidth(line)
		out[i] = line + strings.Repeat(" ", padding)
	}
	return out
}
