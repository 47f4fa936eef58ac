// Package strength scores passwords against a fixed heuristic rubric.
package strength

import (
	"strings"

	"github.com/verte-zerg/passgen/internal/charset"
	"github.com/verte-zerg/passgen/internal/model"
)

// commonPatterns are substrings considered predictable regardless of context.
var commonPatterns = []string{"123", "abc", "qwerty", "password", "111", "000"}

// Analyze scores a password and returns the score, rating, and feedback.
//
// Scoring is additive with one penalty for common patterns, capped at 100.
// There is no lower clamp: a raw negative score is reported as-is. An empty
// password scores 0 and rates WEAK with only the too-short feedback.
func Analyze(password string) model.StrengthReport {
	score := 0
	var feedback []string

	length := len([]rune(password))
	switch {
	case length >= 16:
		score += 30
	case length >= 12:
		score += 20
		feedback = append(feedback, "Consider using 16+ characters for better security")
	case length >= 8:
		score += 10
		feedback = append(feedback, "Password is short, recommend 12+ characters")
	default:
		feedback = append(feedback, "Password is too short, use at least 8 characters")
	}

	if length == 0 {
		return model.StrengthReport{Score: 0, Rating: model.RatingWeak, Feedback: feedback}
	}

	for _, class := range []struct {
		chars string
		bonus int
		tip   string
	}{
		{charset.Lowercase, 10, "Add lowercase letters"},
		{charset.Uppercase, 15, "Add uppercase letters"},
		{charset.Digits, 15, "Add numbers"},
		{charset.Symbols, 20, "Add special characters"},
	} {
		if strings.ContainsAny(password, class.chars) {
			score += class.bonus
		} else {
			feedback = append(feedback, class.tip)
		}
	}

	ratio := uniqueRatio(password)
	if ratio > 0.7 {
		score += 10
	} else if ratio < 0.5 {
		feedback = append(feedback, "Password has too many repeated characters")
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPatterns {
		if strings.Contains(lower, pattern) {
			score -= 20
			feedback = append(feedback, "Avoid common patterns like '123' or 'abc'")
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return model.StrengthReport{Score: score, Rating: rate(score), Feedback: feedback}
}

func uniqueRatio(password string) float64 {
	runes := []rune(password)
	seen := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		seen[r] = struct{}{}
	}
	return float64(len(seen)) / float64(len(runes))
}

func rate(score int) model.Rating {
	switch {
	case score >= 80:
		return model.RatingStrong
	case score >= 60:
		return model.RatingGood
	case score >= 40:
		return model.RatingFair
	default:
		return model.RatingWeak
	}
}
