package strength

import (
	"reflect"
	"testing"

	"github.com/verte-zerg/passgen/internal/model"
)

func TestAnalyzeStrongPassword(t *testing.T) {
	// 19 chars, all four classes, high unique ratio, no common pattern.
	report := Analyze("Tr0ub4dor&3xyz47925")
	if report.Score != 100 {
		t.Fatalf("expected score 100, got %d", report.Score)
	}
	if report.Rating != model.RatingStrong {
		t.Fatalf("expected STRONG, got %s", report.Rating)
	}
	if len(report.Feedback) != 0 {
		t.Fatalf("expected no feedback, got %v", report.Feedback)
	}
}

func TestAnalyzeCommonPatternPenalty(t *testing.T) {
	// Same shape as above but ends in "12345", which contains "123".
	report := Analyze("Tr0ub4dor&3xyz12345")
	if report.Score != 80 {
		t.Fatalf("expected score 80, got %d", report.Score)
	}
	if report.Rating != model.RatingStrong {
		t.Fatalf("expected STRONG, got %s", report.Rating)
	}
	want := []string{"Avoid common patterns like '123' or 'abc'"}
	if !reflect.DeepEqual(report.Feedback, want) {
		t.Fatalf("expected feedback %v, got %v", want, report.Feedback)
	}
}

func TestAnalyzePassword123(t *testing.T) {
	report := Analyze("password123")
	// 11 chars (+10), lowercase (+10), digits (+15), unique ratio 10/11 (+10),
	// common pattern (-20): raw 25.
	if report.Score != 25 {
		t.Fatalf("expected score 25, got %d", report.Score)
	}
	if report.Rating != model.RatingWeak {
		t.Fatalf("expected WEAK, got %s", report.Rating)
	}
	want := []string{
		"Password is short, recommend 12+ characters",
		"Add uppercase letters",
		"Add special characters",
		"Avoid common patterns like '123' or 'abc'",
	}
	if !reflect.DeepEqual(report.Feedback, want) {
		t.Fatalf("expected feedback %v, got %v", want, report.Feedback)
	}
}

func TestAnalyzeRepeatedCharacters(t *testing.T) {
	report := Analyze("aaaaaaaa")
	// 8 chars (+10), lowercase (+10), unique ratio 1/8 triggers feedback only.
	if report.Score != 20 {
		t.Fatalf("expected score 20, got %d", report.Score)
	}
	if report.Rating != model.RatingWeak {
		t.Fatalf("expected WEAK, got %s", report.Rating)
	}
	found := false
	for _, tip := range report.Feedback {
		if tip == "Password has too many repeated characters" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected repeated-character feedback, got %v", report.Feedback)
	}
}

func TestAnalyzeNegativeScoreNotFloored(t *testing.T) {
	// "111": digits (+15), common pattern (-20): raw -5, reported as-is.
	report := Analyze("111")
	if report.Score != -5 {
		t.Fatalf("expected score -5, got %d", report.Score)
	}
	if report.Rating != model.RatingWeak {
		t.Fatalf("expected WEAK, got %s", report.Rating)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	report := Analyze("")
	if report.Score != 0 {
		t.Fatalf("expected score 0, got %d", report.Score)
	}
	if report.Rating != model.RatingWeak {
		t.Fatalf("expected WEAK, got %s", report.Rating)
	}
	want := []string{"Password is too short, use at least 8 characters"}
	if !reflect.DeepEqual(report.Feedback, want) {
		t.Fatalf("expected feedback %v, got %v", want, report.Feedback)
	}
}

func TestAnalyzeMiddleRatioBand(t *testing.T) {
	// "aabbccdd": 4 unique / 8 = 0.5, inside [0.5, 0.7]: no bonus, no feedback.
	report := Analyze("aabbccdd")
	// 8 chars (+10), lowercase (+10).
	if report.Score != 20 {
		t.Fatalf("expected score 20, got %d", report.Score)
	}
	for _, tip := range report.Feedback {
		if tip == "Password has too many repeated characters" {
			t.Fatalf("unexpected repeated-character feedback: %v", report.Feedback)
		}
	}
}

func TestAnalyzeRatingBands(t *testing.T) {
	cases := []struct {
		password string
		rating   model.Rating
	}{
		// 16+ chars, lowercase only, unique ratio below 0.7: 30+10 = 40.
		{"aabbccddeeffgghh", model.RatingFair},
		// 16+ chars, lower+upper, high ratio: 30+10+15+10 = 65.
		{"zBydEfgHijKlmNoP", model.RatingGood},
		// All classes, 16+ chars: 30+60+10 = 100.
		{"aB3$eF7&iJ9?mN5+", model.RatingStrong},
		{"abcdefg", model.RatingWeak},
	}
	for _, tc := range cases {
		report := Analyze(tc.password)
		if report.Rating != tc.rating {
			t.Fatalf("%q: expected %s, got %s (score %d)", tc.password, tc.rating, report.Rating, report.Score)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	first := Analyze("password123")
	second := Analyze("password123")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports, got %+v and %+v", first, second)
	}
}
