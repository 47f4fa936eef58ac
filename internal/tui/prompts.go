package tui

import (
	"fmt"
	"strconv"
	"strings"
)

// parsePositiveInt parses a 1-based integer, using def for empty input.
// Non-numeric or non-positive input is rejected so it never reaches the
// engine.
func parsePositiveInt(input string, def int) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return def, nil
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("enter a valid number")
	}
	if n < 1 {
		return 0, fmt.Errorf("enter a number greater than 0")
	}
	return n, nil
}

// parseYesNo interprets y/n answers, using def for empty input.
func parseYesNo(input string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("answer y or n")
	}
}
