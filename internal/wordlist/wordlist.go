// Package wordlist provides the passphrase word corpus.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// builtin is the default passphrase corpus: 36 distinct lowercase words.
var builtin = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	"golf", "hotel", "india", "juliet", "kilo", "lima",
	"tiger", "ocean", "mountain", "river", "forest", "desert",
	"thunder", "lightning", "sunrise", "sunset", "moon", "star",
	"piano", "guitar", "violin", "drum", "flute", "trumpet",
	"ruby", "emerald", "sapphire", "diamond", "pearl", "amber",
}

// Builtin returns a copy of the default word list.
func Builtin() []string {
	return append([]string(nil), builtin...)
}

// Load reads one word per line from the provided file path. Words are
// lowercased; blank lines are skipped; duplicates and empty lists are errors.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			return nil, fmt.Errorf("duplicate word %q in %s", word, path)
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// Words returns the word list at path, or the builtin list when path is empty.
func Words(path string) ([]string, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
