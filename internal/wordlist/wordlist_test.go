package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	words := Builtin()
	if len(words) != 36 {
		t.Fatalf("expected 36 words, got %d", len(words))
	}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if word != strings.ToLower(word) {
			t.Fatalf("word %q is not lowercase", word)
		}
		if _, ok := seen[word]; ok {
			t.Fatalf("duplicate word %q", word)
		}
		seen[word] = struct{}{}
	}
}

func TestBuiltinReturnsCopy(t *testing.T) {
	words := Builtin()
	words[0] = "mutated"
	if Builtin()[0] != "alpha" {
		t.Fatalf("builtin list was mutated")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Apple\n\nbanana\n  cherry  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	words, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{"apple", "banana", "cherry"}
	if len(words) != len(want) {
		t.Fatalf("expected %d words, got %d", len(want), len(words))
	}
	for i, word := range want {
		if words[i] != word {
			t.Fatalf("expected word %q at %d, got %q", word, i, words[i])
		}
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("apple\nApple\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected duplicate error")
	}
}

func TestLoadRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write word list: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected empty-list error")
	}
}

func TestWordsFallsBackToBuiltin(t *testing.T) {
	words, err := Words("")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	if len(words) != 36 {
		t.Fatalf("expected builtin list, got %d words", len(words))
	}
}
