package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/passgen/internal/model"
)

func openMemory(t *testing.T) *Store {
	t.Helper()
	st, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAppendAndRecent(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		if _, err := st.Append(ctx, model.KindPassword, fmt.Sprintf("secret-%d", i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	count, err := st.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 12 {
		t.Fatalf("expected 12 entries, got %d", count)
	}

	entries, err := st.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(entries))
	}
	// Append order preserved, most recent last.
	for i, entry := range entries {
		want := fmt.Sprintf("secret-%d", i+2)
		if entry.Value != want {
			t.Fatalf("entry %d: expected %q, got %q", i, want, entry.Value)
		}
	}
}

func TestRecentWithoutLimit(t *testing.T) {
	st := openMemory(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := st.Append(ctx, model.KindPassphrase, fmt.Sprintf("phrase-%d", i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	entries, err := st.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Kind != model.KindPassphrase {
		t.Fatalf("expected kind %q, got %q", model.KindPassphrase, entries[0].Kind)
	}
}

func TestRecentEmpty(t *testing.T) {
	st := openMemory(t)
	entries, err := st.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestOpenFilePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history", "passgen.db")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	if _, err := st.Append(context.Background(), model.KindPassword, "secret"); err != nil {
		t.Fatalf("append: %v", err)
	}
}
