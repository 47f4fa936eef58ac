// Package session ties the generator, analyzer, and history together.
package session

import (
	"context"

	"github.com/verte-zerg/passgen/internal/generator"
	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/store"
	"github.com/verte-zerg/passgen/internal/strength"
)

// DisplayLimit caps how many history entries the display path shows.
const DisplayLimit = 10

// Session owns the generation history for one run of the tool. Only
// successful generation calls append to history; analysis never does.
// A Session is single-owner and not safe for concurrent use.
type Session struct {
	gen   *generator.Generator
	store *store.Store
}

// New returns a Session over the given generator and history store.
func New(gen *generator.Generator, st *store.Store) *Session {
	return &Session{gen: gen, store: st}
}

// GeneratePassword generates a password and records it in history.
func (s *Session) GeneratePassword(ctx context.Context, spec model.GenerationSpec) (string, error) {
	password, err := s.gen.Password(spec)
	if err != nil {
		return "", err
	}
	if _, err := s.store.Append(ctx, model.KindPassword, password); err != nil {
		return "", err
	}
	return password, nil
}

// GeneratePassphrase generates a passphrase and records it in history.
func (s *Session) GeneratePassphrase(ctx context.Context, words []string, n int, sep string) (string, error) {
	passphrase, err := s.gen.Passphrase(words, n, sep)
	if err != nil {
		return "", err
	}
	if _, err := s.store.Append(ctx, model.KindPassphrase, passphrase); err != nil {
		return "", err
	}
	return passphrase, nil
}

// Analyze scores a password. It does not touch history.
func (s *Session) Analyze(password string) model.StrengthReport {
	return strength.Analyze(password)
}

// History returns the most recent entries, most recent last.
func (s *Session) History(ctx context.Context, limit int) ([]model.HistoryEntry, error) {
	return s.store.Recent(ctx, limit)
}
