// Package generator produces random passwords and passphrases.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"github.com/verte-zerg/passgen/internal/charset"
	"github.com/verte-zerg/passgen/internal/model"
)

// Generation errors.
var (
	ErrInvalidLength        = errors.New("password length must be at least 1")
	ErrInvalidWordCount     = errors.New("word count must be at least 1")
	ErrInsufficientWordPool = errors.New("word count exceeds the word list size")
)

// Source supplies uniform random integers in [0, n).
type Source interface {
	Intn(n int) (int, error)
}

// cryptoSource draws from crypto/rand.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// Generator produces randomized credentials from a Source.
type Generator struct {
	src Source
}

// New returns a Generator backed by crypto/rand.
func New() *Generator {
	return &Generator{src: cryptoSource{}}
}

// NewWithSource returns a Generator using the given randomness source.
func NewWithSource(src Source) *Generator {
	return &Generator{src: src}
}

// Password generates a random password for the given spec.
//
// Every enabled class contributes at least one character (one seed character
// is drawn per class before the pool fill). ExcludeAmbiguous filters the fill
// pool only; seed characters drawn before the filter may still be ambiguous.
// When Length is smaller than the number of enabled classes, no fill occurs
// and the result is one character per enabled class, shorter than requested.
func (g *Generator) Password(spec model.GenerationSpec) (string, error) {
	if spec.Length < 1 {
		return "", ErrInvalidLength
	}

	buf := make([]byte, 0, spec.Length)
	c, err := g.pick(charset.Lowercase)
	if err != nil {
		return "", err
	}
	buf = append(buf, c)
	for _, class := range []struct {
		enabled bool
		chars   string
	}{
		{spec.Upper, charset.Uppercase},
		{spec.Digits, charset.Digits},
		{spec.Symbols, charset.Symbols},
	} {
		if !class.enabled {
			continue
		}
		c, err := g.pick(class.chars)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	pool := charset.Pool(spec)
	if spec.ExcludeAmbiguous {
		pool = charset.StripAmbiguous(pool)
	}
	for i := len(buf); i < spec.Length; i++ {
		c, err := g.pick(pool)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	if err := g.shuffleBytes(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Passphrase samples n distinct words from the list and joins them with sep.
func (g *Generator) Passphrase(words []string, n int, sep string) (string, error) {
	if n < 1 {
		return "", ErrInvalidWordCount
	}
	if n > len(words) {
		return "", ErrInsufficientWordPool
	}

	// Partial Fisher-Yates: the first n slots end up as a uniform sample
	// without replacement.
	pool := append([]string(nil), words...)
	for i := 0; i < n; i++ {
		j, err := g.src.Intn(len(pool) - i)
		if err != nil {
			return "", err
		}
		pool[i], pool[i+j] = pool[i+j], pool[i]
	}
	return strings.Join(pool[:n], sep), nil
}

func (g *Generator) pick(chars string) (byte, error) {
	i, err := g.src.Intn(len(chars))
	if err != nil {
		return 0, err
	}
	return chars[i], nil
}

func (g *Generator) shuffleBytes(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := g.src.Intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
