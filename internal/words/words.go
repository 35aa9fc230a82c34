// internal/words/words.go
//
// Provides secret-word sources for the game engine.
//
// Responsibilities:
//   - Define the Source contract: one call, one candidate secret word.
//   - Load dictionary files or the embedded default list.
//   - Pick words uniformly at random (crypto/rand).
//
// Constraints:
//   • Words must be alphabetic A–Z; apostrophes, digits and non-ASCII letters
//     are skipped (system dictionaries are full of "Zürich" and "don't").
//   • Lists are normalized to uppercase.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/assets"
)

// DefaultDictionary is the system word list read by the file source.
const DefaultDictionary = "/usr/share/dict/american-english"

// ErrNoWords is returned when a source has no usable words.
var ErrNoWords = errors.New("words: no usable words")

// Source supplies one candidate secret word per call.
type Source interface {
	NextWord() (string, error)
}

// Normalize trims and uppercases w and reports whether it is a usable secret
// (non-empty, letters A–Z only).
func Normalize(w string) (string, bool) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return "", false
		}
	}
	return w, true
}

// Fixed always returns the same word. Handy for tests and scripted play.
type Fixed string

// NextWord returns the fixed word, or ErrNoWords if it is not usable.
func (f Fixed) NextWord() (string, error) {
	w, ok := Normalize(string(f))
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoWords, string(f))
	}
	return w, nil
}

// Random picks uniformly from a fixed list of words.
type Random struct {
	words []string
}

// NewRandom builds a Random source from list, dropping unusable entries.
func NewRandom(list []string) (*Random, error) {
	ws := filter(list)
	if len(ws) == 0 {
		return nil, ErrNoWords
	}
	return &Random{words: ws}, nil
}

// NextWord returns a cryptographically random word from the list.
func (r *Random) NextWord() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(r.words))))
	if err != nil {
		return "", fmt.Errorf("pick word: %w", err)
	}
	return r.words[n.Int64()], nil
}

// Len reports how many words the source can choose from.
func (r *Random) Len() int { return len(r.words) }

// FromFile loads a one-word-per-line dictionary and returns a Random source.
func FromFile(path string) (*Random, error) {
	ws, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Int("words", len(ws)).Msg("dictionary loaded")
	return NewRandom(ws)
}

// Embedded returns a Random source over the word list compiled into the binary.
func Embedded() (*Random, error) {
	list, err := EmbeddedList()
	if err != nil {
		return nil, err
	}
	return NewRandom(list)
}

// EmbeddedList returns the usable words compiled into the binary.
func EmbeddedList() ([]string, error) {
	list, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded words: %w", err)
	}
	return filter(list), nil
}

// ReadFile loads one word per line from a file, keeping only usable words.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	ws, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ws, nil
}

// Read scans one word per line from r, keeping only usable words.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := Normalize(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// filter normalizes list and drops unusable entries.
func filter(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if n, ok := Normalize(w); ok {
			out = append(out, n)
		}
	}
	return out
}
