package game

import "strings"

// NormalizeGuess turns raw user input into a single uppercase letter.
// It trims surrounding whitespace and uppercases; the result must be exactly
// one ASCII letter A–Z, otherwise ok is false.
func NormalizeGuess(raw string) (letter byte, ok bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	if c < 'A' || c > 'Z' {
		return 0, false
	}
	return c, true
}
