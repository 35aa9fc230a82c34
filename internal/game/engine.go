// internal/game/engine.go
//
// Core game engine for a single hangman session.
// Responsibilities:
//   - Create new games from a secret word or a words.Source.
//   - Validate and apply letter guesses.
//   - Track state transitions: running → won/lost (exactly once).
//   - Expose the projections the terminal renders (status, grid, gallows stage).
//
// Notes:
//   - Invalid or repeated guesses are not errors; SubmitGuess reports them with
//     an Outcome whose Accepted field is false.
//   - Calling anything but Phase/Running on a finished game is a bug in the
//     caller and panics.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/robalobadob/hangman/internal/words"
)

// ErrInvalidSecret is returned when a secret word is empty or not all A–Z.
var ErrInvalidSecret = errors.New("game: secret must be one or more letters A-Z")

// New constructs a running game for the given secret.
// The secret is trimmed and uppercased before validation.
func New(secret string) (*Game, error) {
	w, ok := words.Normalize(secret)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSecret, secret)
	}
	return &Game{
		ID:    randomID(),
		phase: PhaseRunning,
		run:   &running{secret: w},
	}, nil
}

// Start pulls exactly one word from src and starts a game with it.
// A failing source yields an error; no game is created.
func Start(src words.Source) (*Game, error) {
	w, err := src.NextWord()
	if err != nil {
		return nil, fmt.Errorf("fetch secret: %w", err)
	}
	return New(w)
}

// Phase reports the current phase. Valid in every phase.
func (g *Game) Phase() Phase { return g.phase }

// Running reports whether guesses are still accepted. Valid in every phase.
func (g *Game) Running() bool { return g.phase == PhaseRunning }

// SubmitGuess applies one line of user input.
//
// Rules:
//   - Input that is not exactly one letter A–Z (after trimming and uppercasing)
//     is ignored.
//   - A letter that was already guessed is ignored.
//   - A new letter is recorded; if the secret lacks it, misses goes up by one.
//   - Then: misses == MaxMisses → lost; else every secret letter guessed → won.
func (g *Game) SubmitGuess(input string) Outcome {
	r := g.mustRun("SubmitGuess")

	c, ok := NormalizeGuess(input)
	if !ok {
		return Outcome{Phase: g.phase}
	}
	i := index(c)
	if r.guessed[i] {
		return Outcome{Phase: g.phase}
	}

	hit := contains(r.secret, c)
	if !hit && r.misses < MaxMisses {
		r.misses++
	}
	r.guessed[i] = true

	out := Outcome{Accepted: true, Letter: c, Hit: hit}
	if r.misses == MaxMisses {
		g.finish(PhaseLost)
	} else if g.IsSolved() {
		g.finish(PhaseWon)
	}
	out.Phase = g.phase
	if g.phase.Terminal() {
		out.Solution = r.secret
	}
	return out
}

// finish moves the game into a terminal phase and drops the running payload.
func (g *Game) finish(p Phase) {
	g.phase = p
	g.run = nil
}

// IsSolved reports whether every letter of the secret has been guessed.
func (g *Game) IsSolved() bool {
	r := g.mustRun("IsSolved")
	for i := 0; i < len(r.secret); i++ {
		if !r.guessed[index(r.secret[i])] {
			return false
		}
	}
	return true
}

// Status returns the secret with unguessed letters replaced by '_'.
func (g *Game) Status() string {
	r := g.mustRun("Status")
	b := make([]byte, len(r.secret))
	for i := 0; i < len(r.secret); i++ {
		if r.guessed[index(r.secret[i])] {
			b[i] = r.secret[i]
		} else {
			b[i] = '_'
		}
	}
	return string(b)
}

// Guessed returns all 26 letters A–Z in order, each with its guessed flag.
func (g *Game) Guessed() []LetterState {
	r := g.mustRun("Guessed")
	out := make([]LetterState, AlphabetSize)
	for i := range out {
		out[i] = LetterState{Letter: byte('A' + i), Guessed: r.guessed[i]}
	}
	return out
}

// GallowsStage selects the gallows drawing; it equals the miss count.
func (g *Game) GallowsStage() int { return g.mustRun("GallowsStage").misses }

// Misses returns the number of wrong letters so far.
func (g *Game) Misses() int { return g.mustRun("Misses").misses }

// mustRun returns the running payload or panics on a finished game.
func (g *Game) mustRun(op string) *running {
	if g.phase != PhaseRunning || g.run == nil {
		panic(fmt.Sprintf("game: %s on a finished game (%s)", op, g.phase))
	}
	return g.run
}

// contains reports whether the uppercase secret holds letter c.
func contains(secret string, c byte) bool {
	for i := 0; i < len(secret); i++ {
		if secret[i] == c {
			return true
		}
	}
	return false
}

// index maps an uppercase ASCII letter to 0..25.
// Assumes inputs are validated to A–Z elsewhere.
func index(c byte) int { return int(c - 'A') }

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
