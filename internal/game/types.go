// internal/game/types.go
//
// Core type definitions for the hangman game engine.
// Defines:
//   - Phase: overall status of a game (running/won/lost).
//   - Outcome: result of submitting one line of input.
//   - LetterState: one cell of the guessed-letter grid.
//   - Game: state for a single game session.

package game

// Phase represents the overall status of a game.
type Phase string

const (
	PhaseRunning Phase = "running"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// Terminal reports whether no further guesses can be made in this phase.
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

const (
	// MaxMisses is the number of wrong letters that ends the game.
	MaxMisses = 6
	// AlphabetSize is the number of guessable letters (A–Z).
	AlphabetSize = 26
)

// Outcome is returned by SubmitGuess.
//
// Accepted is false when the input was ignored (not a single letter, or a letter
// already tried); nothing about the game changed and the other fields only echo
// the current phase.
type Outcome struct {
	Accepted bool   // A new letter was recorded.
	Letter   byte   // The normalized letter (accepted outcomes only).
	Hit      bool   // The letter occurs in the secret.
	Phase    Phase  // Phase after the guess.
	Solution string // The secret; set only when Phase is terminal.
}

// Finished reports whether this guess ended the game.
func (o Outcome) Finished() bool { return o.Accepted && o.Phase.Terminal() }

// LetterState pairs a letter with whether it has been guessed.
type LetterState struct {
	Letter  byte
	Guessed bool
}

// running is the payload that only exists while a game is in PhaseRunning.
type running struct {
	secret  string
	misses  int
	guessed [AlphabetSize]bool
}

// Game holds the state of a single hangman session.
// Once the game is won or lost the running payload is dropped, so the
// secret is only reachable through the Outcome that ended the game.
type Game struct {
	ID    string // Unique game identifier (random hex string), used in logs.
	phase Phase
	run   *running
}
