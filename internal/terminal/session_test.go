package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	rl "github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

type step struct {
	line string
	err  error
}

// script replays canned input and reports EOF once it runs out.
type script struct {
	steps []step
	reads int
}

func lines(ls ...string) *script {
	s := &script{}
	for _, l := range ls {
		s.steps = append(s.steps, step{line: l})
	}
	return s
}

func (s *script) Readline() (string, error) {
	if s.reads >= len(s.steps) {
		s.reads++
		return "", io.EOF
	}
	st := s.steps[s.reads]
	s.reads++
	return st.line, st.err
}

func newSession(t *testing.T, secret string, in LineReader) (*Session, *game.Game, *bytes.Buffer) {
	t.Helper()
	g, err := game.Start(words.Fixed(secret))
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	var out bytes.Buffer
	return NewSession(g, in, &out, zerolog.Nop()), g, &out
}

func TestSessionWin(t *testing.T) {
	in := lines("c", "z", "zz", "a", "t", "")
	s, g, out := newSession(t, "CAT", in)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Phase() != game.PhaseWon {
		t.Fatalf("phase=%s want won", g.Phase())
	}
	text := out.String()
	if !strings.Contains(text, WonMessage) || !strings.Contains(text, "CAT") {
		t.Fatalf("missing end dialog:\n%s", text)
	}
	if !strings.Contains(text, "C _ _") || !strings.Contains(text, "C A _") {
		t.Fatalf("missing progressive reveal:\n%s", text)
	}
	if in.reads != 6 {
		t.Fatalf("reads=%d want 6 (five guesses plus quit)", in.reads)
	}
}

func TestSessionLoss(t *testing.T) {
	s, g, out := newSession(t, "DOG", lines("x", "y", "z", "q", "w", "v"))
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Phase() != game.PhaseLost {
		t.Fatalf("phase=%s want lost", g.Phase())
	}
	text := out.String()
	if !strings.Contains(text, LostMessage) || !strings.Contains(text, "DOG") {
		t.Fatalf("missing end dialog:\n%s", text)
	}
}

func TestSessionQuitCommand(t *testing.T) {
	in := lines("a", ":q", "b")
	s, g, _ := newSession(t, "CAT", in)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !g.Running() {
		t.Fatalf("game should still be running after quit")
	}
	if in.reads != 2 {
		t.Fatalf("reads=%d want 2", in.reads)
	}
}

func TestSessionEOFQuits(t *testing.T) {
	s, g, _ := newSession(t, "CAT", lines("c"))
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Status() != "C__" {
		t.Fatalf("status=%q", g.Status())
	}
}

func TestSessionInterrupt(t *testing.T) {
	in := &script{steps: []step{
		{line: "half typed", err: rl.ErrInterrupt},
		{line: "a"},
		{line: "", err: rl.ErrInterrupt},
		{line: "t"},
	}}
	s, g, _ := newSession(t, "CAT", in)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Status() != "_A_" {
		t.Fatalf("status=%q want _A_", g.Status())
	}
	if in.reads != 3 {
		t.Fatalf("reads=%d want 3", in.reads)
	}
}

func TestSessionHelpAndUnknownCommand(t *testing.T) {
	s, g, out := newSession(t, "CAT", lines(":help", ":qiut", ":xyzzy", ":quit"))
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Type a single letter", "Did you mean :quit?", "Type :help for help."} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if g.Misses() != 0 || g.Status() != "___" {
		t.Fatalf("commands must not reach the game")
	}
}

func TestSessionReadError(t *testing.T) {
	boom := errors.New("boom")
	s, _, _ := newSession(t, "CAT", &script{steps: []step{{err: boom}}})
	if err := s.Run(); !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}
}
