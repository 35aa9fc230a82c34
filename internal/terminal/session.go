// internal/terminal/session.go
//
// Session wiring between the line input and the game engine.
// Responsibilities:
//   - Draw the board, read one line per guess, forward it to the game.
//   - Handle session commands (:help, :quit) and interrupts.
//   - Show the end dialog once the game is won or lost, then wait for quit.
//
// The session owns its *game.Game exclusively; a new game needs a new Session.

package terminal

import (
	"errors"
	"fmt"
	"io"

	rl "github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

// LineReader supplies one line of user input per call.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Session runs one game against a terminal.
type Session struct {
	game *game.Game
	in   LineReader
	out  io.Writer
	log  zerolog.Logger
}

// NewSession prepares a session for a running game.
func NewSession(g *game.Game, in LineReader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{
		game: g,
		in:   in,
		out:  out,
		log:  logger.With().Str("game", g.ID).Logger(),
	}
}

// errQuit ends the read loop without reporting a failure.
var errQuit = errors.New("quit")

// Run plays the game until it ends or the player quits.
func (s *Session) Run() error {
	s.log.Debug().Msg("session started")
	s.draw()

	for {
		line, err := s.readLine()
		if err == errQuit {
			s.log.Info().Msg("player quit")
			return nil
		}
		if err != nil {
			return err
		}

		switch cmd, suggestion := ParseCommand(line); cmd {
		case CmdQuit:
			s.log.Info().Msg("player quit")
			return nil
		case CmdHelp:
			fmt.Fprint(s.out, helpText)
			continue
		case CmdUnknown:
			if suggestion != "" {
				fmt.Fprintf(s.out, "Unknown command. Did you mean :%s?\n", suggestion)
			} else {
				fmt.Fprintln(s.out, "Unknown command. Type :help for help.")
			}
			continue
		}

		out := s.game.SubmitGuess(line)
		if !out.Accepted {
			s.log.Debug().Str("input", line).Msg("guess ignored")
			continue
		}
		s.log.Debug().
			Str("letter", string(out.Letter)).
			Bool("hit", out.Hit).
			Str("phase", string(out.Phase)).
			Msg("guess")

		if out.Finished() {
			s.log.Info().Str("phase", string(out.Phase)).Msg("game over")
			fmt.Fprint(s.out, GameOver(out))
			s.waitQuit()
			return nil
		}
		s.draw()
	}
}

// draw prints the board for the running game.
func (s *Session) draw() {
	fmt.Fprint(s.out, "\n"+Board(s.game))
}

// readLine reads one line, mapping EOF and Ctrl-C on an empty line to errQuit.
func (s *Session) readLine() (string, error) {
	for {
		line, err := s.in.Readline()
		switch {
		case err == rl.ErrInterrupt:
			if len(line) == 0 {
				return "", errQuit
			}
			continue
		case err == io.EOF:
			return "", errQuit
		case err != nil:
			return "", fmt.Errorf("read input: %w", err)
		}
		return line, nil
	}
}

// waitQuit blocks until the player acknowledges the end dialog.
func (s *Session) waitQuit() {
	fmt.Fprintln(s.out, "Press Enter to quit.")
	_, _ = s.in.Readline()
}

// NewReadline builds the interactive line editor used for guesses.
func NewReadline() (*rl.Instance, error) {
	items := make([]rl.PrefixCompleterInterface, 0, len(commandNames))
	for _, name := range commandNames {
		items = append(items, rl.PcItem(commandPrefix+name))
	}
	return rl.NewEx(&rl.Config{
		Prompt:          "guess » ",
		AutoComplete:    rl.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}
