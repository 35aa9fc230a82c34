package terminal

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// commandPrefix marks a line as a session command rather than a guess.
const commandPrefix = ":"

// Command is a session action typed at the guess prompt.
type Command string

const (
	CmdNone    Command = ""
	CmdQuit    Command = "quit"
	CmdHelp    Command = "help"
	CmdUnknown Command = "unknown"
)

// commandAliases maps every accepted spelling to its command.
var commandAliases = map[string]Command{
	"quit": CmdQuit,
	"q":    CmdQuit,
	"exit": CmdQuit,
	"help": CmdHelp,
	"h":    CmdHelp,
	"?":    CmdHelp,
}

// commandNames are the canonical names offered as suggestions and completions.
var commandNames = []string{"help", "quit"}

// maxSuggestDistance bounds how far a typo may be from a real command.
const maxSuggestDistance = 2

// ParseCommand inspects a line of input. Lines that do not start with ':'
// return CmdNone and are treated as guesses. For unknown commands, suggestion
// holds the closest real command name, or "" if none is close enough.
func ParseCommand(line string) (cmd Command, suggestion string) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, commandPrefix) {
		return CmdNone, ""
	}
	name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, commandPrefix)))
	if c, ok := commandAliases[name]; ok {
		return c, ""
	}
	return CmdUnknown, suggest(name)
}

// suggest returns the command name nearest to name within maxSuggestDistance.
func suggest(name string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, cand := range commandNames {
		if d := levenshtein.ComputeDistance(name, cand); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

const helpText = `Type a single letter and press Enter to guess it.
Commands:
  :help, :h   show this help
  :quit, :q   leave the game
`
