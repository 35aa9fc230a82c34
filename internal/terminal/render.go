// internal/terminal/render.go
//
// Text rendering for the hangman board and the end-of-game dialog.
// The gallows art uses box-drawing runes, so every width below is a display
// width measured with go-runewidth, never a byte length.

package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/robalobadob/hangman/internal/game"
)

// Gallows holds the seven drawings, indexed by game.GallowsStage().
var Gallows = [game.MaxMisses + 1]string{
	" ╔═══╗\n ║    \n ║\n ║\n═╩══",
	" ╔═══╗\n ║   O\n ║\n ║\n═╩══",
	" ╔═══╗\n ║   O\n ║   |\n ║\n═╩══",
	" ╔═══╗\n ║   O\n ║  /|\n ║\n═╩══",
	" ╔═══╗\n ║   O\n ║  /|\\\n ║\n═╩══",
	" ╔═══╗\n ║   O\n ║  /|\\\n ║  /\n═╩══",
	" ╔═══╗\n ║   O\n ║  /|\\\n ║  / \\\n═╩══",
}

const (
	// boardWidth fits the guesses panel: 13 letters, 12 gaps, borders and padding.
	boardWidth = 29
	// gallowsOffset shifts the drawing towards the middle of the board.
	gallowsOffset = 6
	// gallowsHeight reserves room so the board does not jump between stages.
	gallowsHeight = 7
	// rowLength splits the alphabet into two rows.
	rowLength = 13
)

// End-of-game messages.
const (
	WonMessage  = "Congratulations! You won!"
	LostMessage = "You lost! Better luck next time :("
)

// DrawGallows returns the drawing for stage, indented and padded to a fixed height.
func DrawGallows(stage int) string {
	lines := strings.Split(Gallows[stage], "\n")
	pad := strings.Repeat(" ", gallowsOffset)
	var b strings.Builder
	for i := 0; i < gallowsHeight; i++ {
		if i < len(lines) {
			b.WriteString(strings.TrimRight(pad+lines[i], " "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// SpacedStatus separates the letters of a masked word: "C__" → "C _ _".
func SpacedStatus(status string) string {
	return strings.Join(strings.Split(status, ""), " ")
}

// GuessRows lays the guessed grid out as two rows of 13. Guessed letters are
// shown, untried ones are blank.
func GuessRows(grid []game.LetterState) []string {
	var rows []string
	for start := 0; start < len(grid); start += rowLength {
		end := start + rowLength
		if end > len(grid) {
			end = len(grid)
		}
		cells := make([]string, 0, rowLength)
		for _, l := range grid[start:end] {
			if l.Guessed {
				cells = append(cells, string(l.Letter))
			} else {
				cells = append(cells, " ")
			}
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}

// Board renders a running game: gallows, masked word and guessed letters.
func Board(g *game.Game) string {
	var b strings.Builder
	b.WriteString(panelTop("Hangman!", boardWidth))
	b.WriteString(DrawGallows(g.GallowsStage()))
	b.WriteString(centre(SpacedStatus(g.Status()), boardWidth))
	b.WriteString("\n\n")
	b.WriteString(Panel("Guesses", GuessRows(g.Guessed()), boardWidth))
	return b.String()
}

// GameOver renders the end dialog for a finished game.
func GameOver(o game.Outcome) string {
	msg := LostMessage
	if o.Phase == game.PhaseWon {
		msg = WonMessage
	}
	width := boardWidth
	if w := runewidth.StringWidth(msg) + 4; w > width {
		width = w
	}
	var b strings.Builder
	b.WriteString(panelTop("Hangman", width))
	b.WriteString(Panel("Solution", []string{o.Solution}, width))
	b.WriteString(centre(msg, width))
	b.WriteString("\n\n")
	b.WriteString(centre("<Quit>", width))
	b.WriteByte('\n')
	return b.String()
}

// Panel draws a titled box of the given outer width with centred lines.
func Panel(title string, lines []string, width int) string {
	for _, l := range lines {
		if w := runewidth.StringWidth(l) + 4; w > width {
			width = w
		}
	}
	inner := width - 2
	var b strings.Builder
	head := "─ " + title + " "
	b.WriteString("┌" + head + strings.Repeat("─", max(inner-runewidth.StringWidth(head), 0)) + "┐\n")
	for _, l := range lines {
		b.WriteString("│" + runewidth.FillRight(centre(l, inner), inner) + "│\n")
	}
	b.WriteString("└" + strings.Repeat("─", inner) + "┘\n")
	return b.String()
}

// panelTop draws a centred dialog title followed by a blank line.
func panelTop(title string, width int) string {
	return centre("[ "+title+" ]", width) + "\n\n"
}

// centre left-pads s so that it sits in the middle of width columns.
func centre(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap/2) + s
}
