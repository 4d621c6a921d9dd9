package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

var (
	correctTile   = color.New(color.BgGreen, color.FgBlack, color.Bold)
	misplacedTile = color.New(color.BgYellow, color.FgBlack, color.Bold)
	wrongTile     = color.New(color.BgHiBlack, color.FgWhite, color.Bold)

	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// Tiles renders a guess as five coloured letter tiles.
func Tiles(w game.Word, p game.Pattern) string {
	var b strings.Builder
	for i := 0; i < game.WordLen; i++ {
		letter := " " + strings.ToUpper(string(w[i])) + " "
		switch p[i] {
		case game.Correct:
			b.WriteString(correctTile.Sprint(letter))
		case game.Misplaced:
			b.WriteString(misplacedTile.Sprint(letter))
		default:
			b.WriteString(wrongTile.Sprint(letter))
		}
	}
	return b.String()
}

// Guess writes one history line: turn number, tiles, and the pattern letters
// so the output still reads correctly without colour.
func Guess(w io.Writer, turn int, g game.Guess) {
	fmt.Fprintf(w, "%2d  %s  %s\n", turn, Tiles(g.Word, g.Mask), g.Mask)
}

// Success prints a success message in green with a checkmark prefix.
func Success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ "+format, a...)
}

// Warning prints a warning message in yellow.
func Warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "⚠️  "+format, a...)
}

// Error prints a red title and explanation to stderr and returns an error
// carrying only the title, for cobra to propagate.
func Error(title, explanation string) error {
	red.Fprintf(os.Stderr, "%s\n", title)
	if explanation != "" {
		fmt.Fprintf(os.Stderr, "%s\n", explanation)
	}
	return fmt.Errorf("%s", title)
}
