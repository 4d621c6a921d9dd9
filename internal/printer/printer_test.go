package printer

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestTiles(t *testing.T) {
	noColor(t)
	w := game.MustParseWord("right")
	got := Tiles(w, game.Compute(game.MustParseWord("night"), w))
	assert.Equal(t, " R  I  G  H  T ", got)
}

func TestTiles_Coloured(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	w := game.MustParseWord("right")
	got := Tiles(w, game.Pattern{game.Correct, game.Misplaced, game.Wrong, game.Wrong, game.Wrong})
	assert.Contains(t, got, "\x1b[")
	assert.Contains(t, got, " R ")
}

func TestGuess(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	w := game.MustParseWord("wrong")
	Guess(&buf, 2, game.Guess{Word: w, Mask: game.Compute(game.MustParseWord("right"), w)})
	assert.Equal(t, " 2   W  R  O  N  G   wmwwm\n", buf.String())
}

func TestSuccessAndWarning(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	Success(&buf, "solved in %d\n", 3)
	Warning(&buf, "not found\n")
	assert.Equal(t, "✓ solved in 3\n⚠️  not found\n", buf.String())
}

func TestError(t *testing.T) {
	err := Error("Bad word", "words must be five letters")
	require.Error(t, err)
	assert.Equal(t, "Bad word", err.Error())
}
