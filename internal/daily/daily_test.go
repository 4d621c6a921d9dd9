package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	d := time.Date(2026, 3, 1, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-02-28", DateKey(d))

	p, err := ParseDateKey("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-28", DateKey(p))

	_, err = ParseDateKey("28/02/2026")
	assert.Error(t, err)
}

func TestWordIndex(t *testing.T) {
	d := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	i := WordIndex(d, "salt", 100)
	assert.GreaterOrEqual(t, i, 0)
	assert.Less(t, i, 100)

	assert.Equal(t, i, WordIndex(d.Add(23*time.Hour), "salt", 100), "same day, same index")
	assert.Equal(t, 0, WordIndex(d, "salt", 0))

	differs := false
	for day := 1; day <= 30 && !differs; day++ {
		differs = WordIndex(d.AddDate(0, 0, day), "salt", 100) != i
	}
	assert.True(t, differs, "index should vary across days")
}

func TestAnswer(t *testing.T) {
	answers := []game.Word{game.MustParseWord("right"), game.MustParseWord("wrong")}
	d := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	w, i, err := Answer(d, "salt", answers)
	require.NoError(t, err)
	assert.Equal(t, answers[i], w)

	_, _, err = Answer(d, "salt", nil)
	assert.Error(t, err)
}
