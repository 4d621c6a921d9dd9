package bench

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

type counter struct{ n atomic.Int64 }

func (c *counter) Add(n int) error {
	c.n.Add(int64(n))
	return nil
}

func rightWrong(t *testing.T) (*words.Dictionary, []game.Word) {
	t.Helper()
	d, err := words.Parse(strings.NewReader("right 1\nwrong 1\n"))
	require.NoError(t, err)
	return d, []game.Word{game.MustParseWord("right"), game.MustParseWord("wrong")}
}

func TestRun_Solver(t *testing.T) {
	d, answers := rightWrong(t)
	progress := &counter{}

	rep, err := Run(context.Background(), Options{Workers: 2}, d, answers,
		func() game.Guesser { return solver.New(d) }, progress)
	require.NoError(t, err)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, d.Digest(), rep.Dictionary)
	// tares is not in this dictionary, so the solver opens with its best-scoring word
	assert.Equal(t, "right", rep.Opening)
	assert.Equal(t, game.MustParseWord("right"), rep.Results[1].Opening)
	assert.Equal(t, 2, rep.Games)
	assert.Equal(t, 2, rep.Wins)
	assert.Equal(t, 1.0, rep.HitRate)
	assert.Equal(t, 1.5, rep.AvgTurns)
	assert.Equal(t, map[int]int{1: 1, 2: 1}, rep.Histogram)
	assert.Empty(t, rep.Losses)
	assert.Equal(t, int64(2), progress.n.Load())

	require.Len(t, rep.Results, 2)
	assert.Equal(t, answers[0], rep.Results[0].Answer, "results keep answer order")
	assert.Equal(t, answers[1], rep.Results[1].Answer)
}

func TestRun_CountsLosses(t *testing.T) {
	d, answers := rightWrong(t)
	alwaysWrong := func() game.Guesser {
		return game.GuesserFunc(func([]game.Guess) (game.Word, error) {
			return game.MustParseWord("wrong"), nil
		})
	}

	rep, err := Run(context.Background(), Options{Workers: 1, MaxTurns: 3}, d, answers, alwaysWrong, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Wins)
	assert.Equal(t, 0.5, rep.HitRate)
	assert.Equal(t, 1.0, rep.AvgTurns)
	assert.Equal(t, []string{"right"}, rep.Losses)
	assert.Equal(t, 3, rep.Results[0].Turns)
}

func TestRun_Limit(t *testing.T) {
	d, answers := rightWrong(t)
	rep, err := Run(context.Background(), Options{Limit: 1}, d, answers,
		func() game.Guesser { return solver.New(d) }, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Games)
}

func TestRun_ContractViolationAborts(t *testing.T) {
	d, answers := rightWrong(t)
	bogus := func() game.Guesser {
		return game.GuesserFunc(func([]game.Guess) (game.Word, error) {
			return game.MustParseWord("zzzzz"), nil
		})
	}

	rep, err := Run(context.Background(), Options{Workers: 2}, d, answers, bogus, nil)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, game.ErrNotInDictionary)
}

func TestRun_Cancelled(t *testing.T) {
	d, answers := rightWrong(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Workers: 1}, d, answers, func() game.Guesser { return solver.New(d) }, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_RecordsOpeningPlayed(t *testing.T) {
	d, err := words.Default()
	require.NoError(t, err)
	answers := []game.Word{game.MustParseWord("later"), game.MustParseWord("about")}

	rep, err := Run(context.Background(), Options{Workers: 1}, d, answers,
		func() game.Guesser { return solver.New(d) }, nil)
	require.NoError(t, err)
	assert.Equal(t, "tares", rep.Opening)

	crane := game.MustParseWord("crane")
	rep, err = Run(context.Background(), Options{Workers: 1}, d, answers,
		func() game.Guesser { return solver.New(d, solver.WithOpening(crane)) }, nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", rep.Opening)
}
