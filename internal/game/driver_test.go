package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[Word]bool

func (s wordSet) Contains(w Word) bool { return s[w] }

func lexicon(words ...string) wordSet {
	s := make(wordSet, len(words))
	for _, w := range words {
		s[MustParseWord(w)] = true
	}
	return s
}

// rightOnTurn returns a guesser that plays "wrong" until the given turn.
func rightOnTurn(turn int) Guesser {
	return GuesserFunc(func(history []Guess) (Word, error) {
		if len(history) == turn-1 {
			return MustParseWord("right"), nil
		}
		return MustParseWord("wrong"), nil
	})
}

func TestPlay_WinsOnTurn(t *testing.T) {
	lex := lexicon("right", "wrong")
	names := []string{"genius", "magnificent", "impressive", "splendid", "great", "phew"}
	for i, name := range names {
		turn := i + 1
		t.Run(name, func(t *testing.T) {
			out, err := Play(lex, MustParseWord("right"), rightOnTurn(turn), MaxTurns)
			require.NoError(t, err)
			assert.True(t, out.Won)
			assert.Equal(t, turn, out.Turns)
			require.Len(t, out.History, turn)
			assert.True(t, out.History[turn-1].Mask.Solved())
		})
	}
}

func TestPlay_NeverFound(t *testing.T) {
	lex := lexicon("right", "wrong")
	calls := 0
	g := GuesserFunc(func(history []Guess) (Word, error) {
		calls++
		assert.Len(t, history, calls-1)
		return MustParseWord("wrong"), nil
	})

	out, err := Play(lex, MustParseWord("right"), g, MaxTurns)
	require.NoError(t, err)
	assert.False(t, out.Won)
	assert.Equal(t, MaxTurns, out.Turns)
	assert.Equal(t, MaxTurns, calls)
}

func TestPlay_WordNotInDictionary(t *testing.T) {
	lex := lexicon("right", "wrong")
	g := GuesserFunc(func([]Guess) (Word, error) { return MustParseWord("xxxxx"), nil })

	_, err := Play(lex, MustParseWord("right"), g, MaxTurns)
	assert.ErrorIs(t, err, ErrNotInDictionary)
}

func TestPlay_GuesserError(t *testing.T) {
	boom := errors.New("boom")
	g := GuesserFunc(func([]Guess) (Word, error) { return Word{}, boom })

	_, err := Play(lexicon("right"), MustParseWord("right"), g, MaxTurns)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "turn 1")
}
