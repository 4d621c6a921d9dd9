package solver

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

func dictionary(t *testing.T, src string) *words.Dictionary {
	t.Helper()
	d, err := words.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return d
}

func embedded(t *testing.T) *words.Dictionary {
	t.Helper()
	d, err := words.Default()
	require.NoError(t, err)
	return d
}

const small = `right 40
fight 12
night 30
light 25
might 20
sight 9
wrong 15
crane 8
slate 5
`

// bruteScores rates candidates by testing every pattern with Guess.Matches.
func bruteScores(entries []words.Entry) []Candidate {
	var total uint64
	for _, e := range entries {
		total += e.Freq
	}
	w := float64(total)
	out := make([]Candidate, 0, len(entries))
	for _, c := range entries {
		sum := 0.0
		for _, p := range game.Patterns() {
			g := game.Guess{Word: c.Word, Mask: p}
			var k uint64
			for _, e := range entries {
				if g.Matches(e.Word) {
					k += e.Freq
				}
			}
			if k == 0 {
				continue
			}
			prob := float64(k) / w
			sum += prob * math.Log2(prob)
		}
		out = append(out, Candidate{Word: c.Word, Entropy: -sum, Goodness: float64(c.Freq) / w * -sum})
	}
	return out
}

func TestGuess_OpeningWord(t *testing.T) {
	d := embedded(t)
	s := New(d)
	w, err := s.Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, "tares", w.String())
	assert.Equal(t, d.Len(), s.Remaining(), "opening must not touch the pool")

	s = New(d, WithOpening(game.MustParseWord("crane")))
	w, err = s.Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
}

func TestGuess_OpeningNotInDictionaryScoresPool(t *testing.T) {
	d := dictionary(t, small)
	w, err := New(d).Guess(nil)
	require.NoError(t, err)

	best := bruteScores(d.Entries())
	want := best[0]
	for _, c := range best[1:] {
		if c.Goodness > want.Goodness {
			want = c
		}
	}
	assert.Equal(t, want.Word, w)
}

func TestScores_MatchesBruteForce(t *testing.T) {
	d := dictionary(t, small)
	s := New(d)
	got := s.Scores()
	want := bruteScores(d.Entries())
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Word, got[i].Word)
		assert.InDelta(t, want[i].Entropy, got[i].Entropy, 1e-9, want[i].Word.String())
		assert.InDelta(t, want[i].Goodness, got[i].Goodness, 1e-9, want[i].Word.String())
	}
}

func TestScores_NonNegative(t *testing.T) {
	s := New(embedded(t))
	for _, c := range s.Scores() {
		assert.GreaterOrEqual(t, c.Entropy, 0.0, c.Word.String())
		assert.GreaterOrEqual(t, c.Goodness, 0.0, c.Word.String())
	}

	single := New(dictionary(t, "right 3\n"))
	sc := single.Scores()
	require.Len(t, sc, 1)
	assert.Equal(t, 0.0, sc[0].Entropy)
	assert.False(t, math.Signbit(sc[0].Entropy), "entropy of a single candidate is +0")
	assert.False(t, math.Signbit(sc[0].Goodness))
}

func TestScores_ZeroFrequencyIsUniform(t *testing.T) {
	s := New(dictionary(t, "right 0\nwrong 0\nfight 0\n"))
	for _, c := range s.Scores() {
		assert.False(t, math.IsNaN(c.Goodness))
		assert.Greater(t, c.Goodness, 0.0)
	}
}

func TestGuess_TieGoesToFirstEntry(t *testing.T) {
	d := dictionary(t, "right 1\nwrong 1\n")
	w, err := New(d).Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, "right", w.String())

	d = dictionary(t, "wrong 1\nright 1\n")
	w, err = New(d).Guess(nil)
	require.NoError(t, err)
	assert.Equal(t, "wrong", w.String())
}

func TestGuess_Deterministic(t *testing.T) {
	d := embedded(t)
	answer := game.MustParseWord("later")
	history := []game.Guess{{Word: DefaultOpening, Mask: game.Compute(answer, DefaultOpening)}}

	a, err := New(d).Guess(history)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		b, err := New(d).Guess(history)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestGuess_PoolExhausted(t *testing.T) {
	d := dictionary(t, "right 1\nwrong 1\n")
	history := []game.Guess{{Word: game.MustParseWord("right"), Mask: game.Pattern{game.Wrong, game.Wrong, game.Wrong, game.Wrong, game.Wrong}}}
	_, err := New(d).Guess(history)
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestGuess_HistoryMustGrow(t *testing.T) {
	d := dictionary(t, small)
	s := New(d)
	answer := game.MustParseWord("night")
	first, err := s.Guess(nil)
	require.NoError(t, err)
	h := []game.Guess{{Word: first, Mask: game.Compute(answer, first)}}
	_, err = s.Guess(h)
	require.NoError(t, err)

	_, err = s.Guess(nil)
	assert.Error(t, err)
}

func TestPlay_Scenario(t *testing.T) {
	d := dictionary(t, "right 1\nwrong 1\n")

	out, err := game.Play(d, game.MustParseWord("right"), New(d), game.MaxTurns)
	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.Equal(t, 1, out.Turns)

	out, err = game.Play(d, game.MustParseWord("wrong"), New(d), game.MaxTurns)
	require.NoError(t, err)
	assert.True(t, out.Won)
	assert.Equal(t, 2, out.Turns)
}

// shrinkRecorder wraps a Solver and records the pool size after each turn.
type shrinkRecorder struct {
	s     *Solver
	sizes []int
}

func (r *shrinkRecorder) Guess(h []game.Guess) (game.Word, error) {
	w, err := r.s.Guess(h)
	r.sizes = append(r.sizes, r.s.Remaining())
	return w, err
}

func TestPlay_EmbeddedAnswers(t *testing.T) {
	d := embedded(t)
	answers, err := words.LoadAnswers("")
	require.NoError(t, err)

	for _, a := range answers {
		rec := &shrinkRecorder{s: New(d)}
		out, err := game.Play(d, a, rec, game.MaxTurns)
		require.NoError(t, err, a.String())
		assert.True(t, out.Won, "answer %s not found", a)

		for i := 1; i < len(rec.sizes); i++ {
			assert.LessOrEqual(t, rec.sizes[i], rec.sizes[i-1], "pool grew while solving %s", a)
		}
		assert.GreaterOrEqual(t, rec.s.Remaining(), 1, "answer %s must stay in the pool", a)
	}
}

func TestPool_Retain(t *testing.T) {
	d := dictionary(t, small)
	p := NewPool(d)
	require.Equal(t, d.Len(), p.Len())

	guess := game.MustParseWord("right")
	p.Retain(game.Guess{Word: guess, Mask: game.Compute(game.MustParseWord("night"), guess)})

	var got []string
	for _, e := range p.Entries() {
		got = append(got, e.Word.String())
	}
	assert.Equal(t, []string{"fight", "night", "light", "might", "sight"}, got)
	assert.Equal(t, 5, p.Len())

	// the other pool is untouched
	assert.Equal(t, d.Len(), NewPool(d).Len())
}

func TestCandidates(t *testing.T) {
	s := New(dictionary(t, small))
	assert.Len(t, s.Candidates(0), 9)
	assert.Equal(t, []game.Word{game.MustParseWord("right"), game.MustParseWord("fight")}, s.Candidates(2))
}
