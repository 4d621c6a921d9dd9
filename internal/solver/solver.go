// apps/solver/internal/solver/solver.go
//
// Information-theoretic guess selector.
// Responsibilities:
//   - Play a fixed opening word when no feedback exists yet.
//   - Narrow the candidate pool with each new piece of feedback.
//   - Score every remaining candidate by its prior probability of being the
//     answer times the entropy (bits) its feedback would reveal.
//   - Return the best-scoring word, ties going to the earlier dictionary entry.
//
// Notes:
//   - A Solver is single-game state. Create one per game; the Dictionary it is
//     built from is shared read-only between solvers.

package solver

import (
	"errors"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// DefaultOpening is the precomputed first guess.
var DefaultOpening = game.MustParseWord("tares")

// ErrPoolExhausted is returned when no dictionary word is consistent with the
// history, which only happens if the history was not produced by a real answer.
var ErrPoolExhausted = errors.New("solver: no candidates remain")

// Candidate is a scored remaining word.
type Candidate struct {
	Word     game.Word
	Entropy  float64 // expected information of its feedback, in bits
	Goodness float64 // prior probability × Entropy
}

// Option configures a Solver.
type Option func(*Solver)

// WithOpening sets the word played on the first turn.
func WithOpening(w game.Word) Option {
	return func(s *Solver) { s.opening = w }
}

// Solver implements game.Guesser.
type Solver struct {
	dict     *words.Dictionary
	pool     *Pool
	patterns []game.Pattern
	opening  game.Word
	applied  int // history entries already folded into pool
}

// New creates a solver for one game over dict.
func New(dict *words.Dictionary, opts ...Option) *Solver {
	s := &Solver{
		dict:     dict,
		pool:     NewPool(dict),
		patterns: game.Patterns(),
		opening:  DefaultOpening,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Guess returns the next word to play given the full history of this game.
// Identical dictionaries and histories always produce the same word.
func (s *Solver) Guess(history []game.Guess) (game.Word, error) {
	if len(history) == 0 && s.dict.Contains(s.opening) {
		return s.opening, nil
	}
	if len(history) < s.applied {
		return game.Word{}, errors.New("solver: history shrank; use a new solver per game")
	}
	for _, g := range history[s.applied:] {
		s.pool.Retain(g)
	}
	s.applied = len(history)

	ranked := s.Scores()
	if len(ranked) == 0 {
		return game.Word{}, ErrPoolExhausted
	}
	best := ranked[0]
	for _, c := range ranked[1:] {
		if c.Goodness > best.Goodness {
			best = c
		}
	}
	log.Debug().
		Int("turn", len(history)+1).
		Int("remaining", len(ranked)).
		Str("guess", best.Word.String()).
		Float64("goodness", best.Goodness).
		Msg("solver pick")
	return best.Word, nil
}

// Scores rates every word in the current pool, in dictionary order.
//
// For a candidate c, each pool entry falls into exactly one pattern bucket,
// the feedback c would get if that entry were the answer. This is the same
// partition as checking every pattern with Guess.Matches, built in one pass.
func (s *Solver) Scores() []Candidate {
	entries := s.pool.Entries()
	weight := frequencyWeight
	var total uint64
	for _, e := range entries {
		total += e.Freq
	}
	if total == 0 {
		// all remaining words have zero frequency: treat them as equally likely
		weight = uniformWeight
		total = uint64(len(entries))
	}
	w := float64(total)

	out := make([]Candidate, 0, len(entries))
	var buckets [game.NumPatterns]uint64
	for _, c := range entries {
		buckets = [game.NumPatterns]uint64{}
		for _, e := range entries {
			buckets[game.Compute(e.Word, c.Word).Index()] += weight(e)
		}

		sum := 0.0
		for _, p := range s.patterns {
			k := buckets[p.Index()]
			if k == 0 {
				continue
			}
			prob := float64(k) / w
			sum += prob * math.Log2(prob)
		}
		entropy := 0 - sum // never -0 when a single bucket holds everything
		out = append(out, Candidate{
			Word:     c.Word,
			Entropy:  entropy,
			Goodness: float64(weight(c)) / w * entropy,
		})
	}
	return out
}

// Remaining returns the current pool size.
func (s *Solver) Remaining() int { return s.pool.Len() }

// Candidates returns up to n remaining words in dictionary order; n <= 0 means all.
func (s *Solver) Candidates(n int) []game.Word {
	entries := s.pool.Entries()
	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	out := make([]game.Word, n)
	for i := range out {
		out[i] = entries[i].Word
	}
	return out
}

func frequencyWeight(e words.Entry) uint64 { return e.Freq }

func uniformWeight(words.Entry) uint64 { return 1 }
