// apps/solver/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Word: a fixed five-letter lowercase ASCII word.
//   - Correctness: per-letter result of a guess (correct/misplaced/wrong).
//   - Pattern: the five Correctness values a guess receives.
//   - Guess: a played word together with its feedback.

package game

import (
	"errors"
	"fmt"
	"strings"
)

// WordLen is the number of letters in every word.
const WordLen = 5

// ErrInvalidWord is returned when text is not exactly five letters a–z.
var ErrInvalidWord = errors.New("invalid word")

// Word is a five-letter lowercase ASCII word. Equality is byte-wise.
type Word [WordLen]byte

// ParseWord builds a Word from text, lowercasing and trimming it first.
func ParseWord(s string) (Word, error) {
	var w Word
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen || !isAlpha(s) {
		return w, fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	copy(w[:], s)
	return w, nil
}

// MustParseWord is ParseWord for literals known to be valid; it panics otherwise.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func (w Word) String() string { return string(w[:]) }

// Correctness represents the evaluation result for a single letter in a guess.
//   - Correct:   letter matches the answer at this position.
//   - Misplaced: letter appears elsewhere in an unaccounted answer position.
//   - Wrong:     letter has no unaccounted occurrence in the answer.
type Correctness uint8

const (
	Correct Correctness = iota
	Misplaced
	Wrong
)

// numCorrectness is the number of Correctness variants.
const numCorrectness = 3

func (c Correctness) String() string {
	switch c {
	case Correct:
		return "c"
	case Misplaced:
		return "m"
	case Wrong:
		return "w"
	}
	return "?"
}

// Pattern is the feedback for one guess, one Correctness per letter position.
type Pattern [WordLen]Correctness

// ParsePattern reads feedback written one letter per position:
// c/g for Correct, m/y for Misplaced, w/./- for Wrong.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return p, fmt.Errorf("invalid pattern %q: want %d marks", s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'c', 'g':
			p[i] = Correct
		case 'm', 'y':
			p[i] = Misplaced
		case 'w', '.', '-':
			p[i] = Wrong
		default:
			return p, fmt.Errorf("invalid pattern %q: unknown mark %q", s, s[i])
		}
	}
	return p, nil
}

func (p Pattern) String() string {
	var b strings.Builder
	for _, c := range p {
		b.WriteString(c.String())
	}
	return b.String()
}

// Solved reports whether every position is Correct.
func (p Pattern) Solved() bool {
	for _, c := range p {
		if c != Correct {
			return false
		}
	}
	return true
}

// Guess is a played word and the feedback it received. Immutable once recorded.
type Guess struct {
	Word Word
	Mask Pattern
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
