// apps/solver/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Score guesses using the classic two-pass Wordle algorithm (Compute).
//   - Create new games against a fixed answer with a bounded number of turns.
//   - Validate and apply guesses (dictionary membership).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - The dictionary is supplied by the caller through the Lexicon interface,
//     so this package stays independent of how word lists are loaded.

package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxTurns is the hard cap on turns in one game. History never grows past it.
const MaxTurns = 32

var (
	// ErrNotInDictionary is returned when a guess is not a dictionary word.
	ErrNotInDictionary = errors.New("not in dictionary")
	// ErrGameFinished is returned when a guess is applied to a finished game.
	ErrGameFinished = errors.New("game finished")
)

// Lexicon reports whether a word may be played.
type Lexicon interface {
	Contains(w Word) bool
}

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string  // Unique game identifier.
	Answer   Word    // The solution word.
	MaxTurns int     // Maximum number of guesses allowed.
	History  []Guess // Guesses made so far with their feedback.
	Finished bool    // True once the game is over (won or lost).
	Won      bool    // True if the game was finished with a win.

	lex Lexicon
}

// New constructs a new game against answer.
// maxTurns outside 1..MaxTurns falls back to MaxTurns.
func New(lex Lexicon, answer Word, maxTurns int) *Game {
	if maxTurns <= 0 || maxTurns > MaxTurns {
		maxTurns = MaxTurns
	}
	return &Game{
		ID:       uuid.NewString(),
		Answer:   answer,
		MaxTurns: maxTurns,
		History:  make([]Guess, 0, maxTurns),
		lex:      lex,
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback pattern, the new state, or an error.
//
// A guess equal to the answer always wins. Any other guess must be in the
// lexicon; a guess that is not is a caller bug and halts the game.
func (g *Game) ApplyGuess(w Word) (Pattern, State, error) {
	if g.Finished {
		return Pattern{}, g.State(), ErrGameFinished
	}
	if w != g.Answer && g.lex != nil && !g.lex.Contains(w) {
		g.Finished = true
		return Pattern{}, g.State(), fmt.Errorf("guess %q: %w", w, ErrNotInDictionary)
	}

	mask := Compute(g.Answer, w)
	g.History = append(g.History, Guess{Word: w, Mask: mask})

	if mask.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.History) >= g.MaxTurns {
		g.Finished = true
	}
	return mask, g.State(), nil
}

// Turns reports how many guesses have been played.
func (g *Game) Turns() int { return len(g.History) }

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Compute returns the feedback guess receives against answer.
//
// Pass 1:
//   - Mark exact matches Correct and mark those answer slots used.
//
// Pass 2:
//   - For each remaining guess letter, scan the answer left to right for an
//     unused slot holding the same letter. Claim it and mark Misplaced, or
//     mark Wrong if none is left.
//
// Claiming slots keeps repeated letters from being over-counted.
func Compute(answer, guess Word) Pattern {
	var (
		p    Pattern
		used [WordLen]bool
	)
	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = Correct
			used[i] = true
		} else {
			p[i] = Wrong
		}
	}
	for i := 0; i < WordLen; i++ {
		if p[i] == Correct {
			continue
		}
		for j := 0; j < WordLen; j++ {
			if !used[j] && answer[j] == guess[i] {
				used[j] = true
				p[i] = Misplaced
				break
			}
		}
	}
	return p
}

// Matches reports whether candidate could be the answer given this guess,
// i.e. whether playing g.Word against candidate yields exactly g.Mask.
func (g Guess) Matches(candidate Word) bool {
	return Compute(candidate, g.Word) == g.Mask
}
