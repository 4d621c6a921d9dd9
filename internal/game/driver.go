package game

import "fmt"

// Guesser picks the next word to play given everything seen so far this game.
type Guesser interface {
	Guess(history []Guess) (Word, error)
}

// GuesserFunc adapts a plain function to the Guesser interface.
type GuesserFunc func(history []Guess) (Word, error)

// Guess calls f(history).
func (f GuesserFunc) Guess(history []Guess) (Word, error) { return f(history) }

// Outcome is the result of one played game.
// Won is false when the turn budget ran out; Turns is then the budget.
type Outcome struct {
	Answer  Word
	Won     bool
	Turns   int
	History []Guess
}

// Play runs the turn loop of one game: ask the guesser, score the word against
// answer, append to history, repeat until the answer is found or maxTurns
// guesses have been played.
//
// Running out of turns is a normal outcome. An error means the game was
// halted by a contract violation (guesser failure, word not in lex).
func Play(lex Lexicon, answer Word, g Guesser, maxTurns int) (Outcome, error) {
	gm := New(lex, answer, maxTurns)
	out := Outcome{Answer: answer}
	for gm.State() == StatePlaying {
		w, err := g.Guess(gm.History)
		if err != nil {
			return out, fmt.Errorf("turn %d: %w", gm.Turns()+1, err)
		}
		if _, _, err := gm.ApplyGuess(w); err != nil {
			return out, fmt.Errorf("turn %d: %w", gm.Turns()+1, err)
		}
	}
	out.Won = gm.Won
	out.Turns = gm.Turns()
	out.History = gm.History
	return out, nil
}
