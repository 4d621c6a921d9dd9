package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Pool is the set of dictionary entries still consistent with every guess
// seen this game. The dictionary is shared; the membership set is owned by one
// solver and only ever shrinks.
type Pool struct {
	dict  *words.Dictionary
	alive *bitset.BitSet
}

// NewPool returns a pool holding every entry of dict.
func NewPool(dict *words.Dictionary) *Pool {
	n := uint(dict.Len())
	return &Pool{dict: dict, alive: bitset.New(n).FlipRange(0, n)}
}

// Retain drops every entry whose word is inconsistent with g.
func (p *Pool) Retain(g game.Guess) {
	entries := p.dict.Entries()
	for i, ok := p.alive.NextSet(0); ok; i, ok = p.alive.NextSet(i + 1) {
		if !g.Matches(entries[i].Word) {
			p.alive.Clear(i)
		}
	}
}

// Len returns the number of remaining entries.
func (p *Pool) Len() int { return int(p.alive.Count()) }

// Entries returns the remaining entries in dictionary order.
func (p *Pool) Entries() []words.Entry {
	all := p.dict.Entries()
	out := make([]words.Entry, 0, p.alive.Count())
	for i, ok := p.alive.NextSet(0); ok; i, ok = p.alive.NextSet(i + 1) {
		out = append(out, all[i])
	}
	return out
}
