// apps/solver/internal/words/words.go
//
// Provides dictionary and answer-list loading for the solver and harness.
//
// Responsibilities:
//   - Parse the "<word> <freq>" dictionary format into an immutable Dictionary.
//   - Load answer lists (one word per line) used by the benchmark and daily mode.
//   - Fall back to embedded defaults when no file is configured.
//
// Word Lists:
//   - "dictionary": every playable word with its usage frequency.
//   - "answers":    words the harness plays games against.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); lists are normalized to lowercase.
//   • Frequencies are non-negative integers.
//   • A Dictionary is never mutated after Parse returns, so one value can be
//     shared by every concurrent solver.

package words

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// ErrEmpty is returned when a list contains no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Entry is one dictionary word with its relative usage frequency.
type Entry struct {
	Word game.Word
	Freq uint64
}

// Dictionary is an ordered, read-only set of entries.
type Dictionary struct {
	entries []Entry
	index   map[game.Word]int // word → position in entries
}

// Parse reads a newline-delimited "<word> <freq>" list.
// Blank lines and lines starting with '#' are skipped. Duplicate words keep
// their first occurrence.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{index: make(map[game.Word]int)}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		fields := strings.Fields(s)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"<word> <freq>\", got %q", line, s)
		}
		w, err := game.ParseWord(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		freq, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: frequency %q: must be a non-negative integer", line, fields[1])
		}
		if _, dup := d.index[w]; dup {
			continue
		}
		d.index[w] = len(d.entries)
		d.entries = append(d.entries, Entry{Word: w, Freq: freq})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(d.entries) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load parses the dictionary at path, or the embedded default when path is "".
func Load(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Default parses the embedded dictionary.
func Default() (*Dictionary, error) {
	f, err := assets.Dictionary()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Entries returns the entries in file order. Callers must not modify it.
func (d *Dictionary) Entries() []Entry { return d.entries }

// Len returns the number of words.
func (d *Dictionary) Len() int { return len(d.entries) }

// Contains reports whether w is a dictionary word.
func (d *Dictionary) Contains(w game.Word) bool {
	_, ok := d.index[w]
	return ok
}

// Freq returns the frequency of w and whether it is present.
func (d *Dictionary) Freq(w game.Word) (uint64, bool) {
	i, ok := d.index[w]
	if !ok {
		return 0, false
	}
	return d.entries[i].Freq, true
}

// Digest returns a hex BLAKE2b-256 over the canonical "<word> <freq>\n" form,
// identifying which dictionary a benchmark ran against.
func (d *Dictionary) Digest() string {
	h, _ := blake2b.New256(nil)
	for _, e := range d.entries {
		fmt.Fprintf(h, "%s %d\n", e.Word, e.Freq)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ParseAnswers reads one word per line, lowercases and trims each, and keeps
// only valid 5-letter alphabetic words. Repeated words are dropped; the first
// occurrence keeps its position.
func ParseAnswers(r io.Reader) ([]game.Word, error) {
	var out []game.Word
	seen := make(map[game.Word]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := game.ParseWord(s)
		if err != nil {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// DefaultAnswers parses the embedded answer list.
func DefaultAnswers() ([]game.Word, error) {
	rc, err := assets.Answers()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return ParseAnswers(rc)
}

// LoadAnswers reads the answer list at path, or the embedded default when path is "".
func LoadAnswers(path string) ([]game.Word, error) {
	if path == "" {
		return DefaultAnswers()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ans, err := ParseAnswers(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ans, nil
}
