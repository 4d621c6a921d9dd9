// apps/solver/internal/daily/daily.go
//
// Deterministic answer-of-the-day selection.
// The same date and salt always pick the same answer, so a daily run can be
// reproduced later or on another machine.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"time"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDateKey parses a YYYY-MM-DD key as a UTC date.
func ParseDateKey(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Answer picks the answer for date from answers.
func Answer(date time.Time, salt string, answers []game.Word) (game.Word, int, error) {
	if len(answers) == 0 {
		return game.Word{}, 0, errors.New("daily: no answers")
	}
	i := WordIndex(date, salt, len(answers))
	return answers[i], i, nil
}
