// apps/solver/internal/bench/bench.go
//
// Batch evaluation harness.
// Responsibilities:
//   - Play one game per answer, each with its own freshly built guesser.
//   - Run games in parallel on a bounded worker group.
//   - Aggregate hit rate, average turns, and a turn histogram into a Report.
//
// A game halted by a contract violation (unknown word, exhausted pool) aborts
// the whole run; a game that merely runs out of turns is counted as a loss.

package bench

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

// Options controls a benchmark run.
type Options struct {
	Workers  int // parallel games; <= 0 means runtime.NumCPU()
	Limit    int // play only the first Limit answers; <= 0 means all
	MaxTurns int // per-game turn cap; <= 0 means game.MaxTurns
}

// Progress receives one tick per finished game. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// GameResult is the outcome of one game.
type GameResult struct {
	Answer  game.Word
	Opening game.Word // first word played
	Won     bool
	Turns   int
}

// Report aggregates a whole run.
type Report struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"startedAt"`
	Duration   time.Duration `json:"duration"`
	Dictionary string        `json:"dictionary"` // words.Dictionary.Digest()
	Opening    string        `json:"opening"`    // first word played in the first game
	Games      int           `json:"games"`
	Wins       int           `json:"wins"`
	HitRate    float64       `json:"hitRate"`
	AvgTurns   float64       `json:"avgTurns"`  // over won games
	Histogram  map[int]int   `json:"histogram"` // turns → won games
	Losses     []string      `json:"losses,omitempty"`
	Results    []GameResult  `json:"-"`
}

// Run plays every answer with a guesser from newGuesser and summarises the results.
// newGuesser is called once per game; guessers must not share state.
func Run(ctx context.Context, opts Options, dict *words.Dictionary, answers []game.Word,
	newGuesser func() game.Guesser, progress Progress) (*Report, error) {

	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = game.MaxTurns
	}
	if opts.Limit > 0 && opts.Limit < len(answers) {
		answers = answers[:opts.Limit]
	}

	rep := &Report{
		ID:         uuid.NewString(),
		StartedAt:  time.Now().UTC(),
		Dictionary: dict.Digest(),
	}
	log.Info().Str("run", rep.ID).Int("games", len(answers)).Int("workers", opts.Workers).Msg("bench started")

	results := make([]GameResult, len(answers))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, answer := range answers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := game.Play(dict, answer, newGuesser(), opts.MaxTurns)
			if err != nil {
				return fmt.Errorf("answer %s: %w", answer, err)
			}
			results[i] = GameResult{Answer: answer, Won: out.Won, Turns: out.Turns}
			if len(out.History) > 0 {
				results[i].Opening = out.History[0].Word
			}
			if progress != nil {
				_ = progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Str("run", rep.ID).Msg("bench aborted")
		return nil, err
	}

	rep.Duration = time.Since(rep.StartedAt)
	rep.summarise(results)
	log.Info().
		Str("run", rep.ID).
		Int("wins", rep.Wins).
		Float64("hitRate", rep.HitRate).
		Float64("avgTurns", rep.AvgTurns).
		Dur("took", rep.Duration).
		Msg("bench finished")
	return rep, nil
}

func (r *Report) summarise(results []GameResult) {
	r.Results = results
	r.Games = len(results)
	r.Histogram = make(map[int]int)
	if len(results) > 0 {
		r.Opening = results[0].Opening.String()
	}
	turns := 0
	for _, res := range results {
		if !res.Won {
			r.Losses = append(r.Losses, res.Answer.String())
			continue
		}
		r.Wins++
		turns += res.Turns
		r.Histogram[res.Turns]++
	}
	if r.Games > 0 {
		r.HitRate = float64(r.Wins) / float64(r.Games)
	}
	if r.Wins > 0 {
		r.AvgTurns = float64(turns) / float64(r.Wins)
	}
}
