package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/bench"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/printer"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		workers, limit, maxTurns int
		db                       string
		noProgress, asJSON       bool
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every answer and report hit rate and average turns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("workers") {
				a.cfg.Workers = workers
			}
			if f.Changed("limit") {
				a.cfg.Limit = limit
			}
			if f.Changed("max-turns") {
				a.cfg.MaxTurns = maxTurns
			}
			if f.Changed("db") {
				a.cfg.Database = db
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			answers, err := a.answerList()
			if err != nil {
				return err
			}
			n := len(answers)
			if a.cfg.Limit > 0 && a.cfg.Limit < n {
				n = a.cfg.Limit
			}

			var progress bench.Progress
			if !noProgress {
				progress = progressbar.NewOptions(n,
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionSetDescription("playing"),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}

			opts := bench.Options{
				Workers:  a.cfg.Workers,
				Limit:    a.cfg.Limit,
				MaxTurns: a.cfg.MaxTurns,
			}
			rep, err := bench.Run(cmd.Context(), opts, dict, answers,
				func() game.Guesser { return a.newSolver(dict) }, progress)
			if err != nil {
				return err
			}

			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.SaveRun(cmd.Context(), rep); err != nil {
				return fmt.Errorf("save run: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rep)
			}
			printReport(out, rep)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&workers, "workers", "w", 0, "parallel games (default NumCPU)")
	f.IntVarP(&limit, "limit", "n", 0, "play only the first n answers (0 = all)")
	f.IntVar(&maxTurns, "max-turns", game.MaxTurns, "turn cap per game (1-32)")
	f.StringVar(&db, "db", "", "SQLite file to record the run in (default in-memory)")
	f.BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func (a *app) openStore() (store.Store, error) {
	if a.cfg.Database == "" {
		return store.NewMemoryStore(), nil
	}
	st, err := store.OpenSQLite(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", a.cfg.Database, err)
	}
	return st, nil
}

func printReport(w io.Writer, r *bench.Report) {
	printer.Success(w, "run %s\n", r.ID)
	fmt.Fprintf(w, "  opening    %s\n", r.Opening)
	fmt.Fprintf(w, "  won        %d/%d (%.1f%%)\n", r.Wins, r.Games, r.HitRate*100)
	fmt.Fprintf(w, "  avg turns  %.3f\n", r.AvgTurns)
	fmt.Fprintf(w, "  took       %s\n", r.Duration.Round(time.Millisecond))

	turns := make([]int, 0, len(r.Histogram))
	for t := range r.Histogram {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		fmt.Fprintf(w, "  %2d  %d\n", t, r.Histogram[t])
	}
	if len(r.Losses) > 0 {
		printer.Warning(w, "lost: %v\n", r.Losses)
	}
}
