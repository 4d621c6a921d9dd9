package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/daily"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/printer"
)

func newDailyCmd(a *app) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "daily",
		Short: "Solve the answer of the day",
		Long: `daily picks the answer for a date from the answer list using
HMAC-SHA256(salt, YYYY-MM-DD), then lets the solver play it.
The salt comes from daily_salt / DAILY_SALT.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now()
			if date != "" {
				d, err := daily.ParseDateKey(date)
				if err != nil {
					return printer.Error(fmt.Sprintf("Bad date %q", date), "Use YYYY-MM-DD.")
				}
				day = d
			}
			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			answers, err := a.answerList()
			if err != nil {
				return err
			}
			answer, idx, err := daily.Answer(day, a.cfg.DailySalt, answers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  #%d\n", daily.DateKey(day), idx)
			outcome, err := game.Play(dict, answer, a.newSolver(dict), a.cfg.MaxTurns)
			if err != nil {
				return err
			}
			printOutcome(out, outcome)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to solve, YYYY-MM-DD (default today, UTC)")
	return cmd
}
