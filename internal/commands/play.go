package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/printer"
)

func newPlayCmd(a *app) *cobra.Command {
	var maxTurns int
	cmd := &cobra.Command{
		Use:   "play <answer>",
		Short: "Let the solver play one game against a known answer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("max-turns") {
				a.cfg.MaxTurns = maxTurns
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			answer, err := game.ParseWord(args[0])
			if err != nil {
				return printer.Error(fmt.Sprintf("Bad answer %q", args[0]), "Words are exactly five letters a-z.")
			}
			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !dict.Contains(answer) {
				printer.Warning(out, "%s is not in the dictionary; the solver cannot find it\n", answer)
			}
			outcome, err := game.Play(dict, answer, a.newSolver(dict), a.cfg.MaxTurns)
			if err != nil {
				return err
			}
			printOutcome(out, outcome)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxTurns, "max-turns", game.MaxTurns, "turn cap (1-32)")
	return cmd
}

func printOutcome(w io.Writer, o game.Outcome) {
	for i, g := range o.History {
		printer.Guess(w, i+1, g)
	}
	if o.Won {
		printer.Success(w, "solved %s in %d\n", o.Answer, o.Turns)
		return
	}
	printer.Warning(w, "gave up on %s after %d turns\n", o.Answer, o.Turns)
}
