package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/printer"
)

func newScoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score <answer> <guess>",
		Short: "Show the feedback a guess earns against an answer",
		Example: `  wordle-solver score right wrong
   1   W  R  O  N  G   wmwwm`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			answer, err := game.ParseWord(args[0])
			if err != nil {
				return printer.Error(fmt.Sprintf("Bad answer %q", args[0]), "Words are exactly five letters a-z.")
			}
			guess, err := game.ParseWord(args[1])
			if err != nil {
				return printer.Error(fmt.Sprintf("Bad guess %q", args[1]), "Words are exactly five letters a-z.")
			}
			printer.Guess(cmd.OutOrStdout(), 1, game.Guess{Word: guess, Mask: game.Compute(answer, guess)})
			return nil
		},
	}
}
