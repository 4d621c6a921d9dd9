package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/printer"
)

func newSolveCmd(a *app) *cobra.Command {
	var top int
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Suggest guesses for a game played elsewhere",
		Long: `solve suggests a word, then reads the feedback you got for it.

Type the feedback as five letters: c (or g) for correct, m (or y) for
misplaced, w (or . or -) for wrong. If you played a different word, type
"<word> <feedback>" instead. An empty line or q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			s := a.newSolver(dict)
			out := cmd.OutOrStdout()
			in := bufio.NewScanner(cmd.InOrStdin())

			var history []game.Guess
			for len(history) < a.cfg.MaxTurns {
				suggestion, err := s.Guess(history)
				if err != nil {
					return printer.Error("No word fits that feedback", err.Error())
				}
				fmt.Fprintf(out, "try %s  (%d candidates", strings.ToUpper(suggestion.String()), s.Remaining())
				if top > 0 && len(history) > 0 {
					fmt.Fprintf(out, ": %s", joinWords(s.Candidates(top)))
				}
				fmt.Fprintln(out, ")")

				fmt.Fprint(out, "> ")
				if !in.Scan() {
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				if line == "" || line == "q" {
					return nil
				}

				g, err := readFeedback(line, suggestion)
				if err != nil {
					printer.Warning(out, "%v\n", err)
					continue
				}
				history = append(history, g)
				printer.Guess(out, len(history), g)
				if g.Mask.Solved() {
					printer.Success(out, "solved in %d\n", len(history))
					return nil
				}
			}
			printer.Warning(out, "out of turns\n")
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "show this many remaining candidates")
	return cmd
}

// readFeedback parses "<pattern>" or "<word> <pattern>".
func readFeedback(line string, suggestion game.Word) (game.Guess, error) {
	fields := strings.Fields(line)
	word := suggestion
	switch len(fields) {
	case 1:
	case 2:
		w, err := game.ParseWord(fields[0])
		if err != nil {
			return game.Guess{}, err
		}
		word = w
		fields = fields[1:]
	default:
		return game.Guess{}, fmt.Errorf("expected \"<feedback>\" or \"<word> <feedback>\", got %q", line)
	}
	p, err := game.ParsePattern(fields[0])
	if err != nil {
		return game.Guess{}, err
	}
	return game.Guess{Word: word, Mask: p}, nil
}

func joinWords(ws []game.Word) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return strings.Join(parts, " ")
}
