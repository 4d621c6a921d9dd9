package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/printer"
)

func newRunsCmd(a *app) *cobra.Command {
	var (
		limit int
		db    string
	)
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List the best recorded benchmark runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("db") {
				a.cfg.Database = db
			}
			out := cmd.OutOrStdout()
			if a.cfg.Database == "" {
				printer.Warning(out, "no database configured; pass --db or set BENCH_DB\n")
				return nil
			}
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs recorded")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tSTARTED\tOPENING\tWON\tHIT RATE\tAVG TURNS")
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%.1f%%\t%.3f\n",
					r.ID, r.StartedAt.Format("2006-01-02 15:04"), r.Opening,
					r.Wins, r.Games, r.HitRate*100, r.AvgTurns)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "how many runs to show")
	cmd.Flags().StringVar(&db, "db", "", "SQLite file holding recorded runs")
	return cmd
}
