package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/solver/internal/config"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/solver"
	"github.com/robalobadob/wordle/apps/solver/internal/words"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records build information shown by --version.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// app carries per-invocation state shared by subcommands.
type app struct {
	configPath string
	cfg        *config.Config

	// flag overrides; empty/zero means "keep config value"
	dictFlag    string
	answersFlag string
	openingFlag string
	levelFlag   string
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wordle-solver",
		Short: "Entropy-driven Wordle solver",
		Long: `wordle-solver plays Wordle by picking, each turn, the remaining candidate
whose feedback is expected to reveal the most information, weighted by how
likely that candidate is to be the answer itself.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVar(&a.dictFlag, "dictionary", "", "dictionary file of \"<word> <freq>\" lines (default embedded)")
	pf.StringVar(&a.answersFlag, "answers", "", "answer list, one word per line (default embedded)")
	pf.StringVar(&a.openingFlag, "opening", "", "first guess (default tares)")
	pf.StringVar(&a.levelFlag, "log-level", "", "debug|info|warn|error")

	root.AddCommand(
		newScoreCmd(a),
		newPlayCmd(a),
		newSolveCmd(a),
		newBenchCmd(a),
		newRunsCmd(a),
		newDailyCmd(a),
	)
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) load() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dictFlag != "" {
		cfg.Dictionary = a.dictFlag
	}
	if a.answersFlag != "" {
		cfg.Answers = a.answersFlag
	}
	if a.openingFlag != "" {
		cfg.Opening = a.openingFlag
	}
	if a.levelFlag != "" {
		cfg.LogLevel = a.levelFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	a.cfg = cfg
	return nil
}

func (a *app) dictionary() (*words.Dictionary, error) {
	d, err := words.Load(a.cfg.Dictionary)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	return d, nil
}

func (a *app) answerList() ([]game.Word, error) {
	ans, err := words.LoadAnswers(a.cfg.Answers)
	if err != nil {
		return nil, fmt.Errorf("load answers: %w", err)
	}
	return ans, nil
}

func (a *app) newSolver(d *words.Dictionary) *solver.Solver {
	return solver.New(d, solver.WithOpening(a.cfg.OpeningWord()))
}
