// bracketctl runs 10 team double elimination tournaments from
// the command line. The brackets are kept in a SQLite database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ezBadminton/gobracket/badminton"
	"github.com/ezBadminton/gobracket/internal/config"
	"github.com/ezBadminton/gobracket/internal/logging"
	"github.com/ezBadminton/gobracket/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// The state shared by the commands of one invocation
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	logger *zap.Logger
	store  store.Store
	score  badminton.ScoreSettings
}

func newRootCmd(a *app) *cobra.Command {

	root := &cobra.Command{
		Use:   "bracketctl",
		Short: "Run a 10 team double elimination bracket",
		Long: `bracketctl generates double elimination brackets for exactly 10 teams,
records match results and routes winners and losers to their next matches.

The 4 lowest seeds play the first round, the 6 highest seeds enter in the
second round. The losers segment champion has to beat the winners segment
champion twice in the finals.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "bracketctl.yaml", "config file")
	flags.StringVar(&a.dbPath, "db", "", "bracket database (overrides the config)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		a.generateCmd(),
		a.startCmd(),
		a.advanceCmd(),
		a.showCmd(),
		a.standingsCmd(),
		a.listCmd(),
		a.simulateCmd(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database = a.dbPath
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zap.DebugLevel
	}
	a.logger, err = logging.New(level)
	if err != nil {
		return err
	}

	a.score, err = cfg.ScoreSettings()
	if err != nil {
		return err
	}

	a.logger.Debug("Opening bracket database", zap.String("path", cfg.Database))
	a.store, err = store.OpenSQLite(cmd.Context(), cfg.Database)
	if err != nil {
		return err
	}

	return nil
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn("Closing the bracket database failed", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Runs the command line and releases the database and the
// logger also when the command failed
func execute(ctx context.Context, args []string, out io.Writer) error {
	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	return root.ExecuteContext(ctx)
}

func main() {
	if err := execute(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
