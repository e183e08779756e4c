package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/landsort/internal/config"
	"github.com/Nomadcxx/landsort/internal/history"
	"github.com/Nomadcxx/landsort/internal/logging"
	"github.com/Nomadcxx/landsort/internal/organizer"
)

var (
	version = "dev" // Set by build flags: -ldflags="-X main.version=1.0.0"
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "landsort",
		Short: "Sort satellite imagery into year folders",
		Long: `landsort sorts Landsat Collection 2 imagery into year-named folders
by reading the YYYYMMDD acquisition token embedded in each filename.

  LC08_L2SP_141055_20150414_20200908_02_T1_SR_B4.TIF  ->  2015/

Existing destination files are never overwritten; collisions are skipped,
so re-running over the same source is always safe.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newOrganizeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the landsort version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("landsort %s\n", version)
		},
	}
}

// buildLogger creates the structured logger from config, raised to debug
// when --verbose is set.
func buildLogger(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	if verbose {
		logger.SetLevel(logging.LevelDebug)
	}
	return logger, nil
}

// buildOrganizer assembles an organizer from config, opening the history
// database when enabled. The returned cleanup closes the database.
func buildOrganizer(cfg *config.Config, logger *logging.Logger) (*organizer.Organizer, func()) {
	opts := []func(*organizer.Organizer){
		organizer.WithLogger(logger),
	}

	cleanup := func() {}
	if cfg.History.Enabled {
		if db, err := history.Open(); err == nil {
			opts = append(opts, organizer.WithHistory(db))
			cleanup = func() { db.Close() }
		} else {
			logger.Warn("cli", "history database unavailable", logging.F("error", err))
		}
	}

	return organizer.New(opts...), cleanup
}
