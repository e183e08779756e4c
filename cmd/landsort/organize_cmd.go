package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/landsort/internal/config"
	"github.com/Nomadcxx/landsort/internal/organizer"
)

var (
	sourceDir string
	destDir   string
	modeName  string
	recursive bool
	dryRun    bool
)

func newOrganizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize --source <dir> --dest <dir>",
		Short: "Sort imagery files from source into year folders under dest",
		Long: `Organize scans the source directory, extracts the acquisition year
from each filename, and copies or moves matching files into
<dest>/<YYYY>/ subfolders. Files without a YYYYMMDD token are skipped
and existing destination files are never overwritten.

Examples:
  landsort organize --source ~/downloads/landsat --dest ~/imagery/by-year
  landsort organize --source ~/downloads/landsat --dest ~/imagery/by-year --mode move --recursive
  landsort organize --source ~/downloads/landsat --dest ~/imagery/by-year --dry-run`,
		RunE: runOrganize,
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "directory to scan (required)")
	cmd.Flags().StringVar(&destDir, "dest", "", "root directory for year subfolders, created if missing (required)")
	cmd.Flags().StringVar(&modeName, "mode", "copy", "copy or move")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "scan subdirectories of source")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and print the plan without touching the filesystem")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyConfigDefaults(cmd, cfg)

	mode, err := organizer.ParseMode(modeName)
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("unable to set up logging: %w", err)
	}
	defer logger.Close()

	org, cleanup := buildOrganizer(cfg, logger)
	defer cleanup()

	opts := organizer.Options{
		Source:    sourceDir,
		Dest:      destDir,
		Mode:      mode,
		Recursive: recursive,
		DryRun:    dryRun,
	}

	printRunHeader(opts)

	if dryRun {
		plan, err := org.BuildPlan(opts)
		if err != nil {
			return err
		}
		printPlan(plan)
	}

	result, err := org.Run(opts)
	if err != nil {
		// Source-missing is the only condition that aborts with a
		// non-zero exit; everything else is summarized below.
		return err
	}

	printRunSummary(result)
	return nil
}

// applyConfigDefaults substitutes config file values for flags the user
// did not set on the command line.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("mode") && cfg.Options.Mode != "" {
		modeName = cfg.Options.Mode
	}
	if !cmd.Flags().Changed("recursive") {
		recursive = cfg.Options.Recursive
	}
	if !cmd.Flags().Changed("dry-run") {
		dryRun = cfg.Options.DryRun
	}
}
