package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/landsort/internal/config"
	"github.com/Nomadcxx/landsort/internal/logging"
	"github.com/Nomadcxx/landsort/internal/organizer"
	"github.com/Nomadcxx/landsort/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch --source <dir> --dest <dir>",
		Short: "Watch source and organize files as they arrive",
		Long: `Watch monitors the source directory and organizes each new file into
<dest>/<YYYY>/ once it has settled (no writes for a few seconds, so
half-downloaded files are left alone). Runs until interrupted.`,
		RunE: runWatch,
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "directory to watch (required)")
	cmd.Flags().StringVar(&destDir, "dest", "", "root directory for year subfolders (required)")
	cmd.Flags().StringVar(&modeName, "mode", "copy", "copy or move")
	cmd.Flags().BoolVar(&recursive, "recursive", false, "watch subdirectories of source")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would happen without touching the filesystem")
	cmd.MarkFlagRequired("source")
	cmd.MarkFlagRequired("dest")

	return cmd
}

// organizeHandler feeds settled files from the watcher into the organizer.
type organizeHandler struct {
	org    *organizer.Organizer
	opts   organizer.Options
	logger *logging.Logger
}

func (h *organizeHandler) HandleFile(path string) error {
	result, err := h.org.OrganizeFile(path, h.opts)
	if err != nil {
		return err
	}

	switch {
	case result.Written > 0:
		fmt.Printf("Organized %s\n", filepath.Base(path))
	case result.Collisions > 0:
		h.logger.Debug("watch", "target exists, skipping", logging.F("file", filepath.Base(path)))
	case result.Skipped > 0:
		h.logger.Debug("watch", "no year token, skipping", logging.F("file", filepath.Base(path)))
	}
	for _, failure := range result.Failures {
		fmt.Printf("Error processing %s: %v\n", filepath.Base(failure.Path), failure.Err)
	}
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	// Sort whatever is already sitting in source before watching for more.
	result, err := org.Run(opts)
	if err != nil {
		return err
	}
	printRunSummary(result)

	settle := time.Duration(cfg.Watch.SettleSeconds) * time.Second
	w, err := watcher.New(
		&organizeHandler{org: org, opts: opts, logger: logger},
		watcher.WithRecursive(recursive),
		watcher.WithSettleDelay(settle),
		watcher.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Watch(sourceDir); err != nil {
		return err
	}

	fmt.Println("Watching for new files. Press Ctrl+C to stop.")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
