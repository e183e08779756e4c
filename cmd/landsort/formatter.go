package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Nomadcxx/landsort/internal/organizer"
)

func printRunHeader(opts organizer.Options) {
	fmt.Printf("Source: %s\n", opts.Source)
	fmt.Printf("Dest:   %s\n", opts.Dest)
	fmt.Printf("Mode:   %s  |  Recursive: %v  |  Dry-run: %v\n",
		opts.Mode, opts.Recursive, opts.DryRun)
}

// printPlan renders the dry-run plan as a table of planned transfers.
func printPlan(plan *organizer.Plan) {
	if len(plan.Entries) == 0 {
		fmt.Println("Nothing to do.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Year", "File", "Target"})
	for _, entry := range plan.Entries {
		t.AppendRow(table.Row{
			entry.Year,
			filepath.Base(entry.SourcePath),
			entry.TargetPath,
		})
	}
	t.Render()
}

func printRunSummary(result *organizer.Result) {
	fmt.Printf("Found %d files; %d matched a year; %d skipped\n",
		result.Found, result.Matched, result.Skipped)

	fmt.Println(strings.Repeat("=", 60))

	verb := "written"
	if result.DryRun {
		verb = "planned"
	}
	fmt.Printf("Done. %d files %s into year folders.\n", result.Written, verb)

	if result.Skipped > 0 {
		fmt.Printf("Skipped %d files without a YYYYMMDD token.\n", result.Skipped)
	}
	if result.Collisions > 0 {
		fmt.Printf("Left %d existing destination files untouched.\n", result.Collisions)
	}
	if !result.DryRun && result.BytesCopied > 0 {
		fmt.Printf("Transferred %s in %s.\n", formatBytes(result.BytesCopied), result.Duration.Round(time.Millisecond))
	}
	for _, failure := range result.Failures {
		fmt.Printf("Error processing %s: %v\n", filepath.Base(failure.Path), failure.Err)
	}
}

// formatBytes converts bytes to human-readable format (e.g., "1.5 GB")
func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
