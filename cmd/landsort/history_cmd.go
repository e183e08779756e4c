package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Nomadcxx/landsort/internal/history"
)

var (
	historyLimit  int
	historyByYear bool
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently organized files",
		Long: `History lists the copies and moves recorded by previous runs,
newest first. Use --by-year for per-year totals instead.`,
		RunE: runHistory,
	}

	cmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	cmd.Flags().BoolVar(&historyByYear, "by-year", false, "show per-year totals instead of individual transfers")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := history.Open()
	if err != nil {
		return fmt.Errorf("unable to open history database: %w", err)
	}
	defer db.Close()

	if historyByYear {
		return printYearStats(db)
	}
	return printRecentTransfers(db)
}

func printRecentTransfers(db *history.DB) error {
	transfers, err := db.Recent(historyLimit)
	if err != nil {
		return err
	}

	if len(transfers) == 0 {
		fmt.Println("No transfers recorded yet.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"When", "Op", "Year", "File", "Size"})
	for _, tr := range transfers {
		t.AppendRow(table.Row{
			tr.ExecutedAt.Local().Format(time.DateTime),
			tr.Operation,
			tr.Year,
			filepath.Base(tr.TargetPath),
			formatBytes(tr.Bytes),
		})
	}
	t.Render()
	return nil
}

func printYearStats(db *history.DB) error {
	counts, bytes, err := db.StatsByYear()
	if err != nil {
		return err
	}

	if len(counts) == 0 {
		fmt.Println("No transfers recorded yet.")
		return nil
	}

	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Year", "Files", "Total Size"})
	for _, year := range years {
		t.AppendRow(table.Row{year, counts[year], formatBytes(bytes[year])})
	}
	t.Render()
	return nil
}
