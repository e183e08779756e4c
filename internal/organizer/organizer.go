// Package organizer plans and executes the sorting of imagery files into
// year-named folders. A run is a single linear pass: enumerate candidates,
// extract the year from each filename, build a plan of (source, target)
// pairs, then copy or move each file, never overwriting existing targets.
package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/Nomadcxx/landsort/internal/history"
	"github.com/Nomadcxx/landsort/internal/logging"
	"github.com/Nomadcxx/landsort/internal/naming"
	"github.com/Nomadcxx/landsort/internal/scanner"
	"github.com/Nomadcxx/landsort/internal/transfer"
)

// ErrSourceMissing is the only error that aborts a run before any work.
var ErrSourceMissing = errors.New("source directory not found")

// Mode selects whether originals are duplicated or relocated.
type Mode string

const (
	ModeCopy Mode = "copy"
	ModeMove Mode = "move"
)

// ParseMode converts a CLI string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "copy", "":
		return ModeCopy, nil
	case "move":
		return ModeMove, nil
	default:
		return "", fmt.Errorf("invalid mode %q (want copy or move)", s)
	}
}

// Options is the immutable configuration for one run.
type Options struct {
	Source    string
	Dest      string
	Mode      Mode
	Recursive bool
	DryRun    bool
}

// PlanEntry pairs a discovered source file with its computed target path.
// The target path is the only place the extracted year is materialized,
// as the Dest/YYYY path segment.
type PlanEntry struct {
	SourcePath string
	TargetPath string
	Year       string
}

// Plan is the full set of decisions for a run, computed before any
// filesystem mutation.
type Plan struct {
	Entries []PlanEntry
	Skipped []string // candidates without a year token
	Found   int      // total candidates examined
}

// Years returns the distinct year folder names referenced by the plan,
// sorted ascending.
func (p *Plan) Years() []string {
	seen := make(map[string]struct{})
	for _, e := range p.Entries {
		seen[e.Year] = struct{}{}
	}
	years := make([]string, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Strings(years)
	return years
}

// FileFailure records a per-file I/O error. Failures never abort the batch.
type FileFailure struct {
	Path string
	Err  error
}

// Result summarizes one run.
type Result struct {
	Found       int // candidates examined
	Matched     int // candidates with a year token
	Skipped     int // candidates without a year token
	Written     int // files written (or planned, in dry-run)
	Collisions  int // targets that already existed, left untouched
	BytesCopied int64
	Duration    time.Duration
	Failures    []FileFailure
	DryRun      bool
}

// Organizer executes organize runs.
type Organizer struct {
	transferer   transfer.Transferer
	logger       *logging.Logger
	history      *history.DB
	excludeNames []string
}

// New creates an Organizer with a native transferer and no-op logger.
func New(options ...func(*Organizer)) *Organizer {
	org := &Organizer{
		transferer:   transfer.NewNativeTransferer(0),
		logger:       logging.Nop(),
		excludeNames: scanner.SelfExclusions(),
	}

	for _, opt := range options {
		opt(org)
	}

	return org
}

// WithTransferer overrides the transfer backend
func WithTransferer(t transfer.Transferer) func(*Organizer) {
	return func(o *Organizer) {
		o.transferer = t
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *logging.Logger) func(*Organizer) {
	return func(o *Organizer) {
		o.logger = logger
	}
}

// WithHistory enables transfer recording in the history database
func WithHistory(db *history.DB) func(*Organizer) {
	return func(o *Organizer) {
		o.history = db
	}
}

// WithExcludeNames overrides the basenames excluded from scans
func WithExcludeNames(names []string) func(*Organizer) {
	return func(o *Organizer) {
		o.excludeNames = names
	}
}

// BuildPlan enumerates candidates under opts.Source and computes the
// target path for every file with a year token. The filesystem is not
// modified. Returns ErrSourceMissing if the source does not exist.
func (o *Organizer) BuildPlan(opts Options) (*Plan, error) {
	info, err := os.Stat(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceMissing, opts.Source)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSourceMissing, opts.Source)
	}

	candidates, err := scanner.ListCandidates(opts.Source, scanner.Options{
		Recursive:    opts.Recursive,
		ExcludeNames: o.excludeNames,
	})
	if err != nil {
		return nil, err
	}

	plan := &Plan{Found: len(candidates)}
	for _, path := range candidates {
		filename := filepath.Base(path)
		year, err := naming.ExtractYear(filename)
		if err != nil {
			o.logger.Debug("organizer", "no year token, skipping", logging.F("file", filename))
			plan.Skipped = append(plan.Skipped, path)
			continue
		}
		plan.Entries = append(plan.Entries, PlanEntry{
			SourcePath: path,
			TargetPath: filepath.Join(opts.Dest, year, filename),
			Year:       year,
		})
	}

	return plan, nil
}

// Run builds and executes a plan. Only a missing source aborts; per-file
// failures are collected in the result and the batch continues.
func (o *Organizer) Run(opts Options) (*Result, error) {
	start := time.Now()

	plan, err := o.BuildPlan(opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Found:   plan.Found,
		Matched: len(plan.Entries),
		Skipped: len(plan.Skipped),
		DryRun:  opts.DryRun,
	}

	o.logger.Info("organizer", "plan computed",
		logging.F("source", opts.Source),
		logging.F("dest", opts.Dest),
		logging.F("mode", opts.Mode),
		logging.F("found", result.Found),
		logging.F("matched", result.Matched),
		logging.F("skipped", result.Skipped),
		logging.F("dry_run", opts.DryRun))

	if !opts.DryRun {
		if err := os.MkdirAll(opts.Dest, 0755); err != nil {
			return nil, fmt.Errorf("unable to create destination: %w", err)
		}
	}

	if len(plan.Entries) == 0 {
		result.Duration = time.Since(start)
		return result, nil
	}

	if !opts.DryRun {
		for _, year := range plan.Years() {
			if err := os.MkdirAll(filepath.Join(opts.Dest, year), 0755); err != nil {
				return nil, fmt.Errorf("unable to create year folder %s: %w", year, err)
			}
		}
	}

	for _, entry := range plan.Entries {
		o.executeEntry(entry, opts, result)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// executeEntry resolves one plan entry: collision skip, dry-run tally, or
// live transfer.
func (o *Organizer) executeEntry(entry PlanEntry, opts Options, result *Result) {
	if _, err := os.Stat(entry.TargetPath); err == nil {
		// Never overwrite existing data.
		result.Collisions++
		o.logger.Debug("organizer", "target exists, skipping",
			logging.F("target", entry.TargetPath))
		return
	}

	if opts.DryRun {
		result.Written++
		return
	}

	trOpts := transfer.DefaultOptions()

	var trResult *transfer.Result
	var err error
	if opts.Mode == ModeMove {
		trResult, err = o.transferer.Move(entry.SourcePath, entry.TargetPath, trOpts)
	} else {
		trResult, err = o.transferer.Copy(entry.SourcePath, entry.TargetPath, trOpts)
	}

	if err != nil {
		result.Failures = append(result.Failures, FileFailure{
			Path: entry.SourcePath,
			Err:  err,
		})
		o.logger.Error("organizer", "transfer failed", err,
			logging.F("source", entry.SourcePath),
			logging.F("target", entry.TargetPath))
		return
	}

	result.Written++
	result.BytesCopied += trResult.BytesCopied
	o.logger.Info("organizer", "file organized",
		logging.F("source", entry.SourcePath),
		logging.F("target", entry.TargetPath),
		logging.F("year", entry.Year),
		logging.F("bytes", trResult.BytesCopied))

	if o.history != nil {
		op := history.OpCopy
		if opts.Mode == ModeMove {
			op = history.OpMove
		}
		if err := o.history.LogTransfer(op, entry.SourcePath, entry.TargetPath,
			entry.Year, trResult.BytesCopied, trResult.Duration); err != nil {
			o.logger.Warn("organizer", "unable to record history",
				logging.F("target", entry.TargetPath),
				logging.F("error", err))
		}
	}
}

// OrganizeFile plans and executes a single file against opts.Dest. Used by
// watch mode when a new file settles in the source directory. Files without
// a year token are counted as skipped, not failed.
func (o *Organizer) OrganizeFile(path string, opts Options) (*Result, error) {
	start := time.Now()
	result := &Result{Found: 1, DryRun: opts.DryRun}

	filename := filepath.Base(path)
	year, err := naming.ExtractYear(filename)
	if err != nil {
		result.Skipped = 1
		result.Duration = time.Since(start)
		return result, nil
	}

	result.Matched = 1
	entry := PlanEntry{
		SourcePath: path,
		TargetPath: filepath.Join(opts.Dest, year, filename),
		Year:       year,
	}

	if !opts.DryRun {
		if err := os.MkdirAll(filepath.Join(opts.Dest, year), 0755); err != nil {
			return nil, fmt.Errorf("unable to create year folder %s: %w", year, err)
		}
	}

	o.executeEntry(entry, opts, result)
	result.Duration = time.Since(start)
	return result, nil
}
