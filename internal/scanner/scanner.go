// Package scanner enumerates candidate files under a source directory.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options configures candidate enumeration.
type Options struct {
	// Recursive walks the whole tree instead of direct children only.
	Recursive bool

	// ExcludeNames lists basenames that are never candidates, in addition
	// to hidden files. Used to keep the organizer's own binary out of a
	// scan when it sits inside the source tree.
	ExcludeNames []string
}

// SelfExclusions returns the basenames under which the running program
// might appear inside a scanned directory.
func SelfExclusions() []string {
	names := []string{filepath.Base(os.Args[0])}
	if exe, err := os.Executable(); err == nil {
		base := filepath.Base(exe)
		if base != names[0] {
			names = append(names, base)
		}
	}
	return names
}

// ListCandidates returns the regular files under source that qualify for
// organizing. Hidden files (basename starting with a dot) are excluded;
// hidden directories are still traversed, only the file's own name is
// tested. Results are in directory order.
func ListCandidates(source string, opts Options) ([]string, error) {
	if opts.Recursive {
		return walkCandidates(source, opts)
	}
	return listDirect(source, opts)
}

func listDirect(source string, opts Options) ([]string, error) {
	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, fmt.Errorf("unable to read source directory: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if excluded(entry.Name(), opts.ExcludeNames) {
			continue
		}
		candidates = append(candidates, filepath.Join(source, entry.Name()))
	}
	return candidates, nil
}

func walkCandidates(source string, opts Options) ([]string, error) {
	var candidates []string
	err := filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == source {
				return fmt.Errorf("unable to read source directory: %w", err)
			}
			return nil // unreadable subtree, keep walking
		}
		if d.IsDir() {
			return nil
		}
		if excluded(d.Name(), opts.ExcludeNames) {
			return nil
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func excluded(name string, excludeNames []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, ex := range excludeNames {
		if name == ex {
			return true
		}
	}
	return false
}
