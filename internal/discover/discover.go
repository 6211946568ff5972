// Package discover turns command-line path arguments into the list of files
// to convert.
package discover

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/phyten/fortcase/internal/detect"
	"github.com/phyten/fortcase/internal/logging"
)

// Target is one file selected for conversion.
type Target struct {
	Path string
	// Explicit is true for paths named literally on the command line. They
	// are passed on unchecked so that I/O errors surface for them.
	Explicit bool
}

type Options struct {
	Excludes []string
	// AllFiles keeps glob matches that do not carry a fixed-form extension.
	AllFiles bool
	Logger   *slog.Logger
}

// HasMeta reports whether p contains glob metacharacters.
func HasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// Expand resolves patterns in order. Literal paths are kept as given; glob
// patterns are expanded with doublestar semantics ("**" crosses directories),
// restricted to regular files and filtered through the exclude list.
// Duplicates are dropped, first occurrence wins.
func Expand(patterns []string, o Options) ([]Target, error) {
	logger := logging.Default(o.Logger)
	for _, ex := range o.Excludes {
		if !doublestar.ValidatePattern(filepath.ToSlash(ex)) {
			return nil, fmt.Errorf("invalid exclude pattern: %s", ex)
		}
	}

	seen := make(map[string]bool)
	var out []Target
	add := func(t Target) {
		key := filepath.Clean(t.Path)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, t)
	}

	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if !HasMeta(pattern) {
			add(Target{Path: pattern, Explicit: true})
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(matches)
		kept := 0
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if !o.AllFiles && !detect.IsFixedForm(m) {
				continue
			}
			if Excluded(m, o.Excludes) {
				continue
			}
			add(Target{Path: m})
			kept++
		}
		if kept == 0 {
			logger.Warn("pattern matched no files", "pattern", pattern)
		}
	}
	return out, nil
}

// Excluded reports whether path matches any exclude pattern, either as a
// whole (slash-separated) or by its base name.
func Excluded(path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	slashed := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, ex := range excludes {
		ex = filepath.ToSlash(ex)
		if ok, _ := doublestar.Match(ex, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(ex, base); ok {
			return true
		}
	}
	return false
}
