package main

import (
	"github.com/spf13/cobra"

	"github.com/phyten/fortcase/internal/config"
	engineopts "github.com/phyten/fortcase/internal/engine/opts"
)

// cliFlags はコマンドラインフラグの生の値
type cliFlags struct {
	upper      bool
	lower      bool
	quiet      bool
	config     string
	jobs       int
	color      string
	output     string
	check      bool
	watch      bool
	excludes   []string
	allFiles   bool
	progress   bool
	noProgress bool
	verbose    bool
	logLevel   string
}

func (f *cliFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.BoolVarP(&f.upper, "upper", "u", false, "convert to upper case (default)")
	fs.BoolVarP(&f.lower, "lower", "l", false, "convert to lower case")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "do not print the summary")
	fs.StringVar(&f.config, "config", "", "config file (default: .fortcase.{yaml,yml,toml,json} searched upwards)")
	fs.IntVarP(&f.jobs, "jobs", "j", engineopts.DefaultJobs(), "max parallel files (1-64)")
	fs.StringVar(&f.color, "color", "auto", "auto|always|never")
	fs.StringVarP(&f.output, "output", "o", "text", "text|json|ndjson|csv|markdown")
	fs.BoolVar(&f.check, "check", false, "report files that would change without writing them")
	fs.BoolVar(&f.watch, "watch", false, "keep converting files when they change")
	fs.StringSliceVar(&f.excludes, "exclude", nil, "doublestar pattern to skip (repeatable, comma separated)")
	fs.BoolVar(&f.allFiles, "all-files", false, "do not restrict glob matches to fixed-form extensions")
	fs.BoolVar(&f.progress, "progress", false, "force progress even when piped")
	fs.BoolVar(&f.noProgress, "no-progress", false, "disable progress")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging (same as --log-level debug)")
	fs.StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error")

	cmd.MarkFlagsMutuallyExclusive("upper", "lower")
	cmd.MarkFlagsMutuallyExclusive("progress", "no-progress")
}

// layers turns the flags the user actually set into the highest-priority
// config layer. Untouched flags stay nil so config and env values survive.
func (f *cliFlags) layers(cmd *cobra.Command, args []string) (config.EngineConfig, config.UIConfig) {
	var eng config.EngineConfig
	var ui config.UIConfig
	changed := cmd.Flags().Changed

	switch {
	case changed("lower") && f.lower:
		eng.Mode = strPtr("lower")
	case changed("upper") && f.upper:
		eng.Mode = strPtr("upper")
	}
	if len(args) > 0 {
		paths := append([]string(nil), args...)
		eng.Paths = &paths
	}
	if changed("exclude") {
		ex := engineopts.SplitMulti(f.excludes)
		if ex == nil {
			ex = []string{}
		}
		eng.Excludes = &ex
	}
	if changed("all-files") {
		eng.AllFiles = boolPtr(f.allFiles)
	}
	if changed("check") {
		eng.Check = boolPtr(f.check)
	}
	if changed("jobs") {
		eng.Jobs = intPtr(f.jobs)
	}

	if changed("output") {
		ui.Output = strPtr(f.output)
	}
	if changed("color") {
		ui.Color = strPtr(f.color)
	}
	if changed("quiet") {
		ui.Quiet = boolPtr(f.quiet)
	}
	switch {
	case changed("no-progress") && f.noProgress:
		ui.Progress = boolPtr(false)
	case changed("progress"):
		ui.Progress = boolPtr(f.progress)
	}
	if changed("log-level") {
		ui.LogLevel = strPtr(f.logLevel)
	}
	if f.verbose {
		ui.LogLevel = strPtr("debug")
	}
	if changed("watch") {
		ui.Watch = boolPtr(f.watch)
	}
	return eng, ui
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
