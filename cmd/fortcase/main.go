// Command fortcase rewrites fixed-form source files in place, converting code
// outside comments, quoted strings and protected tokens to upper or lower case.
//
// Logging:
//   - the base logger is built here from the resolved log level
//   - it is passed down explicitly; slog.SetDefault is never called
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phyten/fortcase/internal/config"
	"github.com/phyten/fortcase/internal/discover"
	"github.com/phyten/fortcase/internal/engine"
	engineopts "github.com/phyten/fortcase/internal/engine/opts"
	"github.com/phyten/fortcase/internal/fileio"
	"github.com/phyten/fortcase/internal/logging"
	"github.com/phyten/fortcase/internal/output"
	"github.com/phyten/fortcase/internal/progress"
	"github.com/phyten/fortcase/internal/termcolor"
	"github.com/phyten/fortcase/internal/watch"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, os.Getenv)
	stop()
	os.Exit(code)
}

// exitError carries a process exit status out of cobra. A nil err means the
// message (if any) was already printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// run executes the command and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	cmd := newRootCmd(stdout, stderr, getenv)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "ERROR: %v\n", ee.err)
		}
		return ee.code
	}
	if errors.Is(err, context.Canceled) {
		return 130
	}
	fmt.Fprintf(stderr, "ERROR: %v\n", err)
	return 1
}

func newRootCmd(stdout, stderr io.Writer, getenv func(string) string) *cobra.Command {
	var f cliFlags
	cmd := &cobra.Command{
		Use:   "fortcase [flags] FILE...",
		Short: "Convert fixed-form source code to upper or lower case",
		Long: `fortcase rewrites each FILE in place. Comment lines, quoted strings and
the tokens __LINE__, __FILE__ and __DATE__ are left untouched.

FILE may be a doublestar pattern such as 'src/**/*.for'.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd.Context(), cmd, &f, args, stdout, stderr, getenv)
		},
	}
	f.register(cmd)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// execute resolves settings, runs one conversion pass and optionally keeps
// watching the processed files.
func execute(ctx context.Context, cmd *cobra.Command, f *cliFlags, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	engineFlags, uiFlags := f.layers(cmd, args)
	eng, ui, err := resolveSettings(getenv, f.config, engineFlags, uiFlags)
	if err != nil {
		return &exitError{code: 1, err: err}
	}

	level, err := logging.ParseLevel(ui.LogLevel)
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	logger := logging.New(stderr, level)

	opts := engineopts.Defaults()
	if err := eng.ApplyToOptions(&opts); err != nil {
		return &exitError{code: 1, err: err}
	}
	if err := engineopts.NormalizeAndValidate(&opts); err != nil {
		return &exitError{code: 1, err: err}
	}
	opts.Logger = logger
	opts.Progress = len(opts.Paths) > 1 || anyPattern(opts.Paths)
	opts.Progress = opts.Progress && !ui.Quiet && progress.ShouldShow(ui.Progress, ui.NoProgress)

	colorMode, err := termcolor.ParseMode(ui.Color)
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	textOpts := output.TextOptions{Color: termcolor.Enabled(colorMode, asFile(stdout), colorEnv(getenv))}

	logger.Debug("run", "mode", opts.Mode.String(), "paths", opts.Paths, "jobs", opts.Jobs, "check", opts.Check)
	res, err := engine.Run(ctx, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return &exitError{code: 130}
		}
		return &exitError{code: 1, err: err}
	}

	if !ui.Quiet {
		if err := output.Write(stdout, res, ui.Output, textOpts); err != nil {
			return &exitError{code: 1, err: err}
		}
	}
	reportErrors(stderr, res)

	if ui.Watch {
		return watchFiles(ctx, res, opts, ui, stdout, stderr, logger)
	}
	if code := exitCode(res); code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// resolveSettings merges defaults < config file < environment < flags.
func resolveSettings(getenv func(string) string, explicitConfig string, engineFlags config.EngineConfig, uiFlags config.UIConfig) (config.EngineSettings, config.UISettings, error) {
	var fileCfg config.Config
	if explicitConfig == "" {
		explicitConfig = getenv(config.EnvPrefix + "CONFIG")
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	path, _, err := config.Find(cwd, explicitConfig, getenv("XDG_CONFIG_HOME"), getenv("HOME"))
	if err != nil {
		return config.EngineSettings{}, config.UISettings{}, fmt.Errorf("config: %w", err)
	}
	if path != "" {
		fileCfg, err = config.Load(path)
		if err != nil {
			return config.EngineSettings{}, config.UISettings{}, err
		}
	}
	envCfg, err := config.FromEnv(getenv)
	if err != nil {
		return config.EngineSettings{}, config.UISettings{}, err
	}

	base := config.EngineSettingsFromOptions(engineopts.Defaults())
	eng := config.MergeEngine(base, fileCfg.Engine, envCfg.Engine, engineFlags)
	ui := config.MergeUI(config.DefaultUISettings(), fileCfg.UI, envCfg.UI, uiFlags)
	ui, err = config.NormalizeUI(ui)
	if err != nil {
		return config.EngineSettings{}, config.UISettings{}, err
	}
	return eng, ui, nil
}

// exitCode maps a finished run to the process status: the first failed
// file decides it, otherwise a check run with pending changes exits 1.
func exitCode(res *engine.Result) int {
	if res == nil {
		return 0
	}
	if len(res.Errors) > 0 {
		return fileio.Classify(res.Errors[0].Err).ExitCode()
	}
	if res.Check && res.ChangedFiles > 0 {
		return 1
	}
	return 0
}

func reportErrors(w io.Writer, res *engine.Result) {
	if res == nil {
		return
	}
	multi := len(res.Files)+len(res.Errors) > 1
	for _, e := range res.Errors {
		if multi {
			fmt.Fprintf(w, "%s: %s\n", e.File, e.Message)
			continue
		}
		fmt.Fprintln(w, e.Message)
	}
}

func watchFiles(ctx context.Context, res *engine.Result, opts engine.Options, ui config.UISettings, stdout, stderr io.Writer, logger *slog.Logger) error {
	paths := make([]string, 0, len(res.Files))
	for _, fr := range res.Files {
		paths = append(paths, fr.File)
	}
	if len(paths) == 0 {
		return &exitError{code: exitCode(res)}
	}
	w, err := watch.New(paths, func(ctx context.Context, path string) {
		fr, err := engine.ProcessFile(ctx, path, opts.Mode, !opts.Check, logger)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintf(stderr, "%s: %s\n", path, engine.UserMessage(err))
			return
		}
		if fr.Changed && !ui.Quiet {
			fmt.Fprintf(stdout, "%s: %s\n", path, output.SummaryLine(fr.Stats()))
		}
	}, logger)
	if err != nil {
		return &exitError{code: 1, err: err}
	}
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return &exitError{code: 1, err: err}
	}
	return nil
}

func anyPattern(paths []string) bool {
	for _, p := range paths {
		if discover.HasMeta(p) {
			return true
		}
	}
	return false
}

func asFile(w io.Writer) *os.File {
	if f, ok := w.(*os.File); ok {
		return f
	}
	return nil
}

func colorEnv(getenv func(string) string) map[string]string {
	env := make(map[string]string)
	for _, key := range []string{"TERM", "NO_COLOR", "CLICOLOR", "CLICOLOR_FORCE", "FORCE_COLOR"} {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}
