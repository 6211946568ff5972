package engine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/phyten/fortcase/internal/detect"
	"github.com/phyten/fortcase/internal/discover"
	"github.com/phyten/fortcase/internal/fileio"
	"github.com/phyten/fortcase/internal/logging"
	"github.com/phyten/fortcase/internal/progress"
)

// Run は指定されたパスのファイルを変換し、ファイルごとの統計と合計を返します。
//
// 1 ファイルの失敗は Result.Errors に集約され、他のファイルの処理は継続します。
// error が返るのはオプション不正・パターン展開失敗・キャンセル時のみです。
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	logger := logging.Default(opts.Logger)
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}

	targets, err := discover.Expand(opts.Paths, discover.Options{
		Excludes: opts.Excludes,
		AllFiles: opts.AllFiles,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}
	res := &Result{Mode: opts.Mode.String(), Check: opts.Check}
	if len(targets) == 0 {
		res.ElapsedMS = msSince(start)
		return res, nil
	}

	files := make([]FileResult, len(targets))
	failures := make([]*FileError, len(targets))
	bar := progress.New(nil, len(targets), opts.Progress)

	// each file gets its own converter and Stats; totals are merged afterwards
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, t := range targets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			defer bar.Advance()
			fr, err := ProcessFile(gctx, t.Path, opts.Mode, !opts.Check, logger)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				fe := newFileError(t.Path, err)
				failures[i] = &fe
				logger.Debug("file failed", "file", t.Path, "kind", fe.Kind, "error", err)
				return nil
			}
			files[i] = fr
			return nil
		})
	}
	err = g.Wait()
	bar.Done()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range targets {
		if failures[i] != nil {
			res.Errors = append(res.Errors, *failures[i])
			continue
		}
		fr := files[i]
		res.Files = append(res.Files, fr)
		res.Total.Add(fr.Stats())
		if fr.Changed {
			res.ChangedFiles++
		}
	}
	res.FileCount = len(res.Files)
	res.ErrorCount = len(res.Errors)
	res.ElapsedMS = msSince(start)
	return res, nil
}

// ProcessFile converts one file. With write set, the file is replaced
// atomically, and only when at least one character changed.
func ProcessFile(ctx context.Context, path string, mode Mode, write bool, logger *slog.Logger) (FileResult, error) {
	logger = logging.Default(logger)
	fr := FileResult{File: path}
	src, err := fileio.Read(path)
	if err != nil {
		return fr, err
	}
	switch info := detect.FromPathAndContent(path, head(src.Lines, 200)); info.Form {
	case detect.FormFree:
		logger.Warn("free-form source, applying fixed-form rules anyway", "file", path)
	case detect.FormUnknown:
		logger.Debug("source form not recognised", "file", path)
	}

	var stats Stats
	conv := NewConverter(mode, &stats)
	lines, err := ScanLines(ctx, src.Lines, conv)
	if err != nil {
		return fr, err
	}
	fr.Lines = len(src.Lines)
	fr.LinesChanged = stats.LinesChanged
	fr.CharsChanged = stats.CharsChanged
	fr.Changed = stats.CharsChanged > 0

	if fr.Changed && write {
		if err := fileio.WriteAtomic(path, lines, src.Perm); err != nil {
			return fr, err
		}
		fr.Written = true
	}
	logger.Debug("file done", "file", path, "lines_changed", fr.LinesChanged, "chars_changed", fr.CharsChanged, "written", fr.Written)
	return fr, nil
}

func newFileError(path string, err error) FileError {
	kind := fileio.Classify(err)
	msg := kind.Message()
	var fe *fileio.Error
	if errors.As(err, &fe) {
		msg = fe.UserMessage()
	}
	if msg == "" {
		msg = "ERROR: " + strings.TrimSpace(err.Error())
	}
	return FileError{File: path, Kind: kind.String(), Message: msg, Err: err}
}

// UserMessage is the message printed for a failed file.
func UserMessage(err error) string {
	return newFileError("", err).Message
}

func head(lines []string, n int) []byte {
	if len(lines) > n {
		lines = lines[:n]
	}
	return []byte(strings.Join(lines, ""))
}

func msSince(t time.Time) int64 { return time.Since(t).Milliseconds() }
