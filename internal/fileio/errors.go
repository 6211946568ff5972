package fileio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// Kind classifies I/O failures into the categories reported to users.
type Kind int

const (
	KindOther Kind = iota
	KindNotFound
	KindIsDirectory
	KindPermissionDenied
	KindLocked
	KindTimedOut
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindIsDirectory:
		return "is_directory"
	case KindPermissionDenied:
		return "permission_denied"
	case KindLocked:
		return "locked"
	case KindTimedOut:
		return "timed_out"
	default:
		return "other"
	}
}

// Message is the user-facing line for the kind. KindOther has no fixed text.
func (k Kind) Message() string {
	switch k {
	case KindNotFound:
		return "ERROR: File not found."
	case KindIsDirectory:
		return "ERROR: The file is a directory."
	case KindPermissionDenied:
		return "ERROR: Check file access permissions."
	case KindLocked:
		return "ERROR: File locked by another process."
	case KindTimedOut:
		return "ERROR: Time out."
	default:
		return ""
	}
}

// ExitCode is the process status for a failure of this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindNotFound:
		return 2
	case KindIsDirectory:
		return 3
	case KindPermissionDenied:
		return 4
	case KindLocked:
		return 5
	case KindTimedOut:
		return 6
	default:
		return 1
	}
}

// Error is an I/O failure on a single path.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage renders the error the way the CLI prints it.
func (e *Error) UserMessage() string {
	if msg := e.Kind.Message(); msg != "" {
		return msg
	}
	return "ERROR: " + e.Err.Error()
}

// Classify maps an arbitrary error onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindOther
	}
	var fe *Error
	if errors.As(err, &fe) && fe.Kind != KindOther {
		return fe.Kind
	}
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, syscall.EISDIR):
		return KindIsDirectory
	case errors.Is(err, fs.ErrPermission), errors.Is(err, syscall.EROFS):
		return KindPermissionDenied
	case errors.Is(err, syscall.EBUSY), errors.Is(err, syscall.ETXTBSY), errors.Is(err, syscall.EAGAIN):
		return KindLocked
	case errors.Is(err, os.ErrDeadlineExceeded), errors.Is(err, syscall.ETIMEDOUT), errors.Is(err, context.DeadlineExceeded):
		return KindTimedOut
	default:
		return KindOther
	}
}

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Classify(err), Op: op, Path: path, Err: err}
}
