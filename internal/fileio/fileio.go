// Package fileio reads source files as terminated lines and writes them back
// without ever leaving a half-written destination behind.
package fileio

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Source is the content of one file split into lines.
type Source struct {
	Path  string
	Lines []string
	Perm  fs.FileMode
}

// Read loads path. Every line keeps its terminator ("\n", "\r\n"); the last
// line has none when the file does not end with a newline.
func Read(path string) (*Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, wrap("stat", path, err)
	}
	if info.IsDir() {
		return nil, &Error{Kind: KindIsDirectory, Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap("read", path, err)
	}
	return &Source{Path: path, Lines: SplitLines(string(data)), Perm: info.Mode().Perm()}, nil
}

// SplitLines splits text after every '\n'.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteAtomic replaces path with lines. The data goes to a temporary file in
// the same directory first and is renamed over path only after a successful
// flush and sync. Symlinks are resolved so the link itself survives.
func WriteAtomic(path string, lines []string, perm fs.FileMode) (err error) {
	target := path
	if resolved, rerr := filepath.EvalSymlinks(path); rerr == nil {
		target = resolved
	}
	// the rename below would succeed on a read-only file, so probe first
	if probe, perr := os.OpenFile(target, os.O_WRONLY, 0); perr == nil {
		_ = probe.Close()
	} else if !errors.Is(perr, fs.ErrNotExist) {
		return wrap("open", path, perr)
	}
	dir, base := filepath.Split(target)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".fortcase-*")
	if err != nil {
		return wrap("create temp", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err = w.WriteString(line); err != nil {
			return wrap("write", path, err)
		}
	}
	if err = w.Flush(); err != nil {
		return wrap("write", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return wrap("sync", path, err)
	}
	if err = tmp.Close(); err != nil {
		return wrap("close", path, err)
	}
	if perm != 0 {
		if err = os.Chmod(tmpName, perm); err != nil {
			return wrap("chmod", path, err)
		}
	}
	if err = os.Rename(tmpName, target); err != nil {
		return wrap("rename", path, err)
	}
	return nil
}
