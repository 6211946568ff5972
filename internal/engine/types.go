package engine

import (
	"log/slog"
)

// Options は実行オプション
type Options struct {
	Mode     Mode
	Paths    []string // files or doublestar patterns
	Excludes []string
	AllFiles bool
	// Check computes the changes without writing any file.
	Check    bool
	Jobs     int
	Progress bool
	Logger   *slog.Logger `json:"-"`
}

// FileResult は 1 ファイル分の変換結果を表す
type FileResult struct {
	File         string `json:"file"`
	Lines        int    `json:"lines"`
	LinesChanged int    `json:"lines_changed"`
	CharsChanged int    `json:"chars_changed"`
	Changed      bool   `json:"changed"`
	Written      bool   `json:"written"`
}

// Stats returns the counters of the file as an accumulator value.
func (r FileResult) Stats() Stats {
	return Stats{LinesChanged: r.LinesChanged, CharsChanged: r.CharsChanged}
}

// FileError は 1 ファイルの処理に失敗した際の情報を表す
type FileError struct {
	File    string `json:"file"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Result は出力
type Result struct {
	Mode         string       `json:"mode"`
	Files        []FileResult `json:"files"`
	Total        Stats        `json:"total"`
	FileCount    int          `json:"file_count"`
	ChangedFiles int          `json:"changed_files"`
	Check        bool         `json:"check"`
	ElapsedMS    int64        `json:"elapsed_ms"`
	Errors       []FileError  `json:"errors,omitempty"`
	ErrorCount   int          `json:"error_count"`
}
