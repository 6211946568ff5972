package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Form is the source layout of a Fortran file.
type Form int

const (
	FormUnknown Form = iota
	FormFixed
	FormFree
)

func (f Form) String() string {
	switch f {
	case FormFixed:
		return "fixed"
	case FormFree:
		return "free"
	default:
		return "unknown"
	}
}

type Info struct {
	Form Form
	// ByContent is set when the form was guessed from the file body.
	ByContent bool
}

// FromPath decides the form from the file extension alone. Upper-case
// extensions (.F, .FOR) conventionally mean "run the preprocessor first" and
// map to the same form as their lower-case variant.
func FromPath(p string) Form {
	ext := strings.ToLower(filepath.Ext(p))
	if ext == "" {
		return FormUnknown
	}
	if f, ok := extensionForms[ext]; ok {
		return f
	}
	return FormUnknown
}

// FromPathAndContent falls back to a content heuristic when the extension is
// not conclusive.
func FromPathAndContent(p string, data []byte) Info {
	if f := FromPath(p); f != FormUnknown {
		return Info{Form: f}
	}
	if looksFixedForm(data) {
		return Info{Form: FormFixed, ByContent: true}
	}
	return Info{Form: FormUnknown}
}

func IsFixedForm(p string) bool {
	return FromPath(p) == FormFixed
}

var extensionForms = map[string]Form{
	".f":   FormFixed,
	".for": FormFixed,
	".fpp": FormFixed,
	".ftn": FormFixed,
	".f77": FormFixed,
	".f90": FormFree,
	".f95": FormFree,
	".f03": FormFree,
	".f08": FormFree,
	".f18": FormFree,
}

// looksFixedForm votes over the first lines: comment markers in column 1 and
// statements starting at column 7 count for fixed form, trailing '&'
// continuations count against it.
func looksFixedForm(data []byte) bool {
	if len(data) == 0 || bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	fixed, free := 0, 0
	lines := bytes.SplitN(data, []byte("\n"), 200)
	for _, raw := range lines {
		line := strings.TrimRight(string(raw), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasSuffix(trimmed, "&") {
			free++
			continue
		}
		switch line[0] {
		case 'C', 'c', '*':
			if len(line) == 1 || line[1] == ' ' || line[1] == '-' || line[1] == '*' {
				fixed++
			}
			continue
		}
		if strings.HasPrefix(line, "      ") && len(line) > 6 && line[6] != ' ' {
			fixed++
			continue
		}
		if len(line) > 5 && line[5] != ' ' && strings.TrimSpace(line[:5]) == "" {
			// continuation mark in column 6
			fixed++
		}
	}
	return fixed > 0 && fixed > free
}
