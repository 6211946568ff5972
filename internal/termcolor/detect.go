package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// EnvMap turns os.Environ() style entries into a map.
func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// DetectMode resolves "auto" from the environment. The first rule that
// applies wins:
//  1. TERM=dumb, NO_COLOR (any value) or CLICOLOR=0 disable colours.
//  2. CLICOLOR_FORCE or FORCE_COLOR with a non-zero value enable them.
//  3. Otherwise colours follow whether out is a terminal.
func DetectMode(out *os.File, env map[string]string) ColorMode {
	if out == nil {
		return ModeNever
	}
	get := func(key string) string { return strings.TrimSpace(env[key]) }
	switch {
	case strings.EqualFold(get("TERM"), "dumb"), get("NO_COLOR") != "", get("CLICOLOR") == "0":
		return ModeNever
	case forceColor(get("CLICOLOR_FORCE")), forceColor(get("FORCE_COLOR")):
		return ModeAlways
	case isTerminal(out):
		return ModeAlways
	default:
		return ModeNever
	}
}

// Enabled reports whether the report written to out gets colours.
func Enabled(mode ColorMode, out *os.File, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return DetectMode(out, env) == ModeAlways
	}
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	return v != "" && v != "0"
}
