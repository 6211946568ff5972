package config

import (
	"github.com/phyten/fortcase/internal/engine"
)

// EngineConfig は変換エンジンに関する設定の 1 レイヤー（未指定は nil）
type EngineConfig struct {
	Mode     *string   `yaml:"mode" toml:"mode" json:"mode"`
	Paths    *[]string `yaml:"path" toml:"path" json:"path"`
	Excludes *[]string `yaml:"exclude" toml:"exclude" json:"exclude"`
	AllFiles *bool     `yaml:"all_files" toml:"all_files" json:"all_files"`
	Check    *bool     `yaml:"check" toml:"check" json:"check"`
	Jobs     *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
}

// UIConfig は出力・表示に関する設定の 1 レイヤー
type UIConfig struct {
	Output   *string `yaml:"output" toml:"output" json:"output"`
	Color    *string `yaml:"color" toml:"color" json:"color"`
	Quiet    *bool   `yaml:"quiet" toml:"quiet" json:"quiet"`
	Progress *bool   `yaml:"progress" toml:"progress" json:"progress"`
	LogLevel *string `yaml:"log_level" toml:"log_level" json:"log_level"`
	Watch    *bool   `yaml:"watch" toml:"watch" json:"watch"`
}

type Config struct {
	Engine EngineConfig `yaml:"engine" toml:"engine" json:"engine"`
	UI     UIConfig     `yaml:"ui" toml:"ui" json:"ui"`
}

type EngineSettings struct {
	Mode     string
	Paths    []string
	Excludes []string
	AllFiles bool
	Check    bool
	Jobs     int
}

type UISettings struct {
	Output string
	Color  string
	Quiet  bool
	// Progress forces the progress line; NoProgress suppresses it. Neither
	// set means "only on a terminal".
	Progress   bool
	NoProgress bool
	LogLevel   string
	Watch      bool
}

func EngineSettingsFromOptions(opts engine.Options) EngineSettings {
	return EngineSettings{
		Mode:     opts.Mode.String(),
		Paths:    cloneStrings(opts.Paths),
		Excludes: cloneStrings(opts.Excludes),
		AllFiles: opts.AllFiles,
		Check:    opts.Check,
		Jobs:     opts.Jobs,
	}
}

// ApplyToOptions copies the merged settings into opts. Only the mode can fail
// to parse; range checks are left to opts.NormalizeAndValidate.
func (s EngineSettings) ApplyToOptions(opts *engine.Options) error {
	if opts == nil {
		return nil
	}
	mode, err := engine.ParseMode(s.Mode)
	if err != nil {
		return err
	}
	opts.Mode = mode
	opts.Paths = cloneStrings(s.Paths)
	opts.Excludes = cloneStrings(s.Excludes)
	opts.AllFiles = s.AllFiles
	opts.Check = s.Check
	opts.Jobs = s.Jobs
	return nil
}

func DefaultUISettings() UISettings {
	return UISettings{
		Output:   "text",
		Color:    "auto",
		LogLevel: "warn",
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
