package config

import (
	"errors"
	"math"
	"strings"

	engineopts "github.com/phyten/fortcase/internal/engine/opts"
)

// EnvPrefix is prepended to every setting name read from the environment.
const EnvPrefix = "FORTCASE_"

// FromEnv reads FORTCASE_* variables. Invalid values are collected and
// returned together; the valid ones are still set.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(name string) (string, string) {
		key := EnvPrefix + name
		return key, strings.TrimSpace(getenv(key))
	}
	setString := func(target **string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, name string) {
		_, raw := lookup(name)
		if raw == "" {
			return
		}
		list := engineopts.SplitMulti([]string{raw})
		if list == nil {
			list = []string{}
		}
		*target = &list
	}
	setBool := func(target **bool, name string) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		v, err := engineopts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setInt := func(target **int, name string, min, max int) {
		key, raw := lookup(name)
		if raw == "" {
			return
		}
		v, err := engineopts.ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setString(&cfg.Engine.Mode, "MODE")
	setList(&cfg.Engine.Paths, "PATH")
	setList(&cfg.Engine.Excludes, "EXCLUDE")
	setBool(&cfg.Engine.AllFiles, "ALL_FILES")
	setBool(&cfg.Engine.Check, "CHECK")
	// the upper bound is enforced by NormalizeAndValidate so every input
	// shares the same message
	setInt(&cfg.Engine.Jobs, "JOBS", 0, math.MaxInt)

	setString(&cfg.UI.Output, "OUTPUT")
	setString(&cfg.UI.Color, "COLOR")
	setBool(&cfg.UI.Quiet, "QUIET")
	setBool(&cfg.UI.Progress, "PROGRESS")
	setString(&cfg.UI.LogLevel, "LOG_LEVEL")
	setBool(&cfg.UI.Watch, "WATCH")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
