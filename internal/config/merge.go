package config

import "strings"

func MergeEngine(base EngineSettings, layers ...EngineConfig) EngineSettings {
	out := base
	for _, layer := range layers {
		out.Mode = ResolveAndTrim(out.Mode, layer.Mode)
		out.Paths = ResolveStrings(out.Paths, layer.Paths)
		out.Excludes = ResolveStrings(out.Excludes, layer.Excludes)
		out.AllFiles = ResolveBool(out.AllFiles, layer.AllFiles)
		out.Check = ResolveBool(out.Check, layer.Check)
		out.Jobs = ResolveInt(out.Jobs, layer.Jobs)
	}
	if out.Mode == "" {
		out.Mode = "upper"
	}
	return out
}

func MergeUI(base UISettings, layers ...UIConfig) UISettings {
	out := base
	for _, layer := range layers {
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Quiet = ResolveBool(out.Quiet, layer.Quiet)
		if layer.Progress != nil {
			// the last layer that mentions progress decides both ways
			out.Progress = *layer.Progress
			out.NoProgress = !*layer.Progress
		}
		out.LogLevel = ResolveAndTrim(out.LogLevel, layer.LogLevel)
		out.Watch = ResolveBool(out.Watch, layer.Watch)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "text"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

// resolve returns the last non-nil value, or def when every value is nil.
func resolve[T any](def T, values ...*T) T {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveString(def string, values ...*string) string { return resolve(def, values...) }

func ResolveInt(def int, values ...*int) int { return resolve(def, values...) }

func ResolveBool(def bool, values ...*bool) bool { return resolve(def, values...) }

// ResolveStrings treats an explicitly empty list as "clear", unlike nil.
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v == nil {
			continue
		}
		if len(*v) == 0 {
			result = []string{}
			continue
		}
		result = cloneStrings(*v)
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(resolve(def, values...))
}
