package config

import (
	"fmt"
	"strings"

	engineopts "github.com/phyten/fortcase/internal/engine/opts"
	"github.com/phyten/fortcase/internal/logging"
)

func CanonicalizeColor(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

func CanonicalizeLogLevel(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "warn", nil
	}
	if _, err := logging.ParseLevel(v); err != nil {
		return "", err
	}
	if v == "warning" {
		v = "warn"
	}
	return v, nil
}

func NormalizeUI(values UISettings) (UISettings, error) {
	var err error
	values.Output, err = engineopts.NormalizeOutput(values.Output)
	if err != nil {
		return values, err
	}
	values.Color, err = CanonicalizeColor(values.Color)
	if err != nil {
		return values, err
	}
	values.LogLevel, err = CanonicalizeLogLevel(values.LogLevel)
	if err != nil {
		return values, err
	}
	return values, nil
}
