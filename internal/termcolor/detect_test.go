package termcolor

import (
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestDetectModeEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	cases := []struct {
		name string
		env  map[string]string
		want ColorMode
	}{
		{"NO_COLOR", map[string]string{"NO_COLOR": "1"}, ModeNever},
		{"CLICOLOR=0", map[string]string{"CLICOLOR": "0"}, ModeNever},
		{"CLICOLOR_FORCE", map[string]string{"CLICOLOR_FORCE": "2"}, ModeAlways},
		{"FORCE_COLOR", map[string]string{"FORCE_COLOR": "1"}, ModeAlways},
		{"FORCE_COLOR=0", map[string]string{"FORCE_COLOR": "0"}, ModeNever},
		{"NO_COLOR beats force", map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, ModeNever},
		{"TERM=dumb beats force", map[string]string{"TERM": "DUMB", "FORCE_COLOR": "1"}, ModeNever},
		{"pipe without env", nil, ModeNever},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectMode(w, tc.env); got != tc.want {
				t.Fatalf("DetectMode=%v want %v", got, tc.want)
			}
		})
	}
	if got := DetectMode(nil, map[string]string{"FORCE_COLOR": "1"}); got != ModeNever {
		t.Fatalf("nil output should never get colours, got %v", got)
	}
}

func TestEnabled(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if !Enabled(ModeAlways, nil, nil) {
		t.Fatal("ModeAlways should be enabled even with nil stdout")
	}
	if Enabled(ModeNever, w, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("ModeNever should be disabled")
	}
	if Enabled(ModeAuto, w, nil) {
		t.Fatal("ModeAuto with non-tty stdout should be disabled")
	}
	if !Enabled(ModeAuto, w, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("ModeAuto should honour FORCE_COLOR")
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"FOO=bar", "BAZ", "QUX=1=2"})
	if env["FOO"] != "bar" {
		t.Fatalf("expected FOO=bar, got %q", env["FOO"])
	}
	if env["BAZ"] != "" {
		t.Fatalf("expected BAZ empty, got %q", env["BAZ"])
	}
	if env["QUX"] != "1=2" {
		t.Fatalf("expected QUX=1=2, got %q", env["QUX"])
	}
}
