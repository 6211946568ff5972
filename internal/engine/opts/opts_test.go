package opts

import (
	"math"
	"testing"

	"github.com/phyten/fortcase/internal/engine"
)

func TestParseBoolVariants(t *testing.T) {
	trueVals := []string{"1", "true", "TRUE", "yes", "On"}
	falseVals := []string{"0", "false", "FALSE", "no", "OFF"}

	for _, tc := range trueVals {
		t.Run("true/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if !got {
				t.Fatalf("ParseBool(%q) = false, want true", tc)
			}
		})
	}

	for _, tc := range falseVals {
		t.Run("false/"+tc, func(t *testing.T) {
			got, err := ParseBool(tc, "flag")
			if err != nil {
				t.Fatalf("ParseBool(%q) error: %v", tc, err)
			}
			if got {
				t.Fatalf("ParseBool(%q) = true, want false", tc)
			}
		})
	}

	if _, err := ParseBool("maybe", "flag"); err == nil {
		t.Fatal("ParseBool should reject unknown values")
	}
}

func TestParseIntInRange(t *testing.T) {
	got, err := ParseIntInRange("42", "jobs", 1, 64)
	if err != nil {
		t.Fatalf("ParseIntInRange error: %v", err)
	}
	if got != 42 {
		t.Fatalf("ParseIntInRange = %d, want 42", got)
	}

	if _, err := ParseIntInRange("-1", "truncate", 0, math.MinInt); err == nil {
		t.Fatal("ParseIntInRange should reject negative values when min=0")
	}

	if _, err := ParseIntInRange("65", "jobs", 1, 64); err == nil {
		t.Fatal("ParseIntInRange should reject values above max")
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	o := engine.Options{Mode: engine.ModeLower, Jobs: 8, Paths: []string{" a.for ", ""}, Excludes: []string{" **/vendor/** "}}
	if err := NormalizeAndValidate(&o); err != nil {
		t.Fatalf("NormalizeAndValidate error: %v", err)
	}
	if len(o.Paths) != 1 || o.Paths[0] != "a.for" {
		t.Fatalf("Paths normalized incorrectly: %q", o.Paths)
	}
	if len(o.Excludes) != 1 || o.Excludes[0] != "**/vendor/**" {
		t.Fatalf("Excludes normalized incorrectly: %q", o.Excludes)
	}

	noPaths := engine.Options{Mode: engine.ModeUpper, Jobs: 4, Paths: []string{" "}}
	if err := NormalizeAndValidate(&noPaths); err == nil {
		t.Fatal("NormalizeAndValidate should fail without paths")
	}

	jobs := engine.Options{Mode: engine.ModeUpper, Jobs: 1024, Paths: []string{"a.for"}}
	if err := NormalizeAndValidate(&jobs); err == nil {
		t.Fatal("NormalizeAndValidate should fail for invalid jobs")
	}

	badMode := engine.Options{Mode: engine.Mode(7), Jobs: 1, Paths: []string{"a.for"}}
	if err := NormalizeAndValidate(&badMode); err == nil {
		t.Fatal("NormalizeAndValidate should fail for unknown mode")
	}

	badExclude := engine.Options{Mode: engine.ModeUpper, Jobs: 1, Paths: []string{"a.for"}, Excludes: []string{"[x"}}
	if err := NormalizeAndValidate(&badExclude); err == nil {
		t.Fatal("NormalizeAndValidate should fail for an invalid exclude pattern")
	}
}

func TestDefaults(t *testing.T) {
	def := Defaults()
	if def.Mode != engine.ModeUpper {
		t.Fatalf("default mode should be upper, got %v", def.Mode)
	}
	if def.Jobs < 1 || def.Jobs > maxJobs {
		t.Fatalf("default jobs out of range: %d", def.Jobs)
	}
	if def.Check || def.AllFiles || def.Progress {
		t.Fatalf("unexpected defaults: %+v", def)
	}
}

func TestNormalizeOutput(t *testing.T) {
	cases := map[string]string{
		"":         "text",
		"TEXT":     "text",
		"table":    "text",
		"json":     "json",
		" NDJSON ": "ndjson",
		"csv":      "csv",
		"md":       "markdown",
		"Markdown": "markdown",
	}
	for in, want := range cases {
		got, err := NormalizeOutput(in)
		if err != nil {
			t.Fatalf("NormalizeOutput(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeOutput(%q)=%q want %q", in, got, want)
		}
	}
	if _, err := NormalizeOutput("tsv"); err == nil {
		t.Fatal("NormalizeOutput should reject unknown formats")
	}
}

func TestSplitMulti(t *testing.T) {
	vals := []string{"a,b", " c ", "", ",d"}
	got := SplitMulti(vals)
	want := []string{"a", "b", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("SplitMulti length mismatch: got=%d want=%d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != v {
			t.Fatalf("SplitMulti mismatch at %d: got=%q want=%q", i, got[i], v)
		}
	}
}
