package argbuild

import (
	"errors"
	"reflect"
	"testing"

	"github.com/randomname124290358349/myTools/internal/catalog"
)

func scanTemplate() (catalog.CommandTemplate, *catalog.PlatformSpec) {
	variant := &catalog.PlatformSpec{
		Base: "scan",
		Bindings: map[string]catalog.FlagBinding{
			"verbose": catalog.Single("-v"),
			"ports":   catalog.Multi("--ports"),
			"rate":    catalog.Multi("--min-rate", "--burst"),
		},
	}
	tool := catalog.CommandTemplate{
		ID:   "scan",
		Unix: variant,
		Options: []catalog.OptionSpec{
			{ID: "verbose", Label: "Verbose", Type: "checkbox"},
			{ID: "ports", Label: "Ports", Type: "value"},
			{ID: "rate", Label: "Rate", Type: "value"},
			{ID: "target", Label: "Target", Type: "value", Required: true},
		},
		Target: "target",
	}
	return tool, variant
}

func TestBuildPreservesDeclaredOptionOrder(t *testing.T) {
	tool, variant := scanTemplate()
	params := map[string]any{
		"target":  "example.com",
		"rate":    "100",
		"verbose": true,
		"ports":   "80,443",
	}

	argv, err := Build(tool, variant, params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"scan", "-v", "--ports", "80,443", "--min-rate", "--burst", "100", "example.com"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
}

func TestBuildRequiredOptionMissingFailsFast(t *testing.T) {
	tool, variant := scanTemplate()

	for name, params := range map[string]map[string]any{
		"absent":       {},
		"empty string": {"target": ""},
		"false":        {"target": false},
		"zero":         {"target": 0.0},
		"nil":          {"target": nil},
	} {
		argv, err := Build(tool, variant, params)
		if err == nil {
			t.Fatalf("%s: expected validation error, got argv %v", name, argv)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected *ValidationError, got %T", name, err)
		}
		if verr.Option != "Target" {
			t.Fatalf("%s: option label = %q, want Target", name, verr.Option)
		}
		if argv != nil {
			t.Fatalf("%s: partial argv returned: %v", name, argv)
		}
	}
}

func TestBuildCheckboxFalsyValuesAreUnset(t *testing.T) {
	tool, variant := scanTemplate()

	for name, value := range map[string]any{
		"false": false,
		"zero":  0.0,
		"empty": "",
	} {
		argv, err := Build(tool, variant, map[string]any{"verbose": value, "target": "host"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		for _, token := range argv {
			if token == "-v" {
				t.Fatalf("%s: falsy checkbox contributed a flag: %v", name, argv)
			}
		}
	}

	argv, err := Build(tool, variant, map[string]any{"verbose": true, "target": "host"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	count := 0
	for _, token := range argv {
		if token == "-v" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one -v, got argv %v", argv)
	}
}

func TestBuildUnmappedOptionIsInert(t *testing.T) {
	tool, variant := scanTemplate()
	delete(variant.Bindings, "ports")

	argv, err := Build(tool, variant, map[string]any{"ports": "80", "target": "host"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"scan", "host"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
}

func TestBuildIgnoresUnknownParamKeys(t *testing.T) {
	tool, variant := scanTemplate()

	argv, err := Build(tool, variant, map[string]any{"target": "host", "bogus": "value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"scan", "host"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
}

func TestBuildTargetAppendedAfterFlags(t *testing.T) {
	tool, variant := scanTemplate()

	argv, err := Build(tool, variant, map[string]any{"verbose": true, "target": "example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if argv[len(argv)-1] != "example.com" {
		t.Fatalf("target not trailing: %v", argv)
	}
}

func TestBuildOmitsTargetWhenOptional(t *testing.T) {
	tool, variant := scanTemplate()
	tool.Options[3].Required = false

	argv, err := Build(tool, variant, map[string]any{"verbose": true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"scan", "-v"}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
}

func TestBuildNilVariantFails(t *testing.T) {
	tool, _ := scanTemplate()
	if _, err := Build(tool, nil, map[string]any{"target": "host"}); err == nil {
		t.Fatalf("expected error for nil variant")
	}
}

func TestText(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"plain", "plain"},
		{true, "true"},
		{80, "80"},
		{float64(443), "443"},
		{1.5, "1.5"},
	}
	for _, tc := range cases {
		if got := Text(tc.in); got != tc.want {
			t.Fatalf("Text(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	for _, falsy := range []any{nil, false, "", 0, int64(0), float64(0)} {
		if Truthy(falsy) {
			t.Fatalf("Truthy(%v) = true, want false", falsy)
		}
	}
	for _, truthy := range []any{true, "x", 1, float64(0.5), []string{"a"}} {
		if !Truthy(truthy) {
			t.Fatalf("Truthy(%v) = false, want true", truthy)
		}
	}
}
