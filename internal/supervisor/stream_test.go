package supervisor

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/randomname124290358349/myTools/internal/catalog"
	"github.com/randomname124290358349/myTools/internal/templates"
)

func shellTemplate() (catalog.CommandTemplate, *catalog.PlatformSpec) {
	variant := &catalog.PlatformSpec{
		Base: "sh",
		Bindings: map[string]catalog.FlagBinding{
			"script": catalog.Single("-c"),
		},
	}
	tool := catalog.CommandTemplate{
		ID:   "shell",
		Unix: variant,
		Options: []catalog.OptionSpec{
			{ID: "script", Label: "Script", Type: "value", Required: true},
		},
	}
	return tool, variant
}

func streamLines(t *testing.T, sup *Supervisor, params map[string]any, id string) []string {
	t.Helper()
	bundle, err := templates.Load("en")
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	st := Streamer{Supervisor: sup, Messages: bundle}
	tool, variant := shellTemplate()

	var lines []string
	st.Run(context.Background(), tool, variant, params, id, func(line string) bool {
		lines = append(lines, line)
		return true
	})
	return lines
}

func TestStreamPreambleOutputAndTrailer(t *testing.T) {
	requireUnix(t)
	sup := New(nil, nil)

	lines := streamLines(t, sup, map[string]any{"script": "echo alpha; echo beta"}, "exec-1")

	want := []string{
		"Running: sh -c echo alpha; echo beta",
		"Execution ID: exec-1",
		"",
		"alpha",
		"beta",
		"",
		"Process finished with code: 0",
	}
	if len(lines) != len(want) {
		t.Fatalf("lines = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if sup.Active() != 0 {
		t.Fatalf("registry not empty after natural completion")
	}
}

func TestStreamReportsNonzeroExitCode(t *testing.T) {
	requireUnix(t)
	sup := New(nil, nil)

	lines := streamLines(t, sup, map[string]any{"script": "exit 3"}, "exec-2")
	last := lines[len(lines)-1]
	if last != "Process finished with code: 3" {
		t.Fatalf("trailer = %q", last)
	}
}

func TestStreamValidationErrorIsSingleLine(t *testing.T) {
	sup := New(nil, nil)

	lines := streamLines(t, sup, map[string]any{}, "exec-3")
	if len(lines) != 1 {
		t.Fatalf("expected single error line, got %q", lines)
	}
	if lines[0] != "Error: Script is required" {
		t.Fatalf("error line = %q", lines[0])
	}
	if sup.Active() != 0 {
		t.Fatalf("validation failure must not create a registry entry")
	}
}

func TestStreamSpawnErrorIsSingleLine(t *testing.T) {
	requireUnix(t)
	sup := New(nil, nil)
	bundle, err := templates.Load("en")
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	st := Streamer{Supervisor: sup, Messages: bundle}

	tool, variant := shellTemplate()
	variant.Base = "/nonexistent-binary-for-test"

	var lines []string
	st.Run(context.Background(), tool, variant, map[string]any{"script": "true"}, "exec-4", func(line string) bool {
		lines = append(lines, line)
		return true
	})
	if len(lines) != 1 || !strings.HasPrefix(lines[0], "Error: ") {
		t.Fatalf("expected single spawn error line, got %q", lines)
	}
	if sup.Active() != 0 {
		t.Fatalf("spawn failure must not create a registry entry")
	}
}

func TestStreamCancelledExecutionEndsWithInterruptedLine(t *testing.T) {
	requireUnix(t)
	sup := New(nil, nil)
	bundle, err := templates.Load("en")
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	st := Streamer{Supervisor: sup, Messages: bundle}
	tool, variant := shellTemplate()

	var once sync.Once
	var lines []string
	st.Run(context.Background(), tool, variant, map[string]any{"script": "echo started; exec sleep 30"}, "exec-5", func(line string) bool {
		lines = append(lines, line)
		if line == "started" {
			once.Do(func() {
				if got := sup.Cancel(context.Background(), "exec-5"); got.Status != "stopped" {
					t.Errorf("cancel status = %s", got.Status)
				}
			})
		}
		return true
	})

	last := lines[len(lines)-1]
	if last != "Execution interrupted" {
		t.Fatalf("last line = %q, want interruption notice", last)
	}
	for _, line := range lines {
		if strings.HasPrefix(line, "Process finished") {
			t.Fatalf("cancelled stream carried an exit trailer: %q", lines)
		}
	}
}

func TestStreamLocalizedMessages(t *testing.T) {
	sup := New(nil, nil)
	bundle, err := templates.Load("pt")
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	st := Streamer{Supervisor: sup, Messages: bundle}
	tool, variant := shellTemplate()

	var lines []string
	st.Run(context.Background(), tool, variant, map[string]any{}, "exec-6", func(line string) bool {
		lines = append(lines, line)
		return true
	})
	if len(lines) != 1 || lines[0] != "Erro: Script é obrigatório" {
		t.Fatalf("localized error = %q", lines)
	}
}
