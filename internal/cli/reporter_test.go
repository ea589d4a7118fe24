package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/danieljhkim/embassy-init/internal/planner"
)

func TestStatusReporter(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	ops := []planner.Operation{
		{Type: planner.OpCreateProject, Stage: planner.StageCreated, Path: "app"},
		{Type: planner.OpWriteFile, Stage: planner.StageConfigured, Path: "build.rs"},
	}

	t.Run("plain output prints one line per step", func(t *testing.T) {
		var buf bytes.Buffer
		r := newStatusReporter(&buf, false)
		for _, op := range ops {
			r.Step(op)
		}
		r.Finish()

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %d lines: %q", len(lines), buf.String())
		}
		if !strings.Contains(lines[1], "configured") || !strings.Contains(lines[1], "write build.rs") {
			t.Errorf("line = %q", lines[1])
		}
		if strings.Contains(buf.String(), "\r") {
			t.Error("plain output should not redraw lines")
		}
	})

	t.Run("terminal output redraws in place", func(t *testing.T) {
		var buf bytes.Buffer
		r := newStatusReporter(&buf, true)
		for _, op := range ops {
			r.Step(op)
		}
		r.Finish()

		out := buf.String()
		if strings.Contains(out, "\n") {
			t.Errorf("terminal output should not add lines: %q", out)
		}
		if !strings.HasSuffix(out, "\r\033[K") {
			t.Errorf("Finish should clear the status line: %q", out)
		}
	})
}
