package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		debug bool
	}{
		{"info", log.InfoLevel, false},
		{"debug", log.DebugLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newLogger(&buf, tt.level)
			l.Debug("pass")
			if got := buf.Len() > 0; got != tt.debug {
				t.Errorf("debug written = %v, want %v", got, tt.debug)
			}
			l.Info("scene")
			if !strings.Contains(buf.String(), "scene") {
				t.Error("info message missing")
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Measured card")

	out := buf.String()
	if !strings.Contains(out, "Measured card (") || !strings.Contains(out, "s)") {
		t.Errorf("progress output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("empty context should give the default logger")
	}

	l := newLogger(io.Discard, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), l)) != l {
		t.Error("logger not carried by context")
	}
}

func TestVerboseEnablesPassLogs(t *testing.T) {
	t.Setenv(envRedisURL, "")
	scene := filepath.Join(t.TempDir(), "strip.toml")
	if err := os.WriteFile(scene, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, verbose := range []bool{false, true} {
		var logs bytes.Buffer
		root := New(&logs, LogInfo).RootCommand()
		args := []string{"measure", scene, "--no-cache", "--json"}
		if verbose {
			args = append(args, "--verbose")
		}
		root.SetArgs(args)
		root.SetOut(io.Discard)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatal(err)
		}

		if !strings.Contains(logs.String(), "Measured strip") {
			t.Errorf("verbose=%v: missing progress log:\n%s", verbose, logs.String())
		}
		if got := strings.Contains(logs.String(), "DEBU"); got != verbose {
			t.Errorf("verbose=%v: debug logs present = %v:\n%s", verbose, got, logs.String())
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)
	p.success("Exported %s", "card")
	p.file("card.svg")
	p.stats(3, true)
	p.stats(3, false)
	p.keyValue("Size", "10 × 5")

	out := buf.String()
	for _, s := range []string{"Exported card", "card.svg", "3 views", "cached", "fresh", "Size", "10 × 5"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}
