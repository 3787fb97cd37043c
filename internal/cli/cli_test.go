package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/framekit/pkg/errors"
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/view"
)

const testScene = `name = "strip"

[[views]]
id = "header"
kind = "box"
size = [0, 3]

[[views]]
id = "footer"
kind = "box"
size = [0, 2]
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strip.toml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// run executes the root command with args and returns what it wrote to
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envRedisURL, "")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"measure", "apply", "export", "preview", "cache", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("Find(%q) = %v, %v", name, cmd, err)
			}
		})
	}
}

func TestMeasureJSON(t *testing.T) {
	out, err := run(t, "measure", writeScene(t), "--width", "10", "--no-cache", "--json")
	if err != nil {
		t.Fatalf("measure: %v", err)
	}

	var got struct {
		Scene string    `json:"scene"`
		Hint  geom.Size `json:"hint"`
		Size  geom.Size `json:"size"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Scene != "strip" {
		t.Errorf("scene = %q, want strip", got.Scene)
	}
	if got.Hint != geom.Sz(10, 0) {
		t.Errorf("hint = %v, want 10x0", got.Hint)
	}
	if got.Size != geom.Sz(10, 5) {
		t.Errorf("size = %v, want 10x5", got.Size)
	}
}

func TestMeasureUsesFileCache(t *testing.T) {
	path := writeScene(t)
	t.Setenv(envRedisURL, "")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	for i := 0; i < 2; i++ {
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetArgs([]string{"measure", path, "--width", "10", "--json"})
		root.SetOut(io.Discard)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("cache dir not created: %v", err)
	}
	if len(entries) == 0 {
		t.Error("cache dir is empty after measure")
	}
}

func TestApplyJSON(t *testing.T) {
	out, err := run(t, "apply", writeScene(t), "--width", "10", "--no-cache", "--format", "json")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	var got struct {
		Name  string          `json:"name"`
		Size  geom.Size       `json:"size"`
		Views []view.Snapshot `json:"views"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got.Size != geom.Sz(10, 5) {
		t.Errorf("size = %v, want 10x5", got.Size)
	}

	frames := map[string]geom.Rect{}
	for _, v := range got.Views {
		frames[v.ID] = v.Absolute
	}
	want := map[string]geom.Rect{
		"header": geom.R(0, 0, 10, 3),
		"footer": geom.R(0, 3, 10, 2),
	}
	for id, r := range want {
		if frames[id] != r {
			t.Errorf("%s = %v, want %v", id, frames[id], r)
		}
	}
}

func TestApplyTable(t *testing.T) {
	out, err := run(t, "apply", writeScene(t), "--width", "10", "--no-cache")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	for _, s := range []string{"header", "footer", "View", "Kind"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}
}

func TestExportDOTToStdout(t *testing.T) {
	out, err := run(t, "export", writeScene(t), "--width", "10", "--no-cache", "-f", "dot", "-o", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("output is not a DOT graph:\n%s", out)
	}
	if !strings.Contains(out, `"header"`) {
		t.Errorf("output missing header node:\n%s", out)
	}
}

func TestExportFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	if _, err := run(t, "export", writeScene(t), "--no-cache", "-f", "text,json", "-o", base); err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, ext := range []string{"txt", "json"} {
		if _, err := os.Stat(base + "." + ext); err != nil {
			t.Errorf("missing %s output: %v", ext, err)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	scene := writeScene(t)
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad apply format", []string{"apply", scene, "--no-cache", "--format", "yaml"}, "invalid format"},
		{"bad export format", []string{"export", scene, "--no-cache", "-f", "bmp"}, "bmp"},
		{"stdout with two formats", []string{"export", scene, "--no-cache", "-f", "dot,json", "-o", "-"}, "exactly one format"},
		{"missing scene", []string{"measure", filepath.Join(t.TempDir(), "nope.toml"), "--no-cache"}, "nope.toml"},
		{"missing argument", []string{"measure"}, "arg"},
		{"bad width", []string{"measure", scene, "--no-cache", "--width=-1"}, "width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want []string
	}{
		{"nil", nil, 0, nil},
		{"cancelled", fmt.Errorf("measure: %w", context.Canceled), 130, nil},
		{"plain", fmt.Errorf("boom"), 1, []string{"boom"}},
		{"coded", errors.New(errors.ErrCodeInvalidScene, "no views"), 1, []string{"no views", "INVALID_SCENE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if got := Report(&buf, tt.err); got != tt.code {
				t.Errorf("Report = %d, want %d", got, tt.code)
			}
			if len(tt.want) == 0 && buf.Len() != 0 {
				t.Errorf("unexpected output %q", buf.String())
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output %q does not mention %q", buf.String(), w)
				}
			}
			if tt.name == "coded" && strings.Contains(buf.String(), "INVALID_SCENE: no views") {
				t.Errorf("coded error printed with its prefix: %q", buf.String())
			}
		})
	}
}

func TestCachePath(t *testing.T) {
	t.Setenv(envRedisURL, "")
	home := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", home)

	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "path"})
	root.SetOut(&out)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out.String()), filepath.Join(home, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{"", []string{"svg"}, false},
		{"svg", []string{"svg"}, false},
		{" PNG , dot ", []string{"png", "dot"}, false},
		{"text,json", []string{"text", "json"}, false},
		{"svg,gif", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFormats(%q) error = %v", tt.in, err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	for format, want := range map[string]string{"text": "txt", "svg": "svg", "json": "json"} {
		if got := extension(format); got != want {
			t.Errorf("extension(%q) = %q, want %q", format, got, want)
		}
	}
}

func TestCompleteScene(t *testing.T) {
	exts, dir := completeScene(nil, nil, "")
	if len(exts) != 1 || exts[0] != "toml" || dir != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("first arg = %v, %v", exts, dir)
	}
	if _, dir := completeScene(nil, []string{"card.toml"}, ""); dir != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("second arg directive = %v", dir)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := run(t, "completion", shell)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out, appName) {
				t.Error("completion script does not mention the command")
			}
		})
	}
}

func TestEnvironmentDefaults(t *testing.T) {
	scene := writeScene(t)

	t.Run("width", func(t *testing.T) {
		t.Setenv("FRAMEKIT_WIDTH", "12")
		out, err := run(t, "measure", scene, "--no-cache", "--json")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, `"w": 12`) {
			t.Errorf("hint width not taken from environment:\n%s", out)
		}
	})

	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("FRAMEKIT_WIDTH", "12")
		out, err := run(t, "measure", scene, "--no-cache", "--json", "--width", "30")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(out, `"w": 30`) {
			t.Errorf("--width ignored:\n%s", out)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("FRAMEKIT_CACHE_TTL", "soon")
		if _, err := run(t, "measure", scene, "--no-cache"); err == nil {
			t.Error("expected an error for a bad FRAMEKIT_CACHE_TTL")
		}
	})
}
