package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/view"
)

func newTestPreview(width float64) PreviewModel {
	root := view.NewContainer("root",
		view.NewLabel("greeting", "hello world"),
		view.NewBox("rule", geom.Sz(0, 2)),
	)
	return NewPreviewModel("test", root, width)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m PreviewModel, msg tea.Msg) PreviewModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PreviewModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func TestPreviewInitialLayout(t *testing.T) {
	m := newTestPreview(20)
	if m.Size != geom.Sz(20, 3) {
		t.Errorf("size = %v, want 20x3", m.Size)
	}
	if len(m.Frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(m.Frames))
	}
	if got := m.Frames[2].Absolute; got != geom.R(0, 1, 20, 2) {
		t.Errorf("rule frame = %v, want (0,1,20,2)", got)
	}
}

func TestPreviewKeys(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		msg   tea.Msg
		want  float64
	}{
		{"right", 20, tea.KeyMsg{Type: tea.KeyRight}, 21},
		{"left", 20, tea.KeyMsg{Type: tea.KeyLeft}, 19},
		{"l", 20, runes("l"), 21},
		{"h", 20, runes("h"), 19},
		{"L", 20, runes("L"), 30},
		{"H", 20, runes("H"), 10},
		{"left at minimum", 1, tea.KeyMsg{Type: tea.KeyLeft}, 1},
		{"H below minimum", 5, runes("H"), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestPreview(tt.start)
			m.Follow = true
			m = update(t, m, tt.msg)
			if m.Width != tt.want {
				t.Errorf("width = %g, want %g", m.Width, tt.want)
			}
			if m.Follow {
				t.Error("manual resize should stop following")
			}
			if m.Size.W != tt.want {
				t.Errorf("size = %v, want width %g", m.Size, tt.want)
			}
		})
	}
}

func TestPreviewRelayoutWraps(t *testing.T) {
	m := update(t, newTestPreview(6), tea.KeyMsg{Type: tea.KeyLeft})
	if m.Size != geom.Sz(5, 4) {
		t.Errorf("size = %v, want 5x4", m.Size)
	}
}

func TestPreviewFollow(t *testing.T) {
	m := newTestPreview(20)

	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 20})
	if m.Width != 20 {
		t.Errorf("width = %g, want 20 without follow", m.Width)
	}

	m = update(t, m, runes("f"))
	if !m.Follow || m.Width != 50 {
		t.Errorf("after f: follow = %v width = %g, want true 50", m.Follow, m.Width)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})
	if m.Width != 40 {
		t.Errorf("width = %g, want 40", m.Width)
	}

	m = update(t, m, runes("f"))
	if m.Follow {
		t.Error("second f should stop following")
	}
}

func TestPreviewView(t *testing.T) {
	m := newTestPreview(20)
	out := m.View()
	for _, s := range []string{"Preview test", "width 20", "20 × 3", "hello world"} {
		if !strings.Contains(out, s) {
			t.Errorf("view missing %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "Kind") {
		t.Error("table shown before toggling")
	}

	m = update(t, m, runes("t"))
	if !m.ShowTable {
		t.Fatal("t should show the table")
	}
	if out := m.View(); !strings.Contains(out, "Kind") || !strings.Contains(out, "greeting") {
		t.Errorf("view missing frame table:\n%s", out)
	}
}

func TestPreviewQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		t.Run(msg.String(), func(t *testing.T) {
			_, cmd := newTestPreview(20).Update(msg)
			if cmd == nil {
				t.Fatal("expected quit command")
			}
			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Error("command is not tea.Quit")
			}
		})
	}
}
