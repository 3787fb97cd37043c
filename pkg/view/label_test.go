package view

import (
	"reflect"
	"testing"

	"github.com/matzehuels/framekit/pkg/geom"
)

func TestLabelLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"wraps on words", "hello wide world", 11, []string{"hello wide", "world"}},
		{"no wrap at zero width", "hello   wide world", 0, []string{"hello wide world"}},
		{"breaks long word", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"keeps paragraphs", "one\n\ntwo", 10, []string{"one", "", "two"}},
		{"wide runes", "日本語 テキスト", 6, []string{"日本語", "テキス", "ト"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLabel("l", tt.text)
			if got := l.Lines(tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines(%v) = %q, want %q", tt.width, got, tt.want)
			}
		})
	}
}

func TestLabelSizeThatFits(t *testing.T) {
	tests := []struct {
		name string
		text string
		hint geom.Size
		want geom.Size
	}{
		{"empty", "", geom.Sz(10, 0), geom.Sz(0, 0)},
		{"single line", "hello", geom.Sz(100, 0), geom.Sz(5, 1)},
		{"wrapped", "hello wide world", geom.Sz(11, 0), geom.Sz(10, 2)},
		{"unbounded", "hello wide world", geom.Sz(0, 0), geom.Sz(16, 1)},
		{"wide runes", "日本語", geom.Sz(100, 0), geom.Sz(6, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewLabel("l", tt.text).SizeThatFits(tt.hint); got != tt.want {
				t.Errorf("SizeThatFits(%+v) = %+v, want %+v", tt.hint, got, tt.want)
			}
		})
	}
}

func TestLabelLineHeight(t *testing.T) {
	l := NewLabel("l", "a b")
	l.LineHeight = 16
	if got := l.SizeThatFits(geom.Sz(1, 0)); got != geom.Sz(1, 32) {
		t.Errorf("SizeThatFits = %+v, want {1 32}", got)
	}
	l.LineHeight = 0
	if got := l.SizeThatFits(geom.Sz(1, 0)); got != geom.Sz(1, 2) {
		t.Errorf("zero line height should default to 1, got %+v", got)
	}
}

func TestLabelSetText(t *testing.T) {
	l := NewLabel("l", "a")
	l.SetText("longer")
	if l.Text() != "longer" {
		t.Errorf("Text() = %q", l.Text())
	}
	if l.Redraws() != 1 {
		t.Errorf("Redraws() = %d, want 1", l.Redraws())
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"collapses spaces", "a   b\tc", 10, []string{"a b c"}},
		{"blank paragraph", "   ", 10, []string{""}},
		{"trailing newline", "one\n", 10, []string{"one", ""}},
		{"exact width", "abc def", 3, []string{"abc", "def"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapText(tt.text, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WrapText(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
