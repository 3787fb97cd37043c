package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/framekit/pkg/geom"
)

// Label is a block of text measured in terminal cells. It wraps on word
// boundaries to the hint width; a zero hint width keeps each paragraph on
// one line.
type Label struct {
	Base
	text       string
	LineHeight float64
}

// NewLabel creates a label with a line height of 1.
func NewLabel(id, text string) *Label {
	return &Label{Base: Base{id: id}, text: text, LineHeight: 1}
}

// Kind returns "label".
func (l *Label) Kind() string { return "label" }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text and requests a redraw. The owner of the
// enclosing layout must call SetNeedsLayout on it.
func (l *Label) SetText(text string) {
	l.text = text
	l.SetNeedsRedraw()
}

// SizeThatFits returns the widest wrapped line and the total height.
func (l *Label) SizeThatFits(hint geom.Size) geom.Size {
	lines := l.Lines(hint.W)
	if len(lines) == 0 {
		return geom.Size{}
	}
	w := 0
	for _, line := range lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return geom.Sz(float64(w), float64(len(lines))*l.lineHeight())
}

// Lines returns the text wrapped to width cells.
func (l *Label) Lines(width float64) []string {
	return WrapText(l.text, width)
}

func (l *Label) lineHeight() float64 {
	if l.LineHeight <= 0 {
		return 1
	}
	return l.LineHeight
}

// WrapText wraps text on word boundaries to lines of at most width cells,
// breaking words that are wider than a line. Runs of spaces collapse to
// one and newlines start a paragraph. A width below one cell keeps each
// paragraph on a single line.
func WrapText(text string, width float64) []string {
	if text == "" {
		return nil
	}
	limit := int(width)
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		wrapped := ansi.Wrap(strings.Join(words, " "), limit, "")
		for _, line := range strings.Split(wrapped, "\n") {
			out = append(out, strings.TrimRight(line, " "))
		}
	}
	return out
}
