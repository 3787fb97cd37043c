package view

import (
	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/layout"
)

// Placement is a view with its frame in root coordinates.
type Placement struct {
	View     layout.View
	Absolute geom.Rect
	Depth    int
	Parent   string
}

// ID returns the view's identifier, or "" when it has none.
func (p Placement) ID() string {
	if n, ok := p.View.(Node); ok {
		return n.ID()
	}
	return ""
}

// Kind returns the view's kind, or "view" when unknown.
func (p Placement) Kind() string {
	if n, ok := p.View.(Node); ok {
		return n.Kind()
	}
	return "view"
}

// Walk visits root and its descendants depth first in subview order,
// with absolute frames. root itself is placed at its own frame. Returning
// false from fn skips the view's subviews.
func Walk(root layout.View, fn func(Placement) bool) {
	walk(root, geom.Point{}, 0, "", fn)
}

func walk(v layout.View, offset geom.Point, depth int, parent string, fn func(Placement) bool) {
	if v == nil {
		return
	}
	f := v.Frame()
	abs := f.Offset(offset.X, offset.Y)
	p := Placement{View: v, Absolute: abs, Depth: depth, Parent: parent}
	if !fn(p) {
		return
	}
	c, ok := v.(layout.Container)
	if !ok {
		return
	}
	for _, sub := range c.Subviews() {
		walk(sub, abs.Origin(), depth+1, p.ID(), fn)
	}
}

// Placements collects every placement under root.
func Placements(root layout.View) []Placement {
	var out []Placement
	Walk(root, func(p Placement) bool {
		out = append(out, p)
		return true
	})
	return out
}

// Snapshot is a serializable copy of a placement.
type Snapshot struct {
	ID       string    `json:"id"`
	Kind     string    `json:"kind"`
	Parent   string    `json:"parent,omitempty"`
	Depth    int       `json:"depth"`
	Frame    geom.Rect `json:"frame"`
	Absolute geom.Rect `json:"absolute"`
	Text     string    `json:"text,omitempty"`
}

// Snapshots records the committed frames under root, root included.
// Views with text, such as labels, carry it along.
func Snapshots(root layout.View) []Snapshot {
	var out []Snapshot
	Walk(root, func(p Placement) bool {
		s := Snapshot{
			ID:       p.ID(),
			Kind:     p.Kind(),
			Parent:   p.Parent,
			Depth:    p.Depth,
			Frame:    p.View.Frame(),
			Absolute: p.Absolute,
		}
		if t, ok := p.View.(interface{ Text() string }); ok {
			s.Text = t.Text()
		}
		out = append(out, s)
		return true
	})
	return out
}
