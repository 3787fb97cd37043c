package layout

import (
	"testing"

	"github.com/matzehuels/framekit/pkg/geom"
)

func TestVerticalStack(t *testing.T) {
	a := &stubView{natural: geom.Sz(80, 30)}
	b := &stubView{natural: geom.Sz(60, 20)}
	e := NewVertical(&stubContainer{views: []View{a, b}})

	if got := e.Measure(geom.Sz(100, 0)); got.H != 50 {
		t.Errorf("Measure() height = %v, want 50", got.H)
	}
	if a.commits != 0 || b.commits != 0 {
		t.Fatal("measure committed frames")
	}

	got := e.Apply(geom.R(0, 0, 100, 50))
	if got != geom.Sz(100, 50) {
		t.Errorf("Apply() = %+v, want {100 50}", got)
	}
	if a.frame != geom.R(0, 0, 100, 30) {
		t.Errorf("A frame = %+v, want {0 0 100 30}", a.frame)
	}
	if b.frame != geom.R(0, 30, 100, 20) {
		t.Errorf("B frame = %+v, want {0 30 100 20}", b.frame)
	}
}

func TestVerticalSkipsNilSubviews(t *testing.T) {
	var missing *stubView
	a := &stubView{natural: geom.Sz(80, 30)}
	e := NewVertical(&stubContainer{views: []View{missing, a}})

	if got := e.Apply(geom.R(0, 0, 100, 0)); got != geom.Sz(100, 30) {
		t.Errorf("Apply() = %+v, want {100 30}", got)
	}
	if a.frame != geom.R(0, 0, 100, 30) {
		t.Errorf("A frame = %+v", a.frame)
	}
}

func TestFill(t *testing.T) {
	a := &stubView{natural: geom.Sz(1, 1)}
	b := &stubView{natural: geom.Sz(2, 2)}
	e := NewFill(&stubContainer{views: []View{a, b}})

	if got := e.Measure(geom.Sz(120, 80)); got != geom.Sz(120, 80) {
		t.Errorf("Measure() = %+v", got)
	}
	e.Apply(geom.R(10, 10, 120, 80))
	for i, v := range []*stubView{a, b} {
		if v.frame != geom.R(0, 0, 120, 80) {
			t.Errorf("subview %d frame = %+v", i, v.frame)
		}
	}
}
