package view

import "github.com/matzehuels/framekit/pkg/geom"

// Node is a view that can be identified and walked.
type Node interface {
	ID() string
	Kind() string
	Frame() geom.Rect
	SetFrame(frame geom.Rect)
}

// Base stores the state shared by every view. Embed it by value.
type Base struct {
	id      string
	frame   geom.Rect
	redraws int
}

// ID returns the view identifier.
func (b *Base) ID() string { return b.id }

// Frame returns the committed frame, relative to the parent.
func (b *Base) Frame() geom.Rect { return b.frame }

// SetFrame commits a frame.
func (b *Base) SetFrame(frame geom.Rect) { b.frame = frame }

// SetNeedsRedraw records a redraw request.
func (b *Base) SetNeedsRedraw() { b.redraws++ }

// Redraws returns how many redraws were requested.
func (b *Base) Redraws() int { return b.redraws }
