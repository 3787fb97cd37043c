package layout

import (
	"strings"

	"github.com/matzehuels/framekit/pkg/errors"
)

// Axis is a set of layout axes.
type Axis uint8

const (
	Horizontal Axis = 1 << iota
	Vertical

	// Both is Horizontal|Vertical.
	Both = Horizontal | Vertical
)

// Has reports whether every axis in b is in a.
func (a Axis) Has(b Axis) bool { return b != 0 && a&b == b }

// Alignment is a set of alignment rules applied after sizing.
type Alignment uint8

const (
	AlignCenterHorizontal Alignment = 1 << iota
	AlignCenterVertical
	AlignRight
	AlignBottom

	// AlignCenter is AlignCenterHorizontal|AlignCenterVertical.
	AlignCenter = AlignCenterHorizontal | AlignCenterVertical
)

// Has reports whether every rule in b is in a.
func (a Alignment) Has(b Alignment) bool { return b != 0 && a&b == b }

// Options controls how a requested frame turns into a final frame.
// The zero value requests the frame exactly as given.
type Options struct {
	// Fit replaces the requested dimension with the view's measured one.
	Fit Axis
	// Constrain caps a dimension at the requested one. A requested
	// dimension of zero means unspecified and does not constrain.
	Constrain Axis
	// KeepAspect constrains with a single scale factor so the measured
	// aspect ratio survives. It applies to the Constrain axes, or to every
	// axis with a non-zero request when Constrain is empty.
	KeepAspect bool
	// Default substitutes the requested dimension when the computed one
	// is exactly zero.
	Default Axis
	// Align positions the final frame inside the reference rect.
	Align Alignment
	// Redraw asks the view to refresh after its frame is committed.
	// It has no effect on the computed frame or during sizing.
	Redraw bool
}

// Predefined option sets. Combine them with [Combine] or [Options.With].
var (
	SizeToFitVertical   = Options{Fit: Vertical}
	SizeToFitHorizontal = Options{Fit: Horizontal}
	SizeToFit           = Options{Fit: Both}

	ConstrainWidth          = Options{Constrain: Horizontal}
	ConstrainHeight         = Options{Constrain: Vertical}
	ConstrainSize           = Options{Constrain: Both}
	ConstrainSizeKeepAspect = Options{KeepAspect: true}

	DefaultWidth  = Options{Default: Horizontal}
	DefaultHeight = Options{Default: Vertical}
	DefaultSize   = Options{Default: Both}

	CenterHorizontally = Options{Align: AlignCenterHorizontal}
	CenterVertically   = Options{Align: AlignCenterVertical}
	Centered           = Options{Align: AlignCenter}
	RightAligned       = Options{Align: AlignRight}
	BottomAligned      = Options{Align: AlignBottom}

	Redraw = Options{Redraw: true}
)

// Combine merges option sets; a flag set in any input is set in the result.
func Combine(opts ...Options) Options {
	return Options{}.With(opts...)
}

// With returns o merged with others.
func (o Options) With(others ...Options) Options {
	for _, other := range others {
		o.Fit |= other.Fit
		o.Constrain |= other.Constrain
		o.KeepAspect = o.KeepAspect || other.KeepAspect
		o.Default |= other.Default
		o.Align |= other.Align
		o.Redraw = o.Redraw || other.Redraw
	}
	return o
}

// IsZero reports whether no flag is set.
func (o Options) IsZero() bool { return o == Options{} }

// Mask is the bit form of [Options]. Bit positions are stable and match
// the values historically used by frame-layout toolkits, so masks can be
// stored or exchanged with such code.
type Mask uint32

const (
	MaskSizeToFitVertical       Mask = 1 << 0
	MaskSizeToFitHorizontal     Mask = 1 << 1
	MaskConstrainWidth          Mask = 1 << 2
	MaskConstrainHeight         Mask = 1 << 3
	MaskConstrainSizeKeepAspect Mask = 1 << 4
	MaskDefaultHeight           Mask = 1 << 5
	MaskDefaultWidth            Mask = 1 << 6
	MaskAlignCenterVertical     Mask = 1 << 10
	MaskAlignCenterHorizontal   Mask = 1 << 11
	MaskAlignRight              Mask = 1 << 12
	MaskAlignBottom             Mask = 1 << 13
	MaskRedraw                  Mask = 1 << 16
)

type maskBit struct {
	bit Mask
	opt Options
}

var maskBits = []maskBit{
	{MaskSizeToFitVertical, SizeToFitVertical},
	{MaskSizeToFitHorizontal, SizeToFitHorizontal},
	{MaskConstrainWidth, ConstrainWidth},
	{MaskConstrainHeight, ConstrainHeight},
	{MaskConstrainSizeKeepAspect, ConstrainSizeKeepAspect},
	{MaskDefaultHeight, DefaultHeight},
	{MaskDefaultWidth, DefaultWidth},
	{MaskAlignCenterVertical, CenterVertically},
	{MaskAlignCenterHorizontal, CenterHorizontally},
	{MaskAlignRight, RightAligned},
	{MaskAlignBottom, BottomAligned},
	{MaskRedraw, Redraw},
}

// Mask returns the bit form of o.
func (o Options) Mask() Mask {
	var m Mask
	for _, b := range maskBits {
		if contains(o, b.opt) {
			m |= b.bit
		}
	}
	return m
}

// Options decodes m. Unknown bits are ignored.
func (m Mask) Options() Options {
	var o Options
	for _, b := range maskBits {
		if m&b.bit != 0 {
			o = o.With(b.opt)
		}
	}
	return o
}

// contains reports whether every flag of sub is set in o.
func contains(o, sub Options) bool {
	return o.Fit&sub.Fit == sub.Fit &&
		o.Constrain&sub.Constrain == sub.Constrain &&
		(!sub.KeepAspect || o.KeepAspect) &&
		o.Default&sub.Default == sub.Default &&
		o.Align&sub.Align == sub.Align &&
		(!sub.Redraw || o.Redraw)
}

// optionNames maps the names accepted by ParseOptions. Order matters for
// String: pair names come before their single-axis parts.
var optionNames = []struct {
	name string
	opt  Options
}{
	{"fit", SizeToFit},
	{"fit-horizontal", SizeToFitHorizontal},
	{"fit-vertical", SizeToFitVertical},
	{"constrain", ConstrainSize},
	{"constrain-width", ConstrainWidth},
	{"constrain-height", ConstrainHeight},
	{"keep-aspect", ConstrainSizeKeepAspect},
	{"default", DefaultSize},
	{"default-width", DefaultWidth},
	{"default-height", DefaultHeight},
	{"center", Centered},
	{"center-horizontal", CenterHorizontally},
	{"center-vertical", CenterVertically},
	{"right", RightAligned},
	{"bottom", BottomAligned},
	{"redraw", Redraw},
}

// ParseOptions parses option names separated by '|', ',' or whitespace,
// e.g. "fit | constrain-width | center-horizontal". Names are case
// insensitive and accept '_' for '-'. An empty string yields the zero
// Options.
func ParseOptions(s string) (Options, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	return ParseOptionList(fields)
}

// ParseOptionList parses a list of option names. See [ParseOptions].
func ParseOptionList(names []string) (Options, error) {
	var o Options
	for _, raw := range names {
		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
		if name == "" || name == "none" {
			continue
		}
		opt, ok := lookupOption(name)
		if !ok {
			return Options{}, errors.New(errors.ErrCodeInvalidOptions, "unknown layout option %q", raw)
		}
		o = o.With(opt)
	}
	return o, nil
}

func lookupOption(name string) (Options, bool) {
	for _, n := range optionNames {
		if n.name == name {
			return n.opt, true
		}
	}
	return Options{}, false
}

// String returns the canonical '|'-separated names of o, or "none".
// The result parses back to o with ParseOptions.
func (o Options) String() string {
	var parts []string
	rest := o
	for _, n := range optionNames {
		if contains(rest, n.opt) {
			parts = append(parts, n.name)
			rest = subtract(rest, n.opt)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func subtract(o, sub Options) Options {
	o.Fit &^= sub.Fit
	o.Constrain &^= sub.Constrain
	o.KeepAspect = o.KeepAspect && !sub.KeepAspect
	o.Default &^= sub.Default
	o.Align &^= sub.Align
	o.Redraw = o.Redraw && !sub.Redraw
	return o
}
