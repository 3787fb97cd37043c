package layout

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/framekit/pkg/geom"
	"github.com/matzehuels/framekit/pkg/observability"
)

// Func is a layout procedure. It positions subviews through p for the
// given size hint and returns the size it occupied. It runs for both
// Measure and Apply and must issue the same requests in both.
type Func func(p *Pass, size geom.Size) geom.Size

// Engine runs a layout procedure in sizing or applying passes and caches
// the last measurement.
type Engine struct {
	fn     Func
	fixed  geom.Size
	cache  sizeCache
	active *Pass
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for debug records about passes and
// cache use. Without it the engine logs to log.Default().
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithFixedSize sets the fixed size. See [Engine.SetFixedSize].
func WithFixedSize(s geom.Size) Option {
	return func(e *Engine) { e.fixed = s }
}

// New creates an engine bound to fn. A nil fn occupies exactly the size
// it is given.
func New(fn Func, opts ...Option) *Engine {
	e := &Engine{fn: fn, logger: log.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Measure returns the size needed for hint without changing any view.
//
// A fixed size with a non-zero height is returned as is. A fixed size
// with only a width raises hint.W to at least that width. Otherwise the
// last result is reused while hint is bitwise identical to the last one
// and SetNeedsLayout has not been called.
func (e *Engine) Measure(hint geom.Size) geom.Size {
	if e.fixed.H != 0 {
		return e.fixed
	}

	if out, ok := e.cache.lookup(hint); ok {
		observability.Layout().OnMeasureCacheHit(hint)
		e.logger.Debug("measure cache hit", "hint", hint, "size", out)
		return out
	}
	observability.Layout().OnMeasureCacheMiss(hint)

	in := hint
	if e.fixed.W != 0 {
		in.W = math.Max(in.W, e.fixed.W)
	}

	out := e.run(Sizing, in)
	e.cache.store(hint, out)
	return out
}

// Apply lays out the subviews in rect and returns the size they occupied.
// It neither reads nor updates the measurement cache.
func (e *Engine) Apply(rect geom.Rect) geom.Size {
	return e.run(Applying, rect.Size())
}

func (e *Engine) run(mode Mode, size geom.Size) geom.Size {
	p := newPass(mode)
	prev := e.active
	e.active = p
	defer func() {
		p.done = true
		e.active = prev
	}()

	observability.Layout().OnPassStart(mode.String(), size)
	start := time.Now()

	out := size
	if e.fn != nil {
		out = e.fn(p, size)
	}

	elapsed := time.Since(start)
	observability.Layout().OnPassComplete(mode.String(), size, out, elapsed)
	e.logger.Debug("layout pass", "mode", mode, "hint", size, "size", out, "elapsed", elapsed)
	return out
}

// SetNeedsLayout drops the cached measurement. Call it whenever content
// that affects sizing changes.
func (e *Engine) SetNeedsLayout() {
	e.cache.invalidate()
}

// IsSizing reports whether a sizing pass is running on this engine.
// Outside of any pass it reports false.
func (e *Engine) IsSizing() bool {
	return e.active.Mode() == Sizing
}

// FixedSize returns the fixed size, zero when unset.
func (e *Engine) FixedSize() geom.Size { return e.fixed }

// SetFixedSize overrides what Measure reports. With a non-zero height the
// procedure is bypassed entirely; with only a width, the width is a
// minimum for the hint. The zero size unsets the override.
func (e *Engine) SetFixedSize(s geom.Size) {
	e.fixed = s
	e.cache.invalidate()
}
