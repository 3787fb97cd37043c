package cache

import "github.com/matzehuels/framekit/pkg/geom"

// ScopedKeyer prefixes every key of an inner Keyer, so several tenants or
// tool versions can share one Redis database without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "framekit:v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// the default one.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// MeasureKey implements Keyer.
func (k *ScopedKeyer) MeasureKey(sceneHash string, hint geom.Size) string {
	return k.prefix + k.inner.MeasureKey(sceneHash, hint)
}

// FramesKey implements Keyer.
func (k *ScopedKeyer) FramesKey(sceneHash string, rect geom.Rect) string {
	return k.prefix + k.inner.FramesKey(sceneHash, rect)
}
