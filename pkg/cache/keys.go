package cache

import (
	"math"

	"github.com/matzehuels/framekit/pkg/geom"
)

// Keyer builds cache keys for layout results.
type Keyer interface {
	// MeasureKey identifies the size a scene needs for a hint.
	MeasureKey(sceneHash string, hint geom.Size) string
	// FramesKey identifies the frames a scene takes when applied to rect.
	FramesKey(sceneHash string, rect geom.Rect) string
}

// framesFormat changes whenever the cached snapshot layout does.
const framesFormat = 2

// DefaultKeyer hashes its inputs into "measure:<sha256>" and
// "frames:<sha256>" keys. Floats enter the hash bitwise, matching the
// equality the layout engine uses for its own cache.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// MeasureKey implements Keyer.
func (DefaultKeyer) MeasureKey(sceneHash string, hint geom.Size) string {
	return hashKey("measure", sceneHash, bits(hint.W, hint.H))
}

// FramesKey implements Keyer.
func (DefaultKeyer) FramesKey(sceneHash string, rect geom.Rect) string {
	return hashKey("frames", sceneHash, framesFormat, bits(rect.X, rect.Y, rect.W, rect.H))
}

func bits(vs ...float64) []uint64 {
	out := make([]uint64, len(vs))
	for i, v := range vs {
		out[i] = math.Float64bits(v)
	}
	return out
}
