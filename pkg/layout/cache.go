package layout

import "github.com/matzehuels/framekit/pkg/geom"

// sizeCache holds the last (hint, size) pair computed by Measure.
type sizeCache struct {
	valid bool
	in    geom.Size
	out   geom.Size
}

// lookup returns the cached size when in is bitwise identical to the
// stored hint.
func (c *sizeCache) lookup(in geom.Size) (geom.Size, bool) {
	if !c.valid || !c.in.Identical(in) {
		return geom.Size{}, false
	}
	return c.out, true
}

func (c *sizeCache) store(in, out geom.Size) {
	c.valid = true
	c.in = in
	c.out = out
}

func (c *sizeCache) invalidate() {
	*c = sizeCache{}
}
