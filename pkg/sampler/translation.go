package sampler

import (
	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/rng"
)

// TranslationSampler draws an (x, y) candidate position.
type TranslationSampler interface {
	Sample(r *rng.RNG) (x, y float64)
}

// ContainerUniform draws uniformly over a bounding rectangle, used for
// the wide sweep a Separator attempt opens with.
type ContainerUniform struct {
	Bounds geom.Rect
}

func (c ContainerUniform) Sample(r *rng.RNG) (float64, float64) {
	x := r.Float64Range(c.Bounds.MinX, c.Bounds.MaxX)
	y := r.Float64Range(c.Bounds.MinY, c.Bounds.MaxY)
	return x, y
}

// Focussed draws from an independent Normal(ref, stddev) on each axis,
// used to perturb around a reference pose instead of sweeping the
// whole container.
type Focussed struct {
	RefX, RefY float64
	Stddev     float64
}

func (f Focussed) Sample(r *rng.RNG) (float64, float64) {
	x := f.RefX + r.NormFloat64()*f.Stddev
	y := f.RefY + r.NormFloat64()*f.Stddev
	return x, y
}
