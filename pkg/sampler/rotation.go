package sampler

import (
	"math"

	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/rng"
)

// RotationSampler draws a rotation in radians, honouring an item's
// RotationSpec (None always returns 0, Discrete always returns one of
// the item's allowed angles).
type RotationSampler interface {
	Sample(r *rng.RNG) float64
}

// UniformRotation samples uniformly: Continuous draws from [0, 2*pi),
// Discrete picks one of the allowed angles with equal probability,
// None always returns 0.
type UniformRotation struct {
	spec model.RotationSpec
}

// NewUniformRotation builds a UniformRotation sampler for spec.
func NewUniformRotation(spec model.RotationSpec) UniformRotation {
	return UniformRotation{spec: spec}
}

func (u UniformRotation) Sample(r *rng.RNG) float64 {
	switch u.spec.Kind {
	case model.RotationNone:
		return 0
	case model.RotationDiscrete:
		return u.spec.Angles[r.Intn(len(u.spec.Angles))]
	default:
		return r.Float64Range(0, 2*math.Pi)
	}
}

// NormalRotation samples from a wrapped normal distribution centred on
// a mutable reference angle: Continuous draws Normal(mean, stddev) and
// wraps into [-pi, pi], Discrete always returns the allowed angle
// nearest the reference, None always returns 0.
type NormalRotation struct {
	spec   model.RotationSpec
	mean   float64
	stddev float64
}

// NewNormalRotation builds a NormalRotation sampler centred on mean
// with the given standard deviation (radians). mean is taken as the
// reference pose's rotation.
func NewNormalRotation(spec model.RotationSpec, mean, stddev float64) *NormalRotation {
	return &NormalRotation{spec: spec, mean: mean, stddev: stddev}
}

// SetMean re-centres the sampler, e.g. when the descent searcher
// advances its reference pose.
func (n *NormalRotation) SetMean(mean float64) { n.mean = mean }

// SetStddev adjusts the spread, e.g. as a refinement level narrows.
func (n *NormalRotation) SetStddev(stddev float64) { n.stddev = stddev }

func (n *NormalRotation) Sample(r *rng.RNG) float64 {
	switch n.spec.Kind {
	case model.RotationNone:
		return 0
	case model.RotationDiscrete:
		return n.spec.Nearest(n.mean)
	default:
		return wrapAngle(n.mean + r.NormFloat64()*n.stddev)
	}
}

func wrapAngle(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta < -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
