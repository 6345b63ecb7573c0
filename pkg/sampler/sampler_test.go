package sampler

import (
	"crypto/sha256"
	"math"
	"testing"

	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/rng"
)

func testRNG(stage string) *rng.RNG {
	h := sha256.Sum256([]byte("sampler-test"))
	return rng.NewRNG(1, stage, h[:])
}

func TestUniformRotation_NoneAlwaysZero(t *testing.T) {
	s := NewUniformRotation(model.RotationNoneSpec())
	r := testRNG("none")
	for i := 0; i < 20; i++ {
		if got := s.Sample(r); got != 0 {
			t.Errorf("None rotation sampled %f, want 0", got)
		}
	}
}

func TestUniformRotation_ContinuousInRange(t *testing.T) {
	s := NewUniformRotation(model.RotationContinuousSpec())
	r := testRNG("cont")
	for i := 0; i < 200; i++ {
		v := s.Sample(r)
		if v < 0 || v >= 2*math.Pi {
			t.Fatalf("Continuous rotation sampled %f, out of [0, 2pi)", v)
		}
	}
}

func TestUniformRotation_DiscreteOnlyAllowedAngles(t *testing.T) {
	angles := []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}
	spec := model.RotationDiscreteSpec(angles)
	s := NewUniformRotation(spec)
	r := testRNG("discrete")
	for i := 0; i < 50; i++ {
		v := s.Sample(r)
		if !spec.Admits(v) {
			t.Fatalf("Discrete rotation sampled inadmissible angle %f", v)
		}
	}
}

func TestNormalRotation_DiscreteReturnsNearestAllowed(t *testing.T) {
	angles := []float64{0, math.Pi}
	spec := model.RotationDiscreteSpec(angles)
	s := NewNormalRotation(spec, 0.1, 0.05)
	r := testRNG("normal-discrete")
	for i := 0; i < 10; i++ {
		if got := s.Sample(r); got != 0 {
			t.Errorf("NormalRotation discrete near 0.1 should snap to 0, got %f", got)
		}
	}
}

func TestNormalRotation_NoneAlwaysZero(t *testing.T) {
	s := NewNormalRotation(model.RotationNoneSpec(), 1.0, 0.5)
	r := testRNG("normal-none")
	if got := s.Sample(r); got != 0 {
		t.Errorf("None rotation sampled %f, want 0", got)
	}
}

func TestContainerUniform_WithinBounds(t *testing.T) {
	bounds := geom.Rect{MinX: 10, MinY: 20, MaxX: 110, MaxY: 220}
	s := ContainerUniform{Bounds: bounds}
	r := testRNG("container")
	for i := 0; i < 200; i++ {
		x, y := s.Sample(r)
		if x < bounds.MinX || x >= bounds.MaxX || y < bounds.MinY || y >= bounds.MaxY {
			t.Fatalf("ContainerUniform sampled (%f, %f) outside %+v", x, y, bounds)
		}
	}
}

func TestFocussed_CentredOnReference(t *testing.T) {
	s := Focussed{RefX: 50, RefY: 50, Stddev: 1.0}
	r := testRNG("focussed")
	sumX, sumY := 0.0, 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		x, y := s.Sample(r)
		sumX += x
		sumY += y
	}
	meanX, meanY := sumX/n, sumY/n
	if math.Abs(meanX-50) > 1 || math.Abs(meanY-50) > 1 {
		t.Errorf("Focussed sample mean (%f, %f) too far from reference (50, 50)", meanX, meanY)
	}
}
