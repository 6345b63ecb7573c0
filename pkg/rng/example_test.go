package rng_test

import (
	"crypto/sha256"
	"testing"

	"github.com/dshills/stripnest/pkg/rng"
)

// TestNewRNG_DeterministicPerStage demonstrates deriving independent,
// reproducible RNGs for different pipeline stages from one master seed.
func TestNewRNG_DeterministicPerStage(t *testing.T) {
	masterSeed := uint64(123456789)
	configHash := sha256.Sum256([]byte("solver_config_v1"))

	exploreRNG := rng.NewRNG(masterSeed, "explore", configHash[:])
	compressRNG := rng.NewRNG(masterSeed, "compress", configHash[:])

	if exploreRNG.Seed() == compressRNG.Seed() {
		t.Fatalf("expected distinct stage seeds, got %d for both", exploreRNG.Seed())
	}

	exploreRNG2 := rng.NewRNG(masterSeed, "explore", configHash[:])
	if exploreRNG.Seed() != exploreRNG2.Seed() {
		t.Fatalf("same stage name should derive the same seed: %d != %d", exploreRNG.Seed(), exploreRNG2.Seed())
	}
	if got, want := exploreRNG2.Intn(1000), rng.NewRNG(masterSeed, "explore", configHash[:]).Intn(1000); got != want {
		t.Fatalf("repeated draw from equivalently-seeded RNG diverged: %d != %d", got, want)
	}
}

// TestRNG_Shuffle_Deterministic demonstrates that shuffling a placement
// order with an equivalently-seeded RNG gives the same order every time.
func TestRNG_Shuffle_Deterministic(t *testing.T) {
	configHash := sha256.Sum256([]byte("config"))

	shuffle := func() []string {
		placements := []string{"p0", "p1", "p2", "p3", "p4"}
		r := rng.NewRNG(42, "sampler", configHash[:])
		r.Shuffle(len(placements), func(i, j int) {
			placements[i], placements[j] = placements[j], placements[i]
		})
		return placements
	}

	a, b := shuffle(), shuffle()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shuffle not deterministic at index %d: %v vs %v", i, a, b)
		}
	}
}

// TestRNG_WeightedChoice_RespectsWeights demonstrates weighted move
// selection converging to roughly its configured weights over many draws.
func TestRNG_WeightedChoice_RespectsWeights(t *testing.T) {
	configHash := sha256.Sum256([]byte("config"))
	r := rng.NewRNG(999, "move-select", configHash[:])

	weights := []float64{70.0, 30.0}
	counts := [2]int{}
	const trials = 5000
	for i := 0; i < trials; i++ {
		choice := r.WeightedChoice(weights)
		if choice < 0 || choice > 1 {
			t.Fatalf("WeightedChoice returned out-of-range index %d", choice)
		}
		counts[choice]++
	}

	ratio := float64(counts[0]) / float64(trials)
	if ratio < 0.6 || ratio > 0.8 {
		t.Fatalf("observed ratio %.3f too far from configured 0.7", ratio)
	}
}

// TestRNG_Float64Range_Bounded demonstrates bounded sampling, as used
// for container-uniform translation samples.
func TestRNG_Float64Range_Bounded(t *testing.T) {
	configHash := sha256.Sum256([]byte("config"))
	r := rng.NewRNG(777, "jitter", configHash[:])

	for i := 0; i < 1000; i++ {
		v := r.Float64Range(-1.0, 1.0)
		if v < -1.0 || v >= 1.0 {
			t.Fatalf("Float64Range(-1, 1) produced out-of-range value %f", v)
		}
	}
}
