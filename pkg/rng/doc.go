// Package rng provides deterministic random number generation for the
// packing solver.
//
// # Overview
//
// The RNG type ensures reproducible optimisation runs by deriving
// stage-specific seeds from a master seed. This lets every independent
// consumer of randomness (the explore loop and the compress loop, each
// sharing its stream with its Separator) draw from its own
// sequence while the run as a whole stays deterministic given the
// master seed, config, and worker count.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: the run's top-level seed
//   - stageName: identifies the consumer (e.g. "explore", "compress")
//   - configHash: hash of the solver configuration
//
// This ensures:
//  1. Same inputs always produce the same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
//	configHash := cfg.Hash()
//	explRNG := rng.NewRNG(masterSeed, "explore", configHash)
//	cmprRNG := rng.NewRNG(masterSeed, "compress", configHash)
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine must use its own
// instance; derive per-worker sub-streams before fanning out rather
// than sharing one RNG across goroutines.
package rng
