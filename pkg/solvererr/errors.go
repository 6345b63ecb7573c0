// Package solvererr collects the sentinel errors shared across the
// solver pipeline, so callers can classify a failure with errors.Is
// instead of string matching.
package solvererr

import "errors"

var (
	// ErrConfig means a solvercfg.Config failed validation before
	// optimisation ever started.
	ErrConfig = errors.New("solvercfg: invalid configuration")

	// ErrInstance means the packing instance itself is degenerate: a
	// zero-area polygon, an item that can never fit the starting
	// container, or similar, raised by pkg/instio/pkg/model at import
	// time.
	ErrInstance = errors.New("model: invalid instance")

	// ErrUnsolved means the optimizer could not reach even one
	// feasible layout before its Terminator fired or its failure
	// budget ran out. The caller still receives the best-effort
	// (possibly overlapping) snapshot alongside this error.
	ErrUnsolved = errors.New("optimizer: no feasible layout found")

	// ErrCancelled means a Terminator fired mid-run. No function in
	// this module returns it: a cancelled optimizer.Run returns the best
	// snapshot held so far with a nil error (or ErrUnsolved).
	// cmd/stripnest treats it as a clean, silent exit rather than a
	// failure the user needs to see a message about.
	ErrCancelled = errors.New("optimizer: cancelled")

	// ErrInternalInvariantViolated means the CDE and the layout
	// bookkeeping disagreed, or a cost computation produced NaN. It is
	// fatal: no library package returns it; cmd/stripnest checks for it,
	// prints it to stderr and exits non-zero rather than trusting the
	// result.
	ErrInternalInvariantViolated = errors.New("stripnest: internal invariant violated")
)
