// Package workerpool fans a batch of independent pre-refine
// coordinate descents out across a fixed number of long-lived
// goroutines. All workers read the same layout, which is not mutated
// during a batch, and draw no randomness; only the caller (the
// controller goroutine) ever mutates the authoritative playout.Layout.
package workerpool
