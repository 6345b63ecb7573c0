// Package optimizer drives the two-phase packing heuristic: Explore
// ratchets the container down as far as repeated Separator attempts
// stay feasible, Compress then fine-tunes the final dimension with an
// adaptive step size once Explore has exhausted its failure budget.
package optimizer
