// Package weights implements the Guided Local Search penalty table the
// optimizer uses to escape local minima in the overlap landscape: pairs
// that keep colliding accrue weight, making the coordinate-descent
// searcher's cost function increasingly reluctant to leave them
// overlapped.
package weights
