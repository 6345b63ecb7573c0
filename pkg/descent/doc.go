// Package descent implements the coordinate-descent local searcher a
// Separator attempt runs on every surviving candidate pose: a
// six-neighbour probe over (x, y, theta) with independently adapting
// step sizes, run at two refinement levels of decreasing coarseness.
package descent
