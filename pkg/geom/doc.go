// Package geom provides the 2D geometry primitives the solver builds on:
// points, polygon rings, axis-aligned rectangles, rigid transforms, and
// the distance/intersection predicates the collision detection engine
// needs. All arithmetic is double-precision; there is no exact/rational
// fallback.
package geom
