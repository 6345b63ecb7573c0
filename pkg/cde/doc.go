// Package cde implements the Collision Detection Engine: the proxy
// overlap and out-of-bounds cost functions the rest of the solver
// treats as ground truth, plus the spatial index that keeps repeated
// queries cheap as the layout grows.
//
// Nothing outside this package computes overlap or containment
// directly; playout.Layout and optimizer hold placement state and call
// back into the engine for every cost query.
package cde
