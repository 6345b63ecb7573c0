// Package model holds the solver's immutable data model: rotation
// specifications, items, poses, and the packing instance built from
// them. Nothing in this package mutates after construction — the
// mutable placement state lives in pkg/playout.
package model
