// Package playout holds the mutable placement state of one in-progress
// solve: which items are placed where, and the container they're
// placed in. It is the only package that mutates a cde.Engine after
// construction; every other consumer reads through Layout instead of
// touching the engine directly, so the two never drift apart.
package playout
