// Package instio reads packing instances and writes packing solutions
// as JSON. The wire schema is intentionally flat: a polygon ring is a
// plain array of (x,y) pairs with implicit closure, and rotation is
// spelled out as a tagged "kind" field rather than relying on Go's
// struct layout.
package instio
