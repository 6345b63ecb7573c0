// Package separator runs one overlap-resolution attempt: repeatedly
// picks the worst-overlapping placement, tries to relocate it to a
// strictly cheaper pose via sampling and coordinate descent, and
// strikes the GLS weight table whenever it fails to improve.
package separator
