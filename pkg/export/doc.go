// Package export renders a finished layout for human consumption: an
// SVG visualisation of the container and its placements, and an
// optional one-row-per-run CSV summary for batch comparisons. JSON
// solution export lives in pkg/instio, alongside the instance reader
// it round-trips with.
package export
