package playout

import (
	"fmt"
	"testing"

	"github.com/dshills/stripnest/pkg/model"
	"pgregory.net/rapid"
)

// TestProperty_SnapshotRestoreRoundTrips checks that Restore(l.Snapshot())
// reproduces the same placements, poses, and container dimensions for
// any sequence of placements rapid can generate.
func TestProperty_SnapshotRestoreRoundTrips(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		width := rapid.Float64Range(50, 500).Draw(t, "width")
		height := rapid.Float64Range(50, 500).Draw(t, "height")

		l := NewLayout(model.ModeStrip, width, height, 10)
		for i := 0; i < n; i++ {
			side := rapid.Float64Range(1, 20).Draw(t, fmt.Sprintf("side_%d", i))
			x := rapid.Float64Range(0, width).Draw(t, fmt.Sprintf("x_%d", i))
			y := rapid.Float64Range(0, height).Draw(t, fmt.Sprintf("y_%d", i))
			l.Place(square(fmt.Sprintf("item-%d", i), side), model.Pose{X: x, Y: y})
		}

		snap := l.Snapshot()
		restored := Restore(snap)

		if restored.ContainerWidth() != l.ContainerWidth() || restored.ContainerHeight() != l.ContainerHeight() {
			t.Fatalf("restored container dims differ: got %gx%g, want %gx%g",
				restored.ContainerWidth(), restored.ContainerHeight(), l.ContainerWidth(), l.ContainerHeight())
		}
		if len(restored.Placements()) != len(l.Placements()) {
			t.Fatalf("restored placement count %d, want %d", len(restored.Placements()), len(l.Placements()))
		}
		for i, id := range restored.Placements() {
			origID := l.Placements()[i]
			if restored.Pose(id) != l.Pose(origID) {
				t.Fatalf("placement %d pose differs after restore: got %v, want %v", i, restored.Pose(id), l.Pose(origID))
			}
		}
	})
}

// TestProperty_OverlapDepthIsSymmetric checks that for any two placed
// items, the overlap depth each reports against the other agrees —
// checkInvariants' core property, exercised directly here under random
// placements rather than only after optimizer commits.
func TestProperty_OverlapDepthIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "n")
		l := NewLayout(model.ModeStrip, 200, 200, 20)
		for i := 0; i < n; i++ {
			side := rapid.Float64Range(5, 30).Draw(t, fmt.Sprintf("side_%d", i))
			x := rapid.Float64Range(0, 150).Draw(t, fmt.Sprintf("x_%d", i))
			y := rapid.Float64Range(0, 150).Draw(t, fmt.Sprintf("y_%d", i))
			l.Place(square(fmt.Sprintf("item-%d", i), side), model.Pose{X: x, Y: y})
		}

		if err := l.checkInvariants(); err != nil {
			t.Fatalf("checkInvariants failed on random placement: %v", err)
		}
	})
}
