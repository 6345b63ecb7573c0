package playout

import (
	"testing"

	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
)

func square(id string, side float64) *model.Item {
	ring := []geom.Point{
		{X: 0, Y: 0},
		{X: side, Y: 0},
		{X: side, Y: side},
		{X: 0, Y: side},
	}
	it, err := model.NewItem(id, ring, model.RotationNoneSpec(), 0)
	if err != nil {
		panic(err)
	}
	return &it
}

func TestLayout_PlaceAndRemove(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	id := l.Place(square("a", 10), model.Pose{X: 0, Y: 0})

	if len(l.Placements()) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(l.Placements()))
	}

	l.Remove(id)
	if len(l.Placements()) != 0 {
		t.Fatalf("expected 0 placements after Remove, got %d", len(l.Placements()))
	}
}

func TestLayout_WorstOverlappingPicksHighestDepth(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	idA := l.Place(square("a", 10), model.Pose{X: 0, Y: 0})
	idB := l.Place(square("b", 10), model.Pose{X: 2, Y: 2}) // heavy overlap with a
	l.Place(square("c", 10), model.Pose{X: 60, Y: 60})       // disjoint from both

	worst, depth, _, ok := l.WorstOverlapping()
	if !ok {
		t.Fatal("expected WorstOverlapping to report a result")
	}
	if depth <= 0 {
		t.Fatalf("expected positive worst depth, got %f", depth)
	}
	if worst != idA && worst != idB {
		t.Errorf("expected worst overlap to be a or b, got %d", worst)
	}
}

func TestLayout_IsFeasibleTrueWhenDisjoint(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	l.Place(square("a", 10), model.Pose{X: 0, Y: 0})
	l.Place(square("b", 10), model.Pose{X: 50, Y: 50})

	if !l.IsFeasible() {
		t.Error("expected feasible layout for disjoint, contained placements")
	}
}

func TestLayout_IsFeasibleFalseWhenOverlapping(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	l.Place(square("a", 10), model.Pose{X: 0, Y: 0})
	l.Place(square("b", 10), model.Pose{X: 2, Y: 2})

	if l.IsFeasible() {
		t.Error("expected infeasible layout for overlapping placements")
	}
}

func TestLayout_ShrinkWidthAffectsOutOfBounds(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	l.Place(square("a", 10), model.Pose{X: 85, Y: 0})

	if !l.IsFeasible() {
		t.Fatal("expected feasible before shrink")
	}

	l.ShrinkWidthTo(90)
	if l.IsFeasible() {
		t.Error("expected infeasible after shrinking container under a placed item")
	}
}

func TestLayout_CheckInvariantsPassesOnCleanLayout(t *testing.T) {
	l := NewLayout(model.ModeStrip, 100, 100, 10)
	l.Place(square("a", 10), model.Pose{X: 0, Y: 0})
	l.Place(square("b", 10), model.Pose{X: 50, Y: 50})

	if err := l.checkInvariants(); err != nil {
		t.Errorf("checkInvariants failed on a clean layout: %v", err)
	}
}

func TestLayout_SnapshotRestoreRoundTrip(t *testing.T) {
	l := NewLayout(model.ModeSquare, 100, 100, 10)
	l.Place(square("a", 10), model.Pose{X: 0, Y: 0})
	l.Place(square("b", 10), model.Pose{X: 50, Y: 50})

	snap := l.Snapshot()
	restored := Restore(snap)

	if restored.ContainerWidth() != l.ContainerWidth() {
		t.Errorf("restored width = %f, want %f", restored.ContainerWidth(), l.ContainerWidth())
	}
	if len(restored.Placements()) != len(l.Placements()) {
		t.Errorf("restored placement count = %d, want %d", len(restored.Placements()), len(l.Placements()))
	}
	if !restored.IsFeasible() {
		t.Error("restored layout should be feasible when the original was")
	}
}
