package model

import "fmt"

// Mode selects which dimension of the container the optimiser is free
// to shrink. The spec's open question on strip/square switching is
// resolved here: Mode is an explicit, first-class config flag rather
// than something inferred from container shape (see DESIGN.md).
type Mode int

const (
	// ModeStrip fixes the container height and minimises its width.
	ModeStrip Mode = iota
	// ModeSquare keeps the container square and minimises its side.
	ModeSquare
)

func (m Mode) String() string {
	if m == ModeSquare {
		return "square"
	}
	return "strip"
}

// Demand pairs an Item with how many instances of it the instance
// requires.
type Demand struct {
	Item Item
	Qty  int
}

// CDETuning collects the CDE's pre-processing knobs, passed through
// from the external instance format.
type CDETuning struct {
	PolySimplTolerance         float64
	MinItemSeparation          float64
	NarrowConcavityCutoffRatio float64
}

// Instance is the immutable, ordered packing problem: a demand list
// plus the container mode and starting dimension. Fixed for the
// duration of one optimisation run.
type Instance struct {
	Demands     []Demand
	Mode        Mode
	StripHeight float64 // used when Mode == ModeStrip
	StartSide   float64 // used when Mode == ModeSquare, as a search seed only
	Tuning      CDETuning
	RNGSeed     *uint64
}

// TotalItems returns the sum of all demanded quantities.
func (inst Instance) TotalItems() int {
	n := 0
	for _, d := range inst.Demands {
		n += d.Qty
	}
	return n
}

// Validate checks structural invariants of the instance: at least one
// item, positive demand, a sane mode-specific dimension, and, in strip
// mode, that no item's unrotated bounding-box height exceeds
// StripHeight (a degenerate, unsatisfiable instance). Square mode has no
// per-item size check.
func (inst Instance) Validate() error {
	if len(inst.Demands) == 0 {
		return fmt.Errorf("model: instance has no items")
	}
	for i, d := range inst.Demands {
		if d.Qty <= 0 {
			return fmt.Errorf("model: demand[%d] (item %q) quantity must be > 0, got %d", i, d.Item.ID, d.Qty)
		}
	}
	switch inst.Mode {
	case ModeStrip:
		if inst.StripHeight <= 0 {
			return fmt.Errorf("model: strip mode requires a positive StripHeight, got %f", inst.StripHeight)
		}
		for _, d := range inst.Demands {
			if d.Item.Polygon.Bounds().Height() > inst.StripHeight {
				return fmt.Errorf("model: item %q does not fit within strip height %f", d.Item.ID, inst.StripHeight)
			}
		}
	case ModeSquare:
		if inst.StartSide <= 0 {
			return fmt.Errorf("model: square mode requires a positive StartSide, got %f", inst.StartSide)
		}
	default:
		return fmt.Errorf("model: unknown mode %v", inst.Mode)
	}
	return nil
}
