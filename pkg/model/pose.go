package model

// Pose is the triple (item, translation, rotation) the solver searches
// over. Rotation must honour the referenced item's RotationSpec
// (RotationSpec.Admits). Pose has no back-reference to its Item and does
// not check this, and pkg/playout's Place and Move accept any rotation;
// the solver's own pose sources (the initial layout, pkg/sampler and
// pkg/descent) only produce admissible rotations.
type Pose struct {
	X        float64
	Y        float64
	Rotation float64
}

// Translated returns the pose moved by (dx, dy), rotation unchanged.
func (p Pose) Translated(dx, dy float64) Pose {
	return Pose{X: p.X + dx, Y: p.Y + dy, Rotation: p.Rotation}
}

// WithRotation returns the pose with its rotation replaced.
func (p Pose) WithRotation(theta float64) Pose {
	return Pose{X: p.X, Y: p.Y, Rotation: theta}
}
