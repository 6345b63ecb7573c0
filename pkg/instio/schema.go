package instio

// Point is a wire-format (x,y) pair.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ItemSchema is the wire format for one distinct item shape.
type ItemSchema struct {
	ID            string  `json:"id"`
	Ring          []Point `json:"ring"`
	MinSeparation float64 `json:"min_separation,omitempty"`
	Rotation      RotationSchema `json:"rotation"`
}

// RotationSchema is the wire format for model.RotationSpec: Kind is
// one of "none", "continuous", "discrete"; Angles (radians) only
// populated for "discrete".
type RotationSchema struct {
	Kind   string    `json:"kind"`
	Angles []float64 `json:"angles,omitempty"`
}

// DemandSchema pairs an item with how many are required.
type DemandSchema struct {
	Item ItemSchema `json:"item"`
	Qty  int        `json:"qty"`
}

// TuningSchema is the wire format for model.CDETuning.
type TuningSchema struct {
	PolySimplTolerance         float64 `json:"poly_simpl_tolerance,omitempty"`
	MinItemSeparation          float64 `json:"min_item_separation,omitempty"`
	NarrowConcavityCutoffRatio float64 `json:"narrow_concavity_cutoff_ratio,omitempty"`
}

// InstanceSchema is the wire format for model.Instance.
type InstanceSchema struct {
	Mode        string         `json:"mode"`
	StripHeight float64        `json:"strip_height,omitempty"`
	StartSide   float64        `json:"start_side,omitempty"`
	Demands     []DemandSchema `json:"demands"`
	Tuning      TuningSchema   `json:"tuning,omitempty"`
	RNGSeed     *uint64        `json:"rng_seed,omitempty"`
}

// PlacementSchema is the wire format for one committed placement.
type PlacementSchema struct {
	ItemID   string  `json:"item_id"`
	Index    int     `json:"index"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Rotation float64 `json:"rotation"`
}

// SolutionSchema is the wire format for a completed run: the final
// container dimension plus every placement.
type SolutionSchema struct {
	Mode       string            `json:"mode"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	Feasible   bool              `json:"feasible"`
	Placements []PlacementSchema `json:"placements"`
}
