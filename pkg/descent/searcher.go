package descent

import (
	"math"

	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/solverconst"
)

// RefineLevel is one coordinate-descent refinement pass: translation
// step ratios (relative to the item's min dimension) and rotation step
// sizes, each given as an (initial, limit) pair. The search runs until
// both axes' step sizes have decayed below their limit.
type RefineLevel struct {
	TLRatioInit, TLRatioLimit float64
	RStepInit, RStepLimit     float64
}

// PreRefine is the coarse first pass every candidate pose goes
// through.
var PreRefine = RefineLevel{
	TLRatioInit:  solverconst.PreRefineCDTLRatios[0],
	TLRatioLimit: solverconst.PreRefineCDTLRatios[1],
	RStepInit:    solverconst.PreRefineCDRSteps[0],
	RStepLimit:   solverconst.PreRefineCDRSteps[1],
}

// SndRefine is the fine second pass run only on the pre-refine
// survivors kept for a Separator attempt's NCoordDescents budget.
var SndRefine = RefineLevel{
	TLRatioInit:  solverconst.SndRefineCDTLRatios[0],
	TLRatioLimit: solverconst.SndRefineCDTLRatios[1],
	RStepInit:    solverconst.SndRefineCDRSteps[0],
	RStepLimit:   solverconst.SndRefineCDRSteps[1],
}

// axis identifies which of a pose's three independent coordinates a
// probed neighbour perturbs.
type axis int

const (
	axisX axis = iota
	axisY
	axisTheta
)

// Search runs one coordinate-descent pass starting from start, probing
// the six neighbours of (x, y, theta) (theta skipped for items whose
// rotation is not Continuous), and returns the best pose found and its
// NodeCost. Each axis keeps its own step size: an improving move grows
// only the winning axis's step, a failed round shrinks every axis.
// Deterministic given (start, layout, weights): no randomness is
// involved, matching the spec's determinism requirement for this stage.
func Search(item *model.Item, start model.Pose, exclude cde.PlacementID, layout *playout.Layout, weights cde.WeightLookup, level RefineLevel) (model.Pose, float64) {
	engine := layout.Engine()
	minDim := item.MinDimension()

	stepX := level.TLRatioInit * minDim
	stepY := stepX
	limitXY := level.TLRatioLimit * minDim
	stepTheta := level.RStepInit
	limitTheta := level.RStepLimit

	rotates := item.Rotation.Kind == model.RotationContinuous

	pose := start
	cost := engine.NodeCost(item, pose, exclude, weights)

	for stepX > limitXY || stepY > limitXY || (rotates && stepTheta > limitTheta) {
		type candidate struct {
			pose model.Pose
			axis axis
		}
		candidates := []candidate{
			{pose.Translated(stepX, 0), axisX},
			{pose.Translated(-stepX, 0), axisX},
			{pose.Translated(0, stepY), axisY},
			{pose.Translated(0, -stepY), axisY},
		}
		if rotates {
			candidates = append(candidates,
				candidate{pose.WithRotation(pose.Rotation + stepTheta), axisTheta},
				candidate{pose.WithRotation(pose.Rotation - stepTheta), axisTheta},
			)
		}

		bestPose, bestCost, bestAxis, improved := pose, cost, axisX, false
		for _, cand := range candidates {
			if c := engine.NodeCost(item, cand.pose, exclude, weights); c < bestCost {
				bestPose, bestCost, bestAxis, improved = cand.pose, c, cand.axis, true
			}
		}
		pose, cost = bestPose, bestCost

		if improved {
			switch bestAxis {
			case axisX:
				stepX *= solverconst.CDStepSuccess
			case axisY:
				stepY *= solverconst.CDStepSuccess
			case axisTheta:
				stepTheta *= solverconst.CDStepSuccess
			}
		} else {
			stepX *= solverconst.CDStepFail
			stepY *= solverconst.CDStepFail
			stepTheta *= solverconst.CDStepFail
		}
	}

	return pose, cost
}

// IsDuplicate reports whether two poses are close enough (L-infinity
// on translation, relative to minDim) to be treated as the same
// candidate, per the spec's UniqueSampleThreshold.
func IsDuplicate(a, b model.Pose, minDim float64) bool {
	threshold := solverconst.UniqueSampleThreshold * minDim
	return math.Abs(a.X-b.X) <= threshold && math.Abs(a.Y-b.Y) <= threshold
}
