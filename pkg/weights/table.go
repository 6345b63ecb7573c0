package weights

import (
	"github.com/dshills/stripnest/pkg/cde"
	"github.com/dshills/stripnest/pkg/rng"
	"github.com/dshills/stripnest/pkg/solverconst"
)

// pairKey canonicalises an unordered placement pair so (a, b) and
// (b, a) always address the same entry.
type pairKey struct {
	a, b cde.PlacementID
}

func canonical(a, b cde.PlacementID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{a, b}
}

// Table is the GLS weight table: one multiplier per unordered
// placement pair, defaulting to 1.0 until a strike bumps it up.
type Table struct {
	w map[pairKey]float64
}

// NewTable returns an empty weight table; every pair starts at weight 1.0.
func NewTable() *Table {
	return &Table{w: make(map[pairKey]float64)}
}

// Weight implements cde.WeightLookup.
func (t *Table) Weight(a, b cde.PlacementID) float64 {
	if a == b {
		return 0
	}
	if w, ok := t.w[canonical(a, b)]; ok {
		return w
	}
	return 1.0
}

// Bump multiplies one pair's weight by factor.
func (t *Table) Bump(a, b cde.PlacementID, factor float64) {
	k := canonical(a, b)
	cur, ok := t.w[k]
	if !ok {
		cur = 1.0
	}
	t.w[k] = cur * factor
}

// Decay applies the per-iteration multiplicative decay to every pair
// with a weight above 1.0, flooring back at 1.0 so weights never decay
// below the neutral baseline.
func (t *Table) Decay() {
	for k, v := range t.w {
		nv := v * solverconst.GLSWeightDecay
		if nv < 1.0 {
			nv = 1.0
		}
		t.w[k] = nv
	}
}

// StrikeWorst registers one collision strike against id: of id's
// current overlaps, the pair with the highest utility
// (depth/(1+weight)) is bumped by a random factor drawn from
// [GLSWeightMinIncRatio, GLSWeightMaxIncRatio]. Ties are broken by the
// lowest neighbour placement ID.
func (t *Table) StrikeWorst(id cde.PlacementID, breakdown []cde.PairDepth, r *rng.RNG) {
	if len(breakdown) == 0 {
		return
	}

	bestUtility := -1.0
	var tied []cde.PairDepth
	for _, pd := range breakdown {
		u := pd.Depth / (1 + t.Weight(id, pd.Other))
		switch {
		case u > bestUtility:
			bestUtility = u
			tied = []cde.PairDepth{pd}
		case u == bestUtility:
			tied = append(tied, pd)
		}
	}

	best := tied[0]
	for _, pd := range tied[1:] {
		if pd.Other < best.Other {
			best = pd
		}
	}

	factor := solverconst.GLSWeightMinIncRatio + r.Float64()*(solverconst.GLSWeightMaxIncRatio-solverconst.GLSWeightMinIncRatio)
	t.Bump(id, best.Other, factor)
}
