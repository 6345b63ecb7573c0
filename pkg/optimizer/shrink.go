package optimizer

// ShrinkDecayStrategy decides how large a step the Compress phase
// takes out of the current slack (the gap between the container's
// current size and the smallest size known to be infeasible).
type ShrinkDecayStrategy interface {
	// Step returns the shrink amount to try this iteration, given the
	// current slack. Always in [0, slack].
	Step(slack float64) float64
	// OnResult reports whether the last Step's shrink stayed feasible,
	// letting an adaptive strategy adjust its next Step.
	OnResult(success bool)
}

// StaticDecay always shrinks by a fixed fraction of the current slack.
type StaticDecay struct {
	Rate float64
}

func (s StaticDecay) Step(slack float64) float64 { return slack * s.Rate }
func (s StaticDecay) OnResult(success bool)      {}

// FailureBasedDecay starts at slack*InitialRate and adapts: a failed
// shrink attempt backs the rate off by R (0 < R < 1), trying a smaller
// fraction of slack next time; a successful one grows the rate by 1/R,
// so repeated successes accelerate toward bigger absolute steps while
// repeated failures converge the search. The rate is always clamped to
// (0, 1].
type FailureBasedDecay struct {
	rate float64
	r    float64
}

// NewFailureBasedDecay builds a FailureBasedDecay starting at
// initialRate with back-off factor r (0 < r < 1).
func NewFailureBasedDecay(initialRate, r float64) *FailureBasedDecay {
	return &FailureBasedDecay{rate: initialRate, r: r}
}

func (f *FailureBasedDecay) Step(slack float64) float64 {
	step := slack * f.rate
	if step > slack {
		step = slack
	}
	if step < 0 {
		step = 0
	}
	return step
}

func (f *FailureBasedDecay) OnResult(success bool) {
	if success {
		f.rate /= f.r
	} else {
		f.rate *= f.r
	}
	if f.rate > 1.0 {
		f.rate = 1.0
	}
}
