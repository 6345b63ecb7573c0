package sampler

import "github.com/dshills/stripnest/pkg/solverconst"

// Config controls how many candidates a Separator attempt draws and
// how many survive to fine refinement. It is a plain alias of
// solverconst.SampleConfig so tuning stays in one place.
type Config = solverconst.SampleConfig

// Default is the "largest bounding first" candidate budget: a wide
// uniform container sweep, no focussed samples, keep the best 3 for
// fine refinement.
var Default = solverconst.LBFSampleConfig
