package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/stripnest/pkg/export"
	"github.com/dshills/stripnest/pkg/instio"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/optimizer"
	"github.com/dshills/stripnest/pkg/playout"
	"github.com/dshills/stripnest/pkg/solvercfg"
	"github.com/dshills/stripnest/pkg/solvererr"
)

const version = "0.1.0"

var (
	inputPath        = flag.String("input", "", "Path to JSON instance file (required)")
	outputDir        = flag.String("output", ".", "Output directory for generated files")
	format           = flag.String("format", "json", "Export format: json, svg, csv, or all")
	globalTime       = flag.Float64("global-time", 0, "Combined explore+compress time budget in seconds")
	explorationTime  = flag.Float64("exploration", 0, "Explore phase time budget in seconds")
	compressionTime  = flag.Float64("compression", 0, "Compress phase time budget in seconds")
	rngSeed          = flag.Uint64("rng-seed", 0, "Master RNG seed (0 = auto-generate)")
	earlyTermination = flag.Int("early-termination", 0, "Max consecutive failed shrink attempts (0 = solver default)")
	nWorkers         = flag.Int("n-workers", 0, "Pre-refine worker count (0 = runtime.NumCPU())")
	quantities       = flag.String("quantities", "", "Comma-separated demand multipliers for a batch run, e.g. \"1,2,4\"")
	squareSearch     = flag.Bool("square-search", false, "Square mode only: binary-search the smallest feasible side instead of a single Explore+Compress run")
	sideLow          = flag.Float64("side-low", 1, "square-search: lower bound on the side length")
	sideTolerance    = flag.Float64("side-tolerance", 0.5, "square-search: stop once the bracket is this narrow")
	verbose          = flag.Bool("verbose", false, "Enable verbose progress output")
	versionF         = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("stripnest version %s\n", version)
		return
	}

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		fmt.Fprintln(os.Stderr, "Usage: stripnest -input <instance.json> [options]")
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "svg": true, "csv": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, svg, csv, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		if errIsUserFacing(err) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		// Cancellation and ErrUnsolved are silent, best-effort exits.
		return
	}
}

// errIsUserFacing reports whether err should be printed and cause a
// non-zero exit: every error except cancellation and ErrUnsolved, so
// configuration, instance and I/O errors all exit 1. A cancelled or
// unsolved run still writes its best-effort snapshot and exits 0.
func errIsUserFacing(err error) bool {
	return !errors.Is(err, solvererr.ErrCancelled) && !errors.Is(err, solvererr.ErrUnsolved)
}

func run() error {
	baseInst, err := instio.ReadInstance(*inputPath)
	if err != nil {
		return err
	}

	cfg := solvercfg.DefaultConfig()
	if *globalTime > 0 {
		cfg.GlobalTime, cfg.Exploration, cfg.Compression = *globalTime, 0, 0
	} else if *explorationTime > 0 && *compressionTime > 0 {
		cfg.GlobalTime, cfg.Exploration, cfg.Compression = 0, *explorationTime, *compressionTime
	}
	if *rngSeed != 0 {
		cfg.RNGSeed = *rngSeed
	} else {
		cfg.RNGSeed = uint64(time.Now().UnixNano())
	}
	if *earlyTermination > 0 {
		cfg.EarlyTermination = *earlyTermination
	}
	if *nWorkers > 0 {
		cfg.NWorkers = *nWorkers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", solvererr.ErrConfig, err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	term := optimizer.NewContextTerminator(ctx)

	multipliers, err := parseQuantities(*quantities)
	if err != nil {
		return fmt.Errorf("%w: %v", solvererr.ErrConfig, err)
	}

	var summaries []export.RunSummary
	for _, mult := range multipliers {
		inst := scaleDemands(baseInst, mult)
		if err := runOnce(term, &cfg, inst, mult, &summaries); err != nil {
			return err
		}
	}

	if (*format == "csv" || *format == "all") && len(summaries) > 0 {
		path := filepath.Join(*outputDir, "summary.csv")
		if err := export.WriteCSVSummary(path, summaries); err != nil {
			return fmt.Errorf("writing CSV summary: %w", err)
		}
	}

	return nil
}

func runOnce(term optimizer.Terminator, cfg *solvercfg.Config, inst model.Instance, mult float64, summaries *[]export.RunSummary) error {
	explore, compress := cfg.ExploreCompressSeconds()
	if *verbose {
		fmt.Printf("Solving instance (mode=%s, seed=%d, quantity=%.2fx, explore=%.1fs compress=%.1fs)\n",
			inst.Mode, cfg.RNGSeed, mult, explore, compress)
	}

	opts := optimizer.Options{
		Instance:                inst,
		SampleConfig:            cfg.SampleConfig,
		IterNoImprvLimit:        cfg.EarlyTermination,
		MaxConseqFailedAttempts: cfg.EarlyTermination,
		CompressIterations:      100,
		MasterSeed:              cfg.RNGSeed,
		ConfigHash:              cfg.Hash(),
		NWorkers:                cfg.NWorkers,
		ExploreSeconds:          explore,
		CompressSeconds:         compress,
		Term:                    term,
	}

	start := time.Now()
	layout, err := solve(opts)
	elapsed := time.Since(start)
	if err != nil && errors.Is(err, solvererr.ErrInternalInvariantViolated) {
		fmt.Fprintf(os.Stderr, "internal invariant violated: %v\n", err)
		os.Exit(1)
	}
	if err != nil && !errors.Is(err, solvererr.ErrUnsolved) {
		return err
	}
	if layout == nil {
		// ErrUnsolved with no best-effort snapshot at all (square-search
		// never bracketed a feasible side): nothing to write, not an error.
		return nil
	}

	if *verbose {
		fmt.Printf("Finished in %v (feasible=%v, dimension=%.3fx%.3f)\n",
			elapsed, layout.IsFeasible(), layout.ContainerWidth(), layout.ContainerHeight())
	}

	baseName := fmt.Sprintf("stripnest_%d_q%s", cfg.RNGSeed, trimMultiplier(mult))

	if *format == "json" || *format == "all" {
		if err := instio.WriteSolution(layout, filepath.Join(*outputDir, baseName+".json")); err != nil {
			return fmt.Errorf("writing JSON solution: %w", err)
		}
	}
	if *format == "svg" || *format == "all" {
		opts := export.DefaultSVGOptions()
		opts.Title = fmt.Sprintf("%s (seed=%d)", inst.Mode, cfg.RNGSeed)
		if err := export.SaveSVGToFile(layout, opts, filepath.Join(*outputDir, baseName+".svg")); err != nil {
			return fmt.Errorf("writing SVG visualisation: %w", err)
		}
	}

	*summaries = append(*summaries, export.SummaryFromLayout(layout, cfg.RNGSeed, elapsed.Seconds()))
	return nil
}

func solve(opts optimizer.Options) (*playout.Layout, error) {
	if *squareSearch && opts.Instance.Mode == model.ModeSquare {
		layout, _, err := optimizer.SearchSquareSide(opts, *sideLow, opts.Instance.StartSide, *sideTolerance)
		return layout, err
	}
	return optimizer.Run(opts)
}

func parseQuantities(spec string) ([]float64, error) {
	if strings.TrimSpace(spec) == "" {
		return []float64{1}, nil
	}
	parts := strings.Split(spec, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid quantity multiplier %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func scaleDemands(inst model.Instance, mult float64) model.Instance {
	if mult == 1 {
		return inst
	}
	scaled := inst
	scaled.Demands = make([]model.Demand, len(inst.Demands))
	for i, d := range inst.Demands {
		qty := int(math.Round(float64(d.Qty) * mult))
		if qty < 1 {
			qty = 1
		}
		scaled.Demands[i] = model.Demand{Item: d.Item, Qty: qty}
	}
	return scaled
}

func trimMultiplier(mult float64) string {
	s := strconv.FormatFloat(mult, 'f', -1, 64)
	return strings.ReplaceAll(s, ".", "_")
}
