package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/stripnest/pkg/playout"
)

// RunSummary is one CSV row: the parameters and outcome of a single
// solver run, meant for comparing a batch of runs (e.g. the
// --quantities sweep) at a glance.
type RunSummary struct {
	Seed        uint64
	Mode        string
	Width       float64
	Height      float64
	ItemCount   int
	Feasible    bool
	ElapsedSecs float64
}

var csvHeader = []string{"seed", "mode", "width", "height", "item_count", "feasible", "elapsed_secs"}

func (r RunSummary) row() []string {
	return []string{
		strconv.FormatUint(r.Seed, 10),
		r.Mode,
		strconv.FormatFloat(r.Width, 'f', -1, 64),
		strconv.FormatFloat(r.Height, 'f', -1, 64),
		strconv.Itoa(r.ItemCount),
		strconv.FormatBool(r.Feasible),
		strconv.FormatFloat(r.ElapsedSecs, 'f', -1, 64),
	}
}

// SummaryFromLayout builds a RunSummary from a finished layout and the
// run's seed and elapsed time, which the layout itself does not track.
func SummaryFromLayout(layout *playout.Layout, seed uint64, elapsedSecs float64) RunSummary {
	return RunSummary{
		Seed:        seed,
		Mode:        layout.Mode().String(),
		Width:       layout.ContainerWidth(),
		Height:      layout.ContainerHeight(),
		ItemCount:   len(layout.Placements()),
		Feasible:    layout.IsFeasible(),
		ElapsedSecs: elapsedSecs,
	}
}

// WriteCSVSummary appends one row per summary to path, writing the
// header only when the file does not already exist — so a batch
// runner can call this once per quantity and accumulate one CSV.
func WriteCSVSummary(path string, summaries []RunSummary) error {
	_, statErr := os.Stat(path)
	writeHeader := statErr != nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("export: opening CSV summary: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("export: writing CSV header: %w", err)
		}
	}
	for _, s := range summaries {
		if err := w.Write(s.row()); err != nil {
			return fmt.Errorf("export: writing CSV row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
