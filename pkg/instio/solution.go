package instio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/playout"
)

// EncodeSolution renders a finished layout as indented JSON.
func EncodeSolution(layout *playout.Layout) ([]byte, error) {
	return json.MarshalIndent(solutionFromLayout(layout), "", "  ")
}

// WriteSolution encodes a finished layout and writes it to path.
func WriteSolution(layout *playout.Layout, path string) error {
	data, err := EncodeSolution(layout)
	if err != nil {
		return fmt.Errorf("instio: encoding solution: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("instio: writing solution file: %w", err)
	}
	return nil
}

func solutionFromLayout(layout *playout.Layout) SolutionSchema {
	modeName := "strip"
	if layout.Mode() == model.ModeSquare {
		modeName = "square"
	}

	placements := layout.Placements()
	seen := make(map[string]int, len(placements))
	out := make([]PlacementSchema, 0, len(placements))
	for _, id := range placements {
		item := layout.Item(id)
		pose := layout.Pose(id)
		idx := seen[item.ID]
		seen[item.ID] = idx + 1
		out = append(out, PlacementSchema{
			ItemID:   item.ID,
			Index:    idx,
			X:        pose.X,
			Y:        pose.Y,
			Rotation: pose.Rotation,
		})
	}

	return SolutionSchema{
		Mode:       modeName,
		Width:      layout.ContainerWidth(),
		Height:     layout.ContainerHeight(),
		Feasible:   layout.IsFeasible(),
		Placements: out,
	}
}
