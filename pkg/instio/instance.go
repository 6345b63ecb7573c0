package instio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dshills/stripnest/pkg/geom"
	"github.com/dshills/stripnest/pkg/model"
	"github.com/dshills/stripnest/pkg/solvererr"
)

// ReadInstance loads and decodes a packing instance from a JSON file.
func ReadInstance(path string) (model.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Instance{}, fmt.Errorf("instio: reading instance file: %w", err)
	}
	return DecodeInstance(data)
}

// DecodeInstance parses and validates a packing instance from JSON bytes.
func DecodeInstance(data []byte) (model.Instance, error) {
	var schema InstanceSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return model.Instance{}, fmt.Errorf("%w: parsing JSON: %v", solvererr.ErrInstance, err)
	}

	inst, err := fromSchema(schema)
	if err != nil {
		return model.Instance{}, fmt.Errorf("%w: %v", solvererr.ErrInstance, err)
	}
	if err := inst.Validate(); err != nil {
		return model.Instance{}, fmt.Errorf("%w: %v", solvererr.ErrInstance, err)
	}
	return inst, nil
}

func fromSchema(schema InstanceSchema) (model.Instance, error) {
	mode, err := parseMode(schema.Mode)
	if err != nil {
		return model.Instance{}, err
	}

	demands := make([]model.Demand, 0, len(schema.Demands))
	for i, d := range schema.Demands {
		item, err := itemFromSchema(d.Item)
		if err != nil {
			return model.Instance{}, fmt.Errorf("demand[%d]: %w", i, err)
		}
		demands = append(demands, model.Demand{Item: item, Qty: d.Qty})
	}

	return model.Instance{
		Demands:     demands,
		Mode:        mode,
		StripHeight: schema.StripHeight,
		StartSide:   schema.StartSide,
		Tuning: model.CDETuning{
			PolySimplTolerance:         schema.Tuning.PolySimplTolerance,
			MinItemSeparation:          schema.Tuning.MinItemSeparation,
			NarrowConcavityCutoffRatio: schema.Tuning.NarrowConcavityCutoffRatio,
		},
		RNGSeed: schema.RNGSeed,
	}, nil
}

func itemFromSchema(s ItemSchema) (model.Item, error) {
	ring := make([]geom.Point, len(s.Ring))
	for i, p := range s.Ring {
		ring[i] = geom.Point{X: p.X, Y: p.Y}
	}

	rotation, err := rotationFromSchema(s.Rotation)
	if err != nil {
		return model.Item{}, fmt.Errorf("item %q: %w", s.ID, err)
	}

	id := s.ID
	if id == "" {
		id = model.NewAnonymousID()
	}

	return model.NewItem(id, ring, rotation, s.MinSeparation)
}

func rotationFromSchema(s RotationSchema) (model.RotationSpec, error) {
	switch s.Kind {
	case "", "none":
		return model.RotationNoneSpec(), nil
	case "continuous":
		return model.RotationContinuousSpec(), nil
	case "discrete":
		if len(s.Angles) == 0 {
			return model.RotationSpec{}, fmt.Errorf("discrete rotation requires at least one angle")
		}
		return model.RotationDiscreteSpec(s.Angles), nil
	default:
		return model.RotationSpec{}, fmt.Errorf("unknown rotation kind %q", s.Kind)
	}
}

func parseMode(s string) (model.Mode, error) {
	switch s {
	case "strip":
		return model.ModeStrip, nil
	case "square":
		return model.ModeSquare, nil
	default:
		return 0, fmt.Errorf("unknown mode %q, want \"strip\" or \"square\"", s)
	}
}
