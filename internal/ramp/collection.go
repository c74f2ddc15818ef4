package ramp

import (
	"fmt"

	"ramp-metrics/internal/model"
)

// Compute runs the full pipeline on a single tagged table and returns the
// ramp result at the requested granularity. The input is never mutated.
func Compute(t *model.Table, p Params) (*model.Table, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, err
	}
	if !t.Kind.Valid() {
		return nil, fmt.Errorf("%w: kind %q", ErrUnknownKind, t.Kind)
	}

	hourly, err := computeHourly(t, p)
	if err != nil {
		return nil, err
	}
	out, err := dispatch(hourly, p)
	if err != nil {
		return nil, err
	}

	out.Kind = t.Kind
	out.TimeStep = p.TimeStep
	out.Synthesis = p.Synthesis
	return out, nil
}

// ComputeCollection fans Compute out over the present sub-tables of a
// collection and merges the results into a matching collection. A failure on
// either sub-table fails the whole call; there are no partial results.
func ComputeCollection(c *model.Collection, p Params) (*model.Collection, error) {
	p, err := p.withDefaults()
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, ErrEmptyCollection
	}

	out := &model.Collection{TimeStep: p.TimeStep, Synthesis: p.Synthesis}
	if c.Areas != nil {
		res, err := computeTagged(c.Areas, model.KindAreas, p)
		if err != nil {
			return nil, fmt.Errorf("areas: %w", err)
		}
		out.Areas = res
	}
	if c.Districts != nil {
		res, err := computeTagged(c.Districts, model.KindDistricts, p)
		if err != nil {
			return nil, fmt.Errorf("districts: %w", err)
		}
		out.Districts = res
	}
	return out, nil
}

// computeTagged runs Compute on a sub-table under the kind its collection
// slot implies, without touching the caller's table.
func computeTagged(t *model.Table, kind model.Kind, p Params) (*model.Table, error) {
	tagged := *t
	tagged.Kind = kind
	return Compute(&tagged, p)
}
