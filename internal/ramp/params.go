package ramp

import (
	"fmt"

	"ramp-metrics/internal/model"
)

// Params controls one pipeline run.
type Params struct {
	// TimeStep is the output granularity. Empty defaults to hourly, the
	// identity granularity.
	TimeStep model.TimeStep

	// Synthesis collapses the Monte-Carlo year dimension into min/avg/max
	// statistics before resampling.
	Synthesis bool

	// IgnoreMustRun excludes must-run generation from the net-load
	// derivation. Only consulted when the netLoad column has to be derived.
	IgnoreMustRun bool

	// Clusters is the explicit configuration context for must-run
	// derivation. When nil, the input table's attached cluster metadata is
	// used instead.
	Clusters []model.Cluster
}

func (p Params) withDefaults() (Params, error) {
	if p.TimeStep == "" {
		p.TimeStep = model.StepHourly
	}
	if !p.TimeStep.Valid() {
		return p, fmt.Errorf("unknown time step %q", p.TimeStep)
	}
	return p, nil
}
