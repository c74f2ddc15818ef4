package model

import "fmt"

// TimeStep is the aggregation granularity of a table.
// Hourly is the identity granularity of the simulation output.
type TimeStep string

const (
	StepHourly  TimeStep = "hourly"
	StepDaily   TimeStep = "daily"
	StepWeekly  TimeStep = "weekly"
	StepMonthly TimeStep = "monthly"
	StepAnnual  TimeStep = "annual"
)

// TimeSteps lists the supported granularities, finest first.
func TimeSteps() []TimeStep {
	return []TimeStep{StepHourly, StepDaily, StepWeekly, StepMonthly, StepAnnual}
}

// Valid reports whether s is a supported granularity.
func (s TimeStep) Valid() bool {
	switch s {
	case StepHourly, StepDaily, StepWeekly, StepMonthly, StepAnnual:
		return true
	}
	return false
}

// ParseTimeStep parses a time step name. Empty defaults to hourly.
func ParseTimeStep(s string) (TimeStep, error) {
	if s == "" {
		return StepHourly, nil
	}
	step := TimeStep(s)
	if !step.Valid() {
		return "", fmt.Errorf("unknown time step %q", s)
	}
	return step, nil
}
