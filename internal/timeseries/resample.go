// Package timeseries provides the generic re-aggregation engines used by the
// ramp pipeline: changing the time resolution of a table and synthesizing
// across the Monte-Carlo year dimension.
package timeseries

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ramp-metrics/internal/model"
)

// Column-name prefixes for derived statistics.
const (
	PrefixMin = "min_"
	PrefixMax = "max_"
	PrefixAvg = "avg_"
)

// Agg selects the statistic applied to one column when resampling.
type Agg string

const (
	AggMean Agg = "mean"
	AggMin  Agg = "min"
	AggMax  Agg = "max"
	AggSum  Agg = "sum"
)

func (a Agg) apply(vals []float64) (float64, error) {
	if len(vals) == 0 {
		return 0, fmt.Errorf("aggregate %q over empty group", a)
	}
	switch a {
	case AggMean:
		return stat.Mean(vals, nil), nil
	case AggMin:
		return floats.Min(vals), nil
	case AggMax:
		return floats.Max(vals), nil
	case AggSum:
		return floats.Sum(vals), nil
	}
	return 0, fmt.Errorf("unknown aggregator %q", a)
}

// HoursPerYear is the length of the simulation horizon for one year.
const HoursPerYear = 8760

// hoursPerMonth is the month lengths of a non-leap year, in hours.
var hoursPerMonth = [12]int{744, 672, 744, 720, 744, 720, 744, 744, 720, 744, 720, 744}

// bucketOf maps an hourly 1-based time index to its 1-based bucket index at
// the target granularity. Indexes past one year continue into the next
// year's buckets.
func bucketOf(timeID int, step model.TimeStep) int {
	h := timeID - 1
	switch step {
	case model.StepHourly:
		return timeID
	case model.StepDaily:
		return h/24 + 1
	case model.StepWeekly:
		return h/168 + 1
	case model.StepMonthly:
		year := h / HoursPerYear
		rem := h % HoursPerYear
		month := 0
		for rem >= hoursPerMonth[month] {
			rem -= hoursPerMonth[month]
			month++
		}
		return year*12 + month + 1
	case model.StepAnnual:
		return h/HoursPerYear + 1
	}
	return timeID
}

// ChangeTimeStep re-aggregates an hourly table to a coarser granularity,
// applying one aggregator per value column, positionally. The output holds
// one row per (entity, year, bucket), with the 1-based bucket index as its
// time index, and is tagged with the new step.
func ChangeTimeStep(t *model.Table, step model.TimeStep, aggs []Agg) (*model.Table, error) {
	if !step.Valid() {
		return nil, fmt.Errorf("unknown time step %q", step)
	}
	if len(aggs) != len(t.Columns) {
		return nil, fmt.Errorf("got %d aggregators for %d columns", len(aggs), len(t.Columns))
	}
	if step == t.TimeStep {
		return t.Clone(), nil
	}
	if t.TimeStep != model.StepHourly {
		return nil, fmt.Errorf("cannot resample a %s table to %s: input must be hourly", t.TimeStep, step)
	}

	// Gather per-bucket value lists, one slice per column.
	groups := map[model.Key][][]float64{}
	for i, key := range t.Keys {
		bk := model.Key{Entity: key.Entity, Year: key.Year, TimeID: bucketOf(key.TimeID, step)}
		cols := groups[bk]
		if cols == nil {
			cols = make([][]float64, len(t.Columns))
			groups[bk] = cols
		}
		for j, v := range t.Values[i] {
			cols[j] = append(cols[j], v)
		}
	}

	keys := make([]model.Key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].Less(keys[b]) })

	out := &model.Table{
		Kind:      t.Kind,
		TimeStep:  step,
		Synthesis: t.Synthesis,
		HasYear:   t.HasYear,
		Columns:   append([]string(nil), t.Columns...),
		Clusters:  append([]model.Cluster(nil), t.Clusters...),
	}
	for _, k := range keys {
		cols := groups[k]
		row := make([]float64, len(aggs))
		for j, agg := range aggs {
			v, err := agg.apply(cols[j])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", t.Columns[j], err)
			}
			row[j] = v
		}
		out.Keys = append(out.Keys, k)
		out.Values = append(out.Values, row)
	}
	return out, nil
}
