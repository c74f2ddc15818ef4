package ramp

import (
	"ramp-metrics/internal/model"
	"ramp-metrics/internal/timeseries"
)

// dispatch turns the hourly ramp table into the requested output shape.
// Three mutually exclusive branches:
//   - hourly, no synthesis: pass through;
//   - synthesis: collapse years into {m, min_m, max_m} per metric, then
//     resample to the target step with mean/min/max per column;
//   - no synthesis, coarser step: widen each metric with min/max copies,
//     resample, and emit avg_/min_/max_ triplets per metric.
func dispatch(hourly *model.Table, p Params) (*model.Table, error) {
	switch {
	case p.Synthesis:
		s := timeseries.Synthesize(hourly, "")
		if p.TimeStep == model.StepHourly {
			return s, nil
		}
		return timeseries.ChangeTimeStep(s, p.TimeStep, tripletAggs(len(baseMetrics)))

	case p.TimeStep == model.StepHourly:
		return hourly, nil

	default:
		return resampleRaw(hourly, p.TimeStep)
	}
}

// resampleRaw re-aggregates a non-synthesized hourly ramp table. Each metric
// is duplicated into a min and a max copy, the widened table is resampled
// with the matching statistic per column, and the result is reordered into
// {avg_m, min_m, max_m} triplets in base-metric order.
func resampleRaw(hourly *model.Table, step model.TimeStep) (*model.Table, error) {
	widened := hourly.Clone()
	aggs := make([]timeseries.Agg, 0, 3*len(baseMetrics))
	for range baseMetrics {
		aggs = append(aggs, timeseries.AggMean)
	}
	for _, prefix := range []string{timeseries.PrefixMin, timeseries.PrefixMax} {
		agg := timeseries.AggMin
		if prefix == timeseries.PrefixMax {
			agg = timeseries.AggMax
		}
		for _, m := range baseMetrics {
			j := hourly.ColumnIndex(m)
			widened.Columns = append(widened.Columns, prefix+m)
			for i, row := range widened.Values {
				widened.Values[i] = append(row, hourly.Values[i][j])
			}
			aggs = append(aggs, agg)
		}
	}

	resampled, err := timeseries.ChangeTimeStep(widened, step, aggs)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, 3*len(baseMetrics))
	for _, m := range baseMetrics {
		order = append(order, m, timeseries.PrefixMin+m, timeseries.PrefixMax+m)
	}
	out, err := resampled.Project(order...)
	if err != nil {
		return nil, err
	}
	for _, m := range baseMetrics {
		out.RenameColumn(m, timeseries.PrefixAvg+m)
	}
	return out, nil
}

// tripletAggs assigns mean/min/max positionally to n {m, min_m, max_m}
// column triplets.
func tripletAggs(n int) []timeseries.Agg {
	aggs := make([]timeseries.Agg, 0, 3*n)
	for i := 0; i < n; i++ {
		aggs = append(aggs, timeseries.AggMean, timeseries.AggMin, timeseries.AggMax)
	}
	return aggs
}
