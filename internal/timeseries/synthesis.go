package timeseries

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"ramp-metrics/internal/model"
)

// Synthesize collapses the Monte-Carlo year dimension of a table. For every
// value column c it emits three columns, interleaved per metric: the mean
// (named meanPrefix+c; meanPrefix is usually empty so the mean keeps the base
// name), the minimum (min_c) and the maximum (max_c) across years.
//
// A table without a year dimension synthesizes to min = mean = max = value.
// The output has no year dimension and is flagged as synthesized.
func Synthesize(t *model.Table, meanPrefix string) *model.Table {
	columns := make([]string, 0, 3*len(t.Columns))
	for _, c := range t.Columns {
		columns = append(columns, meanPrefix+c, PrefixMin+c, PrefixMax+c)
	}

	groups := map[model.Key][][]float64{}
	for i, key := range t.Keys {
		gk := model.Key{Entity: key.Entity, TimeID: key.TimeID}
		cols := groups[gk]
		if cols == nil {
			cols = make([][]float64, len(t.Columns))
			groups[gk] = cols
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
		TimeStep:  t.TimeStep,
		Synthesis: true,
		HasYear:   false,
		Columns:   columns,
		Clusters:  append([]model.Cluster(nil), t.Clusters...),
	}
	for _, k := range keys {
		cols := groups[k]
		row := make([]float64, 0, len(columns))
		for _, vals := range cols {
			row = append(row, stat.Mean(vals, nil), floats.Min(vals), floats.Max(vals))
		}
		out.Keys = append(out.Keys, k)
		out.Values = append(out.Values, row)
	}
	return out
}
