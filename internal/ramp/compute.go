// Package ramp computes hour-over-hour ramps of net load and energy balance
// for the areas and districts of a simulation dataset, and re-aggregates them
// to coarser time steps.
package ramp

import (
	"fmt"

	"ramp-metrics/internal/model"
	"ramp-metrics/internal/netload"
)

// baseMetrics is the fixed output order of the three ramp columns.
var baseMetrics = []string{model.ColNetLoadRamp, model.ColBalanceRamp, model.ColAreaRamp}

// computeHourly produces the hourly ramp table: identifier keys plus
// netLoadRamp, balanceRamp and areaRamp.
//
// Ramps are lag-1 differences in (entity, year, time) sort order. The first
// row of each (entity, year) series is reset to zero, so differences never
// leak across series boundaries even when entities start at different time
// indexes.
func computeHourly(t *model.Table, p Params) (*model.Table, error) {
	if !t.HasColumn(model.ColBalance) {
		return nil, fmt.Errorf("%w: %s", model.ErrMissingColumn, model.ColBalance)
	}

	src := t
	if !src.HasColumn(model.ColNetLoad) {
		derived, err := netload.WithNetLoad(src, p.IgnoreMustRun, p.Clusters)
		if err != nil {
			return nil, err
		}
		src = derived
	}

	proj, err := src.Project(model.ColNetLoad, model.ColBalance)
	if err != nil {
		return nil, err
	}
	proj.Sort()

	out := model.New(t.Kind, t.HasYear, baseMetrics...)
	for i, key := range proj.Keys {
		var netLoadRamp, balanceRamp float64
		if i > 0 && sameSeries(proj.Keys[i-1], key) {
			netLoadRamp = proj.Values[i][0] - proj.Values[i-1][0]
			balanceRamp = proj.Values[i][1] - proj.Values[i-1][1]
		}
		if err := out.Append(key, netLoadRamp, balanceRamp, netLoadRamp+balanceRamp); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// sameSeries reports whether two adjacent sorted keys belong to the same
// (entity, year) series.
func sameSeries(a, b model.Key) bool {
	return a.Entity == b.Entity && a.Year == b.Year
}
