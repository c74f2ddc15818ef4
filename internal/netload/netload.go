// Package netload derives the net-load column of a simulation table from its
// generation and consumption components.
package netload

import (
	"fmt"

	"ramp-metrics/internal/model"
)

// subtracted lists the generation components removed from the load. Columns
// absent from the input are treated as zero.
var subtracted = []string{
	model.ColRowBal,
	model.ColPSP,
	model.ColMiscNDG,
	model.ColWind,
	model.ColSolar,
	model.ColHydroRoR,
}

// WithNetLoad returns a copy of t with a netLoad column appended:
//
//	netLoad = LOAD - ROW_BAL - PSP - MISC_NDG - WIND - SOLAR - H_ROR - mustRun
//
// The must-run term is skipped when ignoreMustRun is set. It is read from the
// mustRunTotal column when present, otherwise computed from the entity's
// must-run clusters in the given descriptions (falling back to the table's
// attached metadata when clusters is nil).
//
// The input is never mutated. LOAD is required; a table that already has a
// netLoad column is returned unchanged (as a copy).
func WithNetLoad(t *model.Table, ignoreMustRun bool, clusters []model.Cluster) (*model.Table, error) {
	if t.HasColumn(model.ColNetLoad) {
		return t.Clone(), nil
	}
	loadIdx := t.ColumnIndex(model.ColLoad)
	if loadIdx < 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrMissingColumn, model.ColLoad)
	}

	subIdx := make([]int, 0, len(subtracted))
	for _, name := range subtracted {
		if j := t.ColumnIndex(name); j >= 0 {
			subIdx = append(subIdx, j)
		}
	}

	mustRunIdx := t.ColumnIndex(model.ColMustRun)
	var mustRunByEntity map[string]float64
	if !ignoreMustRun && mustRunIdx < 0 {
		if clusters == nil {
			clusters = t.Clusters
		}
		mustRunByEntity = mustRunTotals(clusters)
	}

	out := t.Clone()
	out.Columns = append(out.Columns, model.ColNetLoad)
	for i, row := range out.Values {
		v := row[loadIdx]
		for _, j := range subIdx {
			v -= row[j]
		}
		if !ignoreMustRun {
			if mustRunIdx >= 0 {
				v -= row[mustRunIdx]
			} else {
				v -= mustRunByEntity[out.Keys[i].Entity]
			}
		}
		out.Values[i] = append(row, v)
	}
	return out, nil
}

// mustRunTotals sums the must-run capacity of enabled clusters per entity.
func mustRunTotals(clusters []model.Cluster) map[string]float64 {
	totals := make(map[string]float64, len(clusters))
	for _, c := range clusters {
		if mw := c.MustRunMW(); mw != 0 {
			totals[c.Entity] += mw
		}
	}
	return totals
}
