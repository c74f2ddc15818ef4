package model

import (
	"fmt"
	"sort"
)

// Column names used by the simulation dataset and the ramp pipeline.
// These match the column naming of the study export format, so they are
// deliberately not Go-styled.
const (
	ColBalance = "BALANCE"
	ColNetLoad = "netLoad"

	ColLoad     = "LOAD"
	ColRowBal   = "ROW_BAL"
	ColPSP      = "PSP"
	ColMiscNDG  = "MISC_NDG"
	ColWind     = "WIND"
	ColSolar    = "SOLAR"
	ColHydroRoR = "H_ROR"
	ColMustRun  = "mustRunTotal"

	ColNetLoadRamp = "netLoadRamp"
	ColBalanceRamp = "balanceRamp"
	ColAreaRamp    = "areaRamp"
)

// Key identifies one observation in a Table.
// Entity is the area or district name, Year the Monte-Carlo year (only
// meaningful when the table has a year dimension), TimeID the 1-based hourly
// index within the simulation horizon.
type Key struct {
	Entity string `json:"entity"`
	Year   int    `json:"year,omitempty"`
	TimeID int    `json:"timeId"`
}

// Less orders keys by entity, then year, then time. This is the canonical
// row order of the pipeline: rows grouped by entity and ordered by time.
func (k Key) Less(o Key) bool {
	if k.Entity != o.Entity {
		return k.Entity < o.Entity
	}
	if k.Year != o.Year {
		return k.Year < o.Year
	}
	return k.TimeID < o.TimeID
}

// Table is an in-memory numeric table over composite keys.
// Values[i][j] is the value of Columns[j] at Keys[i]; every row has exactly
// len(Columns) values. Column order is significant: the pipeline's output
// contracts are stated in terms of it.
type Table struct {
	Kind      Kind     `json:"kind"`
	TimeStep  TimeStep `json:"timeStep"`
	Synthesis bool     `json:"synthesis"`
	HasYear   bool     `json:"hasYear"`

	Columns []string    `json:"columns"`
	Keys    []Key       `json:"keys"`
	Values  [][]float64 `json:"values"`

	// Clusters is optional attached metadata (thermal cluster descriptions)
	// used when the net-load column has to be derived.
	Clusters []Cluster `json:"clusters,omitempty"`
}

// New creates an empty hourly table with the given kind and column schema.
func New(kind Kind, hasYear bool, columns ...string) *Table {
	return &Table{
		Kind:     kind,
		TimeStep: StepHourly,
		HasYear:  hasYear,
		Columns:  append([]string(nil), columns...),
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Keys) }

// Append adds one row. The number of values must match the column schema.
func (t *Table) Append(key Key, values ...float64) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row for %s/%d/%d has %d values, table has %d columns",
			key.Entity, key.Year, key.TimeID, len(values), len(t.Columns))
	}
	t.Keys = append(t.Keys, key)
	t.Values = append(t.Values, append([]float64(nil), values...))
	return nil
}

// ColumnIndex returns the position of a named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether a named column exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Column returns the values of a named column in row order.
func (t *Table) Column(name string) ([]float64, error) {
	j := t.ColumnIndex(name)
	if j < 0 {
		return nil, fmt.Errorf("no column %q", name)
	}
	out := make([]float64, len(t.Values))
	for i, row := range t.Values {
		out[i] = row[j]
	}
	return out, nil
}

// Clone deep-copies the table, including attributes and attached metadata.
func (t *Table) Clone() *Table {
	out := &Table{
		Kind:      t.Kind,
		TimeStep:  t.TimeStep,
		Synthesis: t.Synthesis,
		HasYear:   t.HasYear,
		Columns:   append([]string(nil), t.Columns...),
		Keys:      append([]Key(nil), t.Keys...),
		Values:    make([][]float64, len(t.Values)),
		Clusters:  append([]Cluster(nil), t.Clusters...),
	}
	for i, row := range t.Values {
		out.Values[i] = append([]float64(nil), row...)
	}
	return out
}

// Sort orders rows by (entity, year, time) in place.
func (t *Table) Sort() {
	order := make([]int, len(t.Keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return t.Keys[order[a]].Less(t.Keys[order[b]])
	})
	keys := make([]Key, len(t.Keys))
	values := make([][]float64, len(t.Values))
	for i, idx := range order {
		keys[i] = t.Keys[idx]
		values[i] = t.Values[idx]
	}
	t.Keys = keys
	t.Values = values
}

// Project returns a copy of the table restricted to the named value columns,
// in the given order. Identifier keys are always carried along.
func (t *Table) Project(columns ...string) (*Table, error) {
	idx := make([]int, len(columns))
	for i, name := range columns {
		j := t.ColumnIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("no column %q", name)
		}
		idx[i] = j
	}
	out := t.Clone()
	out.Columns = append([]string(nil), columns...)
	for i, row := range t.Values {
		projected := make([]float64, len(idx))
		for k, j := range idx {
			projected[k] = row[j]
		}
		out.Values[i] = projected
	}
	return out, nil
}

// RenameColumn changes a column name in place. Unknown names are ignored.
func (t *Table) RenameColumn(from, to string) {
	if j := t.ColumnIndex(from); j >= 0 {
		t.Columns[j] = to
	}
}

// MinTimeID returns the smallest time index in the table, or 0 when empty.
func (t *Table) MinTimeID() int {
	if len(t.Keys) == 0 {
		return 0
	}
	min := t.Keys[0].TimeID
	for _, k := range t.Keys[1:] {
		if k.TimeID < min {
			min = k.TimeID
		}
	}
	return min
}
