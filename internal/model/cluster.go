package model

// Cluster describes one thermal generation cluster of an area.
// Must-run clusters contribute generation that is subtracted from the load
// when deriving the net-load column, unless the caller opts out.
type Cluster struct {
	Entity  string `json:"entity"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	MustRun bool   `json:"must_run"`

	// CapacityMW is the nominal capacity of one unit, UnitCount the number
	// of installed units (0 is treated as 1).
	CapacityMW float64 `json:"capacity_mw"`
	UnitCount  int     `json:"unit_count,omitempty"`
}

// MustRunMW returns the must-run generation this cluster contributes, in MW.
func (c Cluster) MustRunMW() float64 {
	if !c.Enabled || !c.MustRun {
		return 0
	}
	units := c.UnitCount
	if units <= 0 {
		units = 1
	}
	return c.CapacityMW * float64(units)
}
