package netload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramp-metrics/internal/model"
)

func TestNetLoadFormula(t *testing.T) {
	tbl := model.New(model.KindAreas, false,
		model.ColLoad, model.ColWind, model.ColSolar, model.ColHydroRoR)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 1000, 120, 80, 50)

	out, err := WithNetLoad(tbl, true, nil)
	require.NoError(t, err)

	vals, err := out.Column(model.ColNetLoad)
	require.NoError(t, err)
	assert.Equal(t, []float64{750}, vals) // 1000 - 120 - 80 - 50
}

func TestNetLoadMissingLoad(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColWind)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 120)

	_, err := WithNetLoad(tbl, false, nil)
	require.ErrorIs(t, err, model.ErrMissingColumn)
	assert.Contains(t, err.Error(), "LOAD")
}

func TestNetLoadMustRunFromColumn(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColLoad, model.ColMustRun)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 1000, 200)

	out, err := WithNetLoad(tbl, false, nil)
	require.NoError(t, err)
	vals, _ := out.Column(model.ColNetLoad)
	assert.Equal(t, []float64{800}, vals)

	// ignoreMustRun leaves the must-run generation in place.
	out, err = WithNetLoad(tbl, true, nil)
	require.NoError(t, err)
	vals, _ = out.Column(model.ColNetLoad)
	assert.Equal(t, []float64{1000}, vals)
}

func TestNetLoadMustRunFromClusters(t *testing.T) {
	clusters := []model.Cluster{
		{Entity: "a", Name: "nuclear", Enabled: true, MustRun: true, CapacityMW: 90, UnitCount: 2},
		{Entity: "a", Name: "gas", Enabled: true, MustRun: false, CapacityMW: 400},
		{Entity: "a", Name: "old coal", Enabled: false, MustRun: true, CapacityMW: 300},
		{Entity: "b", Name: "chp", Enabled: true, MustRun: true, CapacityMW: 10},
	}

	tbl := model.New(model.KindAreas, false, model.ColLoad)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 1000)
	_ = tbl.Append(model.Key{Entity: "b", TimeID: 1}, 500)

	out, err := WithNetLoad(tbl, false, clusters)
	require.NoError(t, err)
	vals, _ := out.Column(model.ColNetLoad)
	assert.Equal(t, []float64{820, 490}, vals) // a: 1000-90*2, b: 500-10
}

func TestNetLoadClustersFromTableMetadata(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColLoad)
	tbl.Clusters = []model.Cluster{
		{Entity: "a", Name: "chp", Enabled: true, MustRun: true, CapacityMW: 25},
	}
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 100)

	out, err := WithNetLoad(tbl, false, nil)
	require.NoError(t, err)
	vals, _ := out.Column(model.ColNetLoad)
	assert.Equal(t, []float64{75}, vals)
}

func TestNetLoadAlreadyPresent(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColNetLoad)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 42)

	out, err := WithNetLoad(tbl, false, nil)
	require.NoError(t, err)
	assert.Equal(t, tbl.Columns, out.Columns)
	assert.Equal(t, tbl.Values, out.Values)
	assert.NotSame(t, tbl, out)
}

func TestNetLoadDoesNotMutateInput(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColLoad)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 100)

	_, err := WithNetLoad(tbl, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{model.ColLoad}, tbl.Columns)
	assert.Equal(t, []float64{100}, tbl.Values[0])
}
