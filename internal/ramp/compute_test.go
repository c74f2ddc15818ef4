package ramp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramp-metrics/internal/model"
)

func singleAreaTable() *model.Table {
	t := model.New(model.KindAreas, false, model.ColBalance, model.ColNetLoad)
	balance := []float64{10, 15, 5}
	netLoad := []float64{100, 90, 95}
	for i := range balance {
		_ = t.Append(model.Key{Entity: "north", TimeID: i + 1}, balance[i], netLoad[i])
	}
	return t
}

func TestHourlyRampsExample(t *testing.T) {
	out, err := Compute(singleAreaTable(), Params{})
	require.NoError(t, err)

	require.Equal(t, []string{"netLoadRamp", "balanceRamp", "areaRamp"}, out.Columns)
	require.Equal(t, 3, out.Len())

	assert.Equal(t, []float64{0, 0, 0}, out.Values[0])
	assert.Equal(t, []float64{-10, 5, -5}, out.Values[1])
	assert.Equal(t, []float64{5, -10, -5}, out.Values[2])
}

func TestAreaRampIsSumOfComponents(t *testing.T) {
	tbl := model.New(model.KindAreas, true, model.ColBalance, model.ColNetLoad)
	vals := []struct {
		entity  string
		year    int
		timeID  int
		balance float64
		netLoad float64
	}{
		{"a", 1, 1, 4, 120}, {"a", 1, 2, -3, 80}, {"a", 1, 3, 7, 95},
		{"a", 2, 1, 1, 101}, {"a", 2, 2, 9, 130},
		{"b", 1, 1, -6, 55}, {"b", 1, 2, 2, 60},
	}
	for _, v := range vals {
		require.NoError(t, tbl.Append(model.Key{Entity: v.entity, Year: v.year, TimeID: v.timeID}, v.balance, v.netLoad))
	}

	out, err := Compute(tbl, Params{})
	require.NoError(t, err)
	for i := range out.Values {
		assert.Equal(t, out.Values[i][0]+out.Values[i][1], out.Values[i][2], "row %d", i)
	}
}

func TestSeriesBoundariesResetToZero(t *testing.T) {
	// Entity "b" starts later than "a"; its first row must still be zero.
	tbl := model.New(model.KindAreas, false, model.ColBalance, model.ColNetLoad)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 10, 500)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 2}, 20, 510)
	_ = tbl.Append(model.Key{Entity: "b", TimeID: 5}, -300, 999)
	_ = tbl.Append(model.Key{Entity: "b", TimeID: 6}, -290, 980)

	out, err := Compute(tbl, Params{})
	require.NoError(t, err)

	for i, key := range out.Keys {
		if key.Entity == "a" && key.TimeID == 1 || key.Entity == "b" && key.TimeID == 5 {
			assert.Equal(t, []float64{0, 0, 0}, out.Values[i], "series start %s/%d", key.Entity, key.TimeID)
		}
	}
	// Interior rows keep their differences.
	idx := rowIndex(t, out, model.Key{Entity: "b", TimeID: 6})
	assert.Equal(t, []float64{-19, 10, -9}, out.Values[idx])
}

func TestMissingBalanceColumn(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColNetLoad)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 100)

	out, err := Compute(tbl, Params{})
	require.ErrorIs(t, err, model.ErrMissingColumn)
	require.Contains(t, err.Error(), "BALANCE")
	require.Nil(t, out)
}

func TestEmptyTableKeepsSchema(t *testing.T) {
	tbl := model.New(model.KindDistricts, false, model.ColBalance, model.ColNetLoad)

	out, err := Compute(tbl, Params{})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
	assert.Equal(t, []string{"netLoadRamp", "balanceRamp", "areaRamp"}, out.Columns)
	assert.Equal(t, model.KindDistricts, out.Kind)
}

func TestNetLoadDerivedWhenAbsent(t *testing.T) {
	tbl := model.New(model.KindAreas, false, model.ColBalance, model.ColLoad, model.ColWind)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 10, 1000, 100)
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 2}, 15, 1100, 150)

	out, err := Compute(tbl, Params{})
	require.NoError(t, err)

	// netLoad = LOAD - WIND: 900 then 950, so the second-hour ramp is 50.
	idx := rowIndex(t, out, model.Key{Entity: "a", TimeID: 2})
	assert.Equal(t, 50.0, out.Values[idx][0])

	// The caller's table is untouched.
	assert.False(t, tbl.HasColumn(model.ColNetLoad))
	assert.Equal(t, []string{model.ColBalance, model.ColLoad, model.ColWind}, tbl.Columns)
}

func TestHourlyPathIsIdempotentInShape(t *testing.T) {
	first, err := Compute(singleAreaTable(), Params{})
	require.NoError(t, err)
	second, err := Compute(singleAreaTable(), Params{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func rowIndex(t *testing.T, tbl *model.Table, key model.Key) int {
	t.Helper()
	for i, k := range tbl.Keys {
		if k == key {
			return i
		}
	}
	t.Fatalf("no row for %+v", key)
	return -1
}
