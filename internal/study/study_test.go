package study

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ramp-metrics/internal/model"
)

func TestStudyJSONRoundTrip(t *testing.T) {
	areas := model.New(model.KindAreas, true, model.ColBalance, model.ColNetLoad)
	_ = areas.Append(model.Key{Entity: "north", Year: 1, TimeID: 1}, 10, 100)
	_ = areas.Append(model.Key{Entity: "north", Year: 1, TimeID: 2}, 15, 90)
	in := &model.Collection{Areas: areas, TimeStep: model.StepHourly}

	path := filepath.Join(t.TempDir(), "study.json")
	require.NoError(t, SaveStudyJSON(in, path))

	out, err := LoadStudyJSON(path)
	require.NoError(t, err)
	require.NotNil(t, out.Areas)
	assert.Nil(t, out.Districts)
	assert.Equal(t, in.Areas.Columns, out.Areas.Columns)
	assert.Equal(t, in.Areas.Keys, out.Areas.Keys)
	assert.Equal(t, in.Areas.Values, out.Areas.Values)
}

func TestLoadStudyJSONDefaultsTimeStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "study.json")
	body := `{"areas": {"kind": "areas", "columns": ["BALANCE"], "keys": [{"entity":"a","timeId":1}], "values": [[5]]}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	out, err := LoadStudyJSON(path)
	require.NoError(t, err)
	assert.Equal(t, model.StepHourly, out.Areas.TimeStep)
}

func TestWriteTableCSV(t *testing.T) {
	tbl := model.New(model.KindAreas, true, "netLoadRamp", "balanceRamp")
	_ = tbl.Append(model.Key{Entity: "north", Year: 2, TimeID: 7}, -10, 5)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTableCSV(path, tbl))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "entity,year,timeId,netLoadRamp,balanceRamp", lines[0])
	assert.Equal(t, "north,2,7,-10.000000,5.000000", lines[1])
}

func TestWriteTableCSVWithoutYear(t *testing.T) {
	tbl := model.New(model.KindAreas, false, "v")
	_ = tbl.Append(model.Key{Entity: "a", TimeID: 1}, 1)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, WriteTableCSV(path, tbl))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "entity,timeId,v\n"))
}

func TestClustersRoundTrip(t *testing.T) {
	list := &ClusterList{
		StudyID: "demo",
		Clusters: []model.Cluster{
			{Entity: "a", Name: "nuclear", Enabled: true, MustRun: true, CapacityMW: 900, UnitCount: 2},
		},
	}
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, SaveClusters(list, path))

	out, err := LoadClusters(path)
	require.NoError(t, err)
	assert.Equal(t, list.Clusters, out.Clusters)
	assert.Equal(t, "demo", out.StudyID)
}
