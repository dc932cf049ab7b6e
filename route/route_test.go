package route

import (
	stdmath "math"
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pfeifer.dev/trackd/math"
)

func testWay() *Way {
	// roughly 111m east then 111m north at the equator
	return &Way{Way: &osm.Way{
		ID: 42,
		Tags: osm.Tags{
			{Key: "name", Value: "Test Street"},
		},
		Nodes: osm.WayNodes{
			{Lat: 0, Lon: 0},
			{Lat: 0, Lon: 0.001},
			{Lat: 0.001, Lon: 0.001},
		},
	}}
}

func TestWayName(t *testing.T) {
	w := testWay()
	assert.Equal(t, "Test Street", w.Name())

	ref := &Way{Way: &osm.Way{Tags: osm.Tags{{Key: "ref", Value: "A1"}}}}
	assert.Equal(t, "A1", ref.Name())
}

func TestLocalFrameAnchorsAtFirstPoint(t *testing.T) {
	w := testWay()
	local := localFrame(w.Points())
	require.Len(t, local, 3)
	assert.InDelta(t, 0, local[0].X, 1e-9)
	assert.InDelta(t, 0, local[0].Y, 1e-9)

	// a thousandth of a degree is ~111m at the equator
	assert.InDelta(t, 111.3, local[1].X, 1.0)
	assert.InDelta(t, 0, local[1].Y, 1e-6)
	assert.InDelta(t, 111.3, local[2].Y, 1.0)
}

func TestWayLength(t *testing.T) {
	w := testWay()
	assert.InDelta(t, 222.6, w.Length(), 2.0)
}

func TestResample(t *testing.T) {
	points := []m.Vector{{X: 0, Y: 0}, {X: 10, Y: 0}}
	out := resample(points, 1.0)
	require.Len(t, out, 11)
	assert.InDelta(t, 1.0, out[1].X, 1e-9)
	assert.InDelta(t, 10.0, out[len(out)-1].X, 1e-9)
}

func TestResampleKeepsFinalVertex(t *testing.T) {
	points := []m.Vector{{X: 0, Y: 0}, {X: 2.5, Y: 0}}
	out := resample(points, 1.0)
	assert.InDelta(t, 2.5, out[len(out)-1].X, 1e-9)
}

func TestBuildPlanHeadings(t *testing.T) {
	plan, err := buildPlan(testWay(), ExtractSettings{})
	require.NoError(t, err)
	require.Len(t, plan.Points, 3)

	// east then north
	assert.InDelta(t, 0, plan.Points[0].Yaw, 1e-6)
	assert.InDelta(t, stdmath.Pi/2, plan.Points[1].Yaw, 1e-6)
	// the final point inherits the previous heading
	assert.InDelta(t, stdmath.Pi/2, plan.Points[2].Yaw, 1e-6)
}

func TestPlanFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	plan := PlanFile{
		Source: "test",
		Points: []PlanPose{{X: 1, Y: 2, Yaw: 0.5}, {X: 3, Y: 4, Yaw: 0.6}},
	}
	require.NoError(t, plan.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	poses := got.Poses()
	require.Len(t, poses, 2)
	assert.Equal(t, m.NewPose(1, 2, 0.5), poses[0])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
