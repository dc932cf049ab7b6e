package sim

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/tracker"
)

func TestVehicleStepStraight(t *testing.T) {
	v := Vehicle{}
	v.Step(tracker.Command{Linear: 1.0}, 0.5)
	assert.InDelta(t, 0.5, v.Pose.X, 1e-9)
	assert.InDelta(t, 0, v.Pose.Y, 1e-9)
}

func TestVehicleStepTurn(t *testing.T) {
	v := Vehicle{}
	v.Step(tracker.Command{Linear: 1.0, Angular: stdmath.Pi}, 1.0)
	assert.InDelta(t, stdmath.Pi, v.Pose.Yaw, 1e-9)
}

func TestCrossTrack(t *testing.T) {
	points := Course(10, 0.5)
	assert.InDelta(t, 0.3, CrossTrack(m.NewPose(5, 0.3, 0), points), 1e-9)
	assert.InDelta(t, 0, CrossTrack(m.NewPose(5.25, 0, 0), points), 1e-9)
}

func TestCourse(t *testing.T) {
	points := Course(10, 0.5)
	require.Len(t, points, 21)
	assert.InDelta(t, 10, points[len(points)-1].X, 1e-9)
}

func TestRunStraightCourse(t *testing.T) {
	points := Course(20, 0.5)
	res := Run(points, Config{
		Limits:   tracker.DefaultLimits(),
		Start:    points[0],
		DT:       0.05,
		MaxSteps: 10000,
	})
	require.True(t, res.GoalReached, "steps=%d final=%+v", res.Steps, res.Final)
	assert.Less(t, res.MaxError, 0.1)
}

func TestRunConvergesFromOffset(t *testing.T) {
	points := Course(30, 0.5)
	start := points[0]
	start.Y = 0.5
	res := Run(points, Config{
		Limits:   tracker.DefaultLimits(),
		Start:    start,
		DT:       0.05,
		MaxSteps: 10000,
	})
	require.True(t, res.GoalReached, "steps=%d final=%+v", res.Steps, res.Final)

	// the tail of the run should hug the path despite the initial offset
	tail := res.CrossTrack[len(res.CrossTrack)-20:]
	for _, e := range tail {
		assert.Less(t, e, 0.1)
	}
}

func TestRunMoveDisabledGoesNowhere(t *testing.T) {
	points := Course(10, 0.5)
	lim := tracker.DefaultLimits()
	lim.Move = false
	res := Run(points, Config{
		Limits:   lim,
		Start:    points[0],
		DT:       0.05,
		MaxSteps: 100,
	})
	assert.False(t, res.GoalReached)
	assert.InDelta(t, 0, res.Final.X, 1e-9)
}
