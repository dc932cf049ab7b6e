package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(2*m.Pi), 1e-12)
	assert.InDelta(t, m.Pi, NormalizeAngle(m.Pi), 1e-12)
	assert.InDelta(t, m.Pi, NormalizeAngle(-m.Pi), 1e-12)
	assert.InDelta(t, -m.Pi/2, NormalizeAngle(3*m.Pi/2), 1e-12)
}

func TestAngleDiff(t *testing.T) {
	// shortest rotation across the wrap
	assert.InDelta(t, 0.2, AngleDiff(m.Pi-0.1, -m.Pi+0.1), 1e-12)
	assert.InDelta(t, -0.2, AngleDiff(-m.Pi+0.1, m.Pi-0.1), 1e-12)
	assert.InDelta(t, 0.5, AngleDiff(1.0, 0.5), 1e-12)
}

func TestPoseDistanceAndYawTo(t *testing.T) {
	a := NewPose(0, 0, 0)
	b := NewPose(3, 4, 0)
	assert.InDelta(t, 5, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, m.Atan2(4, 3), a.YawTo(b), 1e-12)
}

func TestHeadingVector(t *testing.T) {
	p := NewPose(0, 0, m.Pi/2)
	h := p.HeadingVector()
	assert.InDelta(t, 0, h.X, 1e-12)
	assert.InDelta(t, 1, h.Y, 1e-12)
}

func TestNearestPosition(t *testing.T) {
	line := Line{Start: Vector{X: 0, Y: 0}, End: Vector{X: 10, Y: 0}}

	mid := line.NearestPosition(Vector{X: 5, Y: 3})
	assert.InDelta(t, 5, mid.Pos.X, 1e-12)
	assert.InDelta(t, 0, mid.Pos.Y, 1e-12)
	assert.InDelta(t, 0.5, mid.T, 1e-12)

	// clamps to the endpoints
	before := line.NearestPosition(Vector{X: -5, Y: 1})
	assert.InDelta(t, 0, before.T, 1e-12)
	after := line.NearestPosition(Vector{X: 15, Y: 1})
	assert.InDelta(t, 1, after.T, 1e-12)
}

func TestNearestPositionZeroLength(t *testing.T) {
	line := Line{Start: Vector{X: 2, Y: 2}, End: Vector{X: 2, Y: 2}}
	res := line.NearestPosition(Vector{X: 5, Y: 5})
	assert.Equal(t, line.Start, res.Pos)
}

func TestCalculateCurvature(t *testing.T) {
	// three points on a unit circle
	a := Vector{X: 1, Y: 0}
	b := Vector{X: 0, Y: 1}
	c := Vector{X: -1, Y: 0}
	res := CalculateCurvature(a, b, c)
	assert.InDelta(t, 1, res.Curvature, 1e-9)
}

func TestCalculateCurvatureStraight(t *testing.T) {
	res := CalculateCurvature(Vector{X: 0, Y: 0}, Vector{X: 1, Y: 0}, Vector{X: 2, Y: 0})
	assert.InDelta(t, 0, res.Curvature, 1e-9)
}

func TestPursuitCurvature(t *testing.T) {
	pose := NewPose(0, 0, 0)

	// target straight ahead needs no turning
	assert.InDelta(t, 0, PursuitCurvature(pose, Vector{X: 5, Y: 0}), 1e-12)

	// k = 2*lateral/chord^2
	assert.InDelta(t, 2*1/(4.0+1.0), PursuitCurvature(pose, Vector{X: 2, Y: 1}), 1e-12)

	// left target curves left, right target curves right
	assert.Greater(t, PursuitCurvature(pose, Vector{X: 2, Y: 1}), 0.0)
	assert.Less(t, PursuitCurvature(pose, Vector{X: 2, Y: -1}), 0.0)

	// rotating the whole problem leaves the curvature unchanged
	rotated := NewPose(0, 0, m.Pi/2)
	assert.InDelta(t, 2*1/(4.0+1.0), PursuitCurvature(rotated, Vector{X: -1, Y: 2}), 1e-12)
}

func TestPursuitCurvatureZeroChord(t *testing.T) {
	pose := NewPose(1, 1, 0.3)
	assert.Equal(t, 0.0, PursuitCurvature(pose, Vector{X: 1, Y: 1}))
}

func TestMovingAverage(t *testing.T) {
	ma := MovingAverage{}
	ma.Init(4)
	ma.Update(2)
	// first sample seeds the whole window
	assert.InDelta(t, 2, ma.Estimate, 1e-12)
	ma.Update(4)
	assert.InDelta(t, 2.5, ma.Estimate, 1e-12)
}
