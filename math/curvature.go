package math

import (
	m "math"
)

type Curvature struct {
	Curvature, ArcLength, Angle float64
	Pos                         Vector
}

// CalculateCurvature fits the circumscribed circle through three points and
// reports its curvature plus the arc length spanned between a and c.
func CalculateCurvature(a Vector, b Vector, c Vector) Curvature {
	lengthA := a.DistanceTo(b)
	lengthB := a.DistanceTo(c)
	lengthC := b.DistanceTo(c)

	sp := (lengthA + lengthB + lengthC) / 2

	area := m.Sqrt(sp * (sp - lengthA) * (sp - lengthB) * (sp - lengthC))

	lengthProd := lengthA * lengthB * lengthC
	if lengthProd == 0 {
		return Curvature{Pos: b}
	}

	res := Curvature{Pos: b}
	res.Curvature = (4 * area) / lengthProd
	if res.Curvature == 0 {
		res.ArcLength = lengthB
		return res
	}
	radius := 1.0 / res.Curvature

	num := (m.Pow(radius, 2)*2 - m.Pow(lengthB, 2))
	den := (2 * m.Pow(radius, 2))
	res.Angle = m.Acos(num / den)

	res.ArcLength = radius * res.Angle

	return res
}

// PursuitCurvature is the curvature of the arc that takes the vehicle at pose
// through the target point. Positive curves left. The same arc holds when
// driving the target in reverse; only the commanded speed changes sign.
func PursuitCurvature(pose Pose, target Vector) float64 {
	dx := target.X - pose.X
	dy := target.Y - pose.Y

	// target offset in the vehicle frame
	sinYaw := m.Sin(pose.Yaw)
	cosYaw := m.Cos(pose.Yaw)
	lateral := -sinYaw*dx + cosYaw*dy

	chordSq := dx*dx + dy*dy
	if chordSq == 0 {
		return 0
	}
	return 2 * lateral / chordSq
}
