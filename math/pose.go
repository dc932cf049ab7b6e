package math

import (
	m "math"
)

func NewPose(x, y, yaw float64) Pose {
	return Pose{X: x, Y: y, Yaw: yaw}
}

// Pose is a planar vehicle pose. X and Y are meters in the plan frame, Yaw is
// radians counter-clockwise from the +X axis.
type Pose struct {
	X   float64
	Y   float64
	Yaw float64
}

func (p *Pose) DistanceTo(end Pose) float64 {
	dx := end.X - p.X
	dy := end.Y - p.Y
	return m.Sqrt(dx*dx + dy*dy)
}

// VectorTo is the displacement from p to end, ignoring heading.
func (p *Pose) VectorTo(end Pose) Vector {
	return Vector{X: end.X - p.X, Y: end.Y - p.Y}
}

// HeadingVector is the unit vector p's yaw points along.
func (p *Pose) HeadingVector() Vector {
	return Vector{X: m.Cos(p.Yaw), Y: m.Sin(p.Yaw)}
}

// YawTo is the heading of the straight line from p to end.
func (p *Pose) YawTo(end Pose) float64 {
	v := p.VectorTo(end)
	return v.Heading()
}

func (p *Pose) Point() Vector {
	return Vector{X: p.X, Y: p.Y}
}

func (p *Pose) Equals(other Pose) bool {
	return p.X == other.X && p.Y == other.Y && p.Yaw == other.Yaw
}
