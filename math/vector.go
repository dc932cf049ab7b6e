package math

import (
	m "math"
)

type Vector struct {
	X float64
	Y float64
}

// Heading is the direction of the vector, radians counter-clockwise from +X.
func (v *Vector) Heading() float64 {
	return m.Atan2(v.Y, v.X)
}

func (v *Vector) Norm() float64 {
	return m.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v *Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v *Vector) Subtract(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v *Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v *Vector) Scale(factor float64) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

func (v *Vector) DistanceTo(other Vector) float64 {
	d := other.Subtract(*v)
	return d.Norm()
}
