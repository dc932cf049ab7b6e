package math

type Line struct {
	Start, End Vector
}

type LinePosition struct {
	Pos Vector
	T   float64
}

// NearestPosition projects pos onto the segment, clamping to the endpoints.
func (l *Line) NearestPosition(pos Vector) LinePosition {
	ab := l.End.Subtract(l.Start)
	ap := pos.Subtract(l.Start)
	den := ab.Dot(ab)
	if den == 0 {
		return LinePosition{Pos: l.Start, T: 0}
	}
	t := ap.Dot(ab) / den

	t = max(0, min(1, t))
	closest := l.Start.Add(ab.Scale(t))
	return LinePosition{Pos: closest, T: t}
}
