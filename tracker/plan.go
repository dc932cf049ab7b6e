package tracker

import (
	"sync/atomic"

	m "pfeifer.dev/trackd/math"
)

// Plan is a global path plus the tracking cursor. The waypoint slice is
// immutable after construction; SetPlan swaps whole Plan values so the cursor
// can never outlive the path it indexes. The cursor itself is only advanced
// by the control cycle.
type Plan struct {
	points []m.Pose
	cursor atomic.Int64
}

func NewPlan(points []m.Pose) *Plan {
	p := &Plan{points: make([]m.Pose, len(points))}
	copy(p.points, points)
	return p
}

func (p *Plan) Len() int {
	return len(p.points)
}

func (p *Plan) At(i int) m.Pose {
	return p.points[i]
}

func (p *Plan) Cursor() int {
	return int(p.cursor.Load())
}

func (p *Plan) setCursor(i int) {
	p.cursor.Store(int64(i))
}

// Remaining copies the waypoints from the cursor to the end of the plan.
func (p *Plan) Remaining() []m.Pose {
	cursor := p.Cursor()
	if cursor >= len(p.points) {
		return nil
	}
	rest := make([]m.Pose, len(p.points)-cursor)
	copy(rest, p.points[cursor:])
	return rest
}
