package tracker

import (
	"log/slog"
	stdmath "math"

	m "pfeifer.dev/trackd/math"
)

// A cursor jump bigger than this in one cycle suggests the localizer moved us
// somewhere unexpected. Logged, never fatal.
const planJumpWarnPoints = 20

// nearestPoint scans the plan suffix from the cursor to the end and returns
// the index minimizing distance(m) + headingWeight(m/rad) · |yawDiff|(rad).
// The heading weight converts radians of yaw error into meters so the two
// terms share a scale; it never scans indices before the cursor, so a crossed
// and re-approached path section cannot pull the cursor backward.
func nearestPoint(plan *Plan, pose m.Pose, headingWeight float64) int {
	cursor := plan.Cursor()
	best := cursor
	bestMetric := stdmath.MaxFloat64
	for i := cursor; i < plan.Len(); i++ {
		wp := plan.At(i)
		dist := pose.DistanceTo(wp)
		yawErr := stdmath.Abs(m.AngleDiff(pose.Yaw, wp.Yaw))
		metric := dist + headingWeight*yawErr
		if metric < bestMetric {
			bestMetric = metric
			best = i
		}
	}
	return best
}

// advanceCursor adopts the new nearest index, warning when the jump from the
// previous cursor is suspiciously large.
func advanceCursor(plan *Plan, next int) {
	prev := plan.Cursor()
	if next-prev > planJumpWarnPoints {
		slog.Warn("cursor moved a lot in one cycle, plan tracking may be off",
			"previous", prev, "next", next)
	}
	plan.setCursor(next)
}
