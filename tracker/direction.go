package tracker

import (
	m "pfeifer.dev/trackd/math"
)

// isForwards reports whether traversing from waypoint a to b is forward
// motion: the displacement a→b projects positively onto a's heading. A zero
// displacement counts as forward.
func isForwards(a, b m.Pose) bool {
	heading := a.HeadingVector()
	displacement := a.VectorTo(b)
	return heading.Dot(displacement) >= 0
}

// withinGoal reports whether pose satisfies both goal tolerances against the
// final waypoint.
func withinGoal(pose, goal m.Pose, lim Limits) bool {
	if pose.DistanceTo(goal) > lim.XYGoalTolerance {
		return false
	}
	yawErr := m.AngleDiff(pose.Yaw, goal.Yaw)
	if yawErr < 0 {
		yawErr = -yawErr
	}
	return yawErr <= lim.YawGoalTolerance
}
