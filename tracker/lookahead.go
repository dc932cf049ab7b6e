package tracker

import (
	m "pfeifer.dev/trackd/math"
)

// lookaheadPoint walks forward from start accumulating arc distance along the
// plan until it reaches forwardDist, the end of the plan, or a cusp (the
// direction of travel flips relative to the first step). The index advances
// every iteration, so duplicate waypoints at zero arc length cannot stall the
// walk. It returns the chosen target waypoint and whether the first step is
// forward motion.
func lookaheadPoint(plan *Plan, start int, forwardDist float64) (target m.Pose, forward bool) {
	wp := plan.At(start)
	if start >= plan.Len()-1 {
		// cursor already at the final waypoint
		return wp, true
	}

	forward = isForwards(wp, plan.At(start+1))

	accumulated := 0.0
	prev := wp
	for i := start + 1; i < plan.Len(); i++ {
		next := plan.At(i)
		if isForwards(prev, next) != forward {
			// cusp: do not commit to a target past a direction reversal
			return prev, forward
		}
		accumulated += prev.DistanceTo(next)
		prev = next
		if accumulated >= forwardDist {
			break
		}
	}
	return prev, forward
}
