package tracker

import (
	stdmath "math"

	m "pfeifer.dev/trackd/math"
)

// Command is a fully formed velocity command. Either every field is computed
// or the zero command is emitted; nothing partial ever leaves the tracker.
type Command struct {
	Linear    float64 // m/s, signed (negative is reverse)
	Angular   float64 // rad/s
	Curvature float64 // 1/m, signed (positive curves left)
}

// measured linear speeds below this count as stopped for the direction
// reversal rule. This is a safety bound, not a tunable.
const stoppedEpsilon = 0.01

// cycle time is clamped before it feeds the acceleration ramp so a stalled or
// first cycle cannot authorize a speed step.
const (
	minCycleTime = 0.001
	maxCycleTime = 0.2
)

// synthesize turns target geometry into a bounded command.
//
// Order matters: curvature is clamped to the minimum turning radius first,
// then speed to [MinVel, MaxVel], then the reversal guard against the
// measured velocity, then the acceleration ramp against the last commanded
// speed. The move switch is evaluated last and overrides everything.
func (t *Tracker) synthesize(pose m.Pose, target m.Pose, forward bool, measured float64, lim Limits, dt float64) Command {
	curvature := m.PursuitCurvature(pose, target.Point())
	if lim.MinRadius > 0 {
		maxCurvature := 1 / lim.MinRadius
		if curvature > maxCurvature {
			curvature = maxCurvature
		}
		if curvature < -maxCurvature {
			curvature = -maxCurvature
		}
	}

	// cruise at the velocity ceiling; the floor keeps the vehicle from
	// crawling below what the drivetrain can hold
	desired := clamp(lim.MaxVel, lim.MinVel, lim.MaxVel)
	if !forward {
		desired = -desired
	}

	// absolutely no direction reversal unless we are fully stopped
	if desired*measured < 0 && stdmath.Abs(measured) > stoppedEpsilon {
		desired = 0
	}

	dt = clamp(dt, minCycleTime, maxCycleTime)
	maxDelta := lim.AccLim * dt
	delta := clamp(desired-t.lastLinear, -maxDelta, maxDelta)
	linear := t.lastLinear + delta

	if !lim.Move {
		t.lastLinear = 0
		return Command{}
	}

	t.lastLinear = linear
	return Command{
		Linear:    linear,
		Angular:   curvature * linear,
		Curvature: curvature,
	}
}

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
