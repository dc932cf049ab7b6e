package tracker

// Limits is the kinematic configuration snapshot read by the control cycle.
// It is replaced wholesale via ApplyLimits; a cycle in progress sees either
// the old or the new snapshot, never a mix.
type Limits struct {
	MaxVel               float64 // m/s, upper bound on commanded speed magnitude
	MinVel               float64 // m/s, lower bound on commanded speed magnitude
	MinRadius            float64 // m, minimum turning radius
	AccLim               float64 // m/s², bound on per-cycle speed change / dt
	ForwardPointDistance float64 // m, lookahead arc distance along the plan
	XYGoalTolerance      float64 // m
	YawGoalTolerance     float64 // rad
	HeadingWeight        float64 // meters per radian of yaw error in the nearest-point metric
	Move                 bool    // master enable; false forces the zero command
}

// DefaultLimits is the snapshot installed by Initialize until the host
// applies its configuration.
func DefaultLimits() Limits {
	return Limits{
		MaxVel:               1.5,
		MinVel:               0.1,
		MinRadius:            1.0,
		AccLim:               1.0,
		ForwardPointDistance: 3.0,
		XYGoalTolerance:      0.25,
		YawGoalTolerance:     0.25,
		HeadingWeight:        1.0,
		Move:                 true,
	}
}
