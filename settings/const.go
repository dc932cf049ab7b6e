package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 1 * 1024 * 1024
	PLAN_SEGMENT_SIZE    = 10 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	TO_DEGREES           = 180 / 3.141592653589793
	TO_RADIANS           = 3.141592653589793 / 180

	// inputs older than this are treated as stale and invalidate the cycle
	POSE_TIMEOUT = 500 * time.Millisecond

	// minimum time between persisting the last pose param
	POSE_SAVE_INTERVAL = 5 * time.Second
)

// GetSegmentSize returns the msgq segment size for a channel. Plan channels
// carry whole waypoint lists and get a larger segment.
func GetSegmentSize(name string) int {
	switch name {
	case "navPlan", "localPlan":
		return PLAN_SEGMENT_SIZE
	default:
		return DEFAULT_SEGMENT_SIZE
	}
}
