package utils

import (
	"time"

	m "pfeifer.dev/trackd/math"
)

// UpdateTracker measures the time between successive Update calls and keeps a
// moving average of the interval in seconds.
type UpdateTracker struct {
	LastTime time.Time
	Time     time.Time
	DiffMA   m.MovingAverage
}

func (u *UpdateTracker) Init(maLength int) {
	u.LastTime = time.Now()
	u.Time = time.Now()
	u.DiffMA.Init(maLength)
}

func (u *UpdateTracker) Update() {
	u.LastTime = u.Time
	u.Time = time.Now()
	u.DiffMA.Update(u.Time.Sub(u.LastTime).Seconds())
}

// Age is the time since the last Update.
func (u *UpdateTracker) Age() time.Duration {
	return time.Since(u.Time)
}
