package utils

import (
	"time"
)

// TrackedState keeps a value together with its previous value and the time it
// last changed. Equal decides whether an incoming value is a change; Null
// filters values that should not become LastValue (e.g. dropouts).
type TrackedState[T any] struct {
	LastValue          T
	Value              T
	UpdatedTime        time.Time
	AllowNullLastValue bool
	Equal              func(a, b T) bool
	Null               func(a T) bool
}

func (t *TrackedState[T]) Update(val T) (updated bool) {
	if !t.Equal(t.Value, val) {
		if t.AllowNullLastValue || !t.Null(t.Value) {
			t.LastValue = t.Value
		}
		t.UpdatedTime = time.Now()
		t.Value = val
		return true
	}
	return false
}

func Float64Compare(a, b float64) bool {
	return a == b
}

func Float64Null(a float64) bool {
	return a == 0
}
