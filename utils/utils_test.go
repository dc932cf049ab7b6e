package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurryCachesFirstValue(t *testing.T) {
	c := Curry[int]{}
	calls := 0
	setter := func() int {
		calls++
		return 7
	}
	assert.Equal(t, 7, c.Value(setter))
	assert.Equal(t, 7, c.Value(setter))
	assert.Equal(t, 1, calls)

	c.Set(9)
	assert.Equal(t, 9, c.Value(setter))
}

func TestTrackedState(t *testing.T) {
	s := TrackedState[float64]{
		Equal: Float64Compare,
		Null:  Float64Null,
	}

	assert.True(t, s.Update(1.5))
	assert.False(t, s.Update(1.5))
	assert.True(t, s.Update(2.5))
	// the zero value never becomes LastValue
	assert.Equal(t, 1.5, s.LastValue)
	assert.Equal(t, 2.5, s.Value)
}

func TestUpdateTrackerAge(t *testing.T) {
	u := UpdateTracker{}
	u.Init(4)
	u.Update()
	assert.Less(t, u.Age(), time.Second)
	assert.Greater(t, u.DiffMA.Estimate, 0.0)
}
