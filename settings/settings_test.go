package settings

import (
	"testing"

	capnp "capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/trackd/cereal/msg"
)

func newInput(t *testing.T) msg.TrackdIn {
	t.Helper()
	arena := capnp.SingleSegment(nil)
	_, seg, err := capnp.NewMessage(arena)
	require.NoError(t, err)
	event, err := msg.NewRootEvent(seg)
	require.NoError(t, err)
	input, err := event.NewTrackdIn()
	require.NoError(t, err)
	return input
}

func TestDefaults(t *testing.T) {
	s := TrackdSettings{}
	s.Default()
	assert.Equal(t, 1.5, s.MaxVel)
	assert.Equal(t, 3.0, s.ForwardPointDistance)
	assert.True(t, s.Move)
	assert.Equal(t, "error", s.LogLevel)
}

func TestRecommendedKeepsUnsetDefaults(t *testing.T) {
	s := TrackdSettings{}
	s.Recommended()
	assert.Equal(t, 2.0, s.MaxVel)
	// untouched by the recommended profile
	assert.Equal(t, 0.1, s.MinVel)
	assert.Equal(t, 1.0, s.MinRadius)
}

func TestLimitsSnapshot(t *testing.T) {
	s := TrackdSettings{}
	s.Default()
	s.MaxVel = 2.5
	s.Move = false

	lim := s.Limits()
	assert.Equal(t, 2.5, lim.MaxVel)
	assert.False(t, lim.Move)
	assert.Equal(t, s.HeadingWeight, lim.HeadingWeight)
}

func TestHandleSetFloat(t *testing.T) {
	s := TrackdSettings{}
	s.Default()

	input := newInput(t)
	input.SetType(msg.TrackdInputType_setMaxVel)
	input.SetFloat(4.2)
	s.Handle(input)
	assert.Equal(t, 4.2, s.MaxVel)

	input = newInput(t)
	input.SetType(msg.TrackdInputType_setHeadingWeight)
	input.SetFloat(0.5)
	s.Handle(input)
	assert.Equal(t, 0.5, s.HeadingWeight)
}

func TestHandleSetMove(t *testing.T) {
	s := TrackdSettings{}
	s.Default()

	input := newInput(t)
	input.SetType(msg.TrackdInputType_setMove)
	input.SetBool(false)
	s.Handle(input)
	assert.False(t, s.Move)
}

func TestHandleSetLogLevel(t *testing.T) {
	s := TrackdSettings{}
	s.Default()

	input := newInput(t)
	input.SetType(msg.TrackdInputType_setLogLevel)
	input.SetLevel(msg.LogLevelDebug)
	s.Handle(input)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestHandleLoadDefaults(t *testing.T) {
	s := TrackdSettings{}
	s.Default()
	s.MaxVel = 9

	input := newInput(t)
	input.SetType(msg.TrackdInputType_loadDefaultSettings)
	s.Handle(input)
	assert.Equal(t, 1.5, s.MaxVel)
}

func TestGetSegmentSize(t *testing.T) {
	assert.Equal(t, PLAN_SEGMENT_SIZE, GetSegmentSize("navPlan"))
	assert.Equal(t, PLAN_SEGMENT_SIZE, GetSegmentSize("localPlan"))
	assert.Equal(t, DEFAULT_SEGMENT_SIZE, GetSegmentSize("trackdOut"))
}
