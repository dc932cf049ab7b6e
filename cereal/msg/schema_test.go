package msg

import (
	"testing"

	capnp "capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, message *capnp.Message) Event {
	t.Helper()
	data, err := message.Marshal()
	require.NoError(t, err)
	decoded, err := capnp.Unmarshal(data)
	require.NoError(t, err)
	event, err := ReadRootEvent(decoded)
	require.NoError(t, err)
	return event
}

func TestEventEnvelope(t *testing.T) {
	arena := capnp.SingleSegment(nil)
	message, seg, err := capnp.NewMessage(arena)
	require.NoError(t, err)
	event, err := NewRootEvent(seg)
	require.NoError(t, err)

	event.SetLogMonoTime(12345)
	event.SetValid(true)
	pose, err := event.NewLivePose()
	require.NoError(t, err)
	pose.SetX(1.5)
	pose.SetY(-2.25)
	pose.SetYaw(0.75)

	got := roundTrip(t, message)
	assert.Equal(t, uint64(12345), got.LogMonoTime())
	assert.True(t, got.Valid())
	assert.Equal(t, EventLivePose, got.Kind())

	gotPose, err := got.LivePose()
	require.NoError(t, err)
	assert.Equal(t, 1.5, gotPose.X())
	assert.Equal(t, -2.25, gotPose.Y())
	assert.Equal(t, 0.75, gotPose.Yaw())
}

func TestTrackdInFields(t *testing.T) {
	arena := capnp.SingleSegment(nil)
	message, seg, err := capnp.NewMessage(arena)
	require.NoError(t, err)
	event, err := NewRootEvent(seg)
	require.NoError(t, err)

	input, err := event.NewTrackdIn()
	require.NoError(t, err)
	input.SetType(TrackdInputType_setAccLim)
	input.SetFloat(0.8)
	input.SetBool(true)
	input.SetLevel(LogLevelWarn)

	got := roundTrip(t, message)
	gotIn, err := got.TrackdIn()
	require.NoError(t, err)
	assert.Equal(t, TrackdInputType_setAccLim, gotIn.Type())
	assert.Equal(t, 0.8, gotIn.Float())
	assert.True(t, gotIn.Bool())
	assert.Equal(t, LogLevelWarn, gotIn.Level())
}

func TestTrackdOutFields(t *testing.T) {
	arena := capnp.SingleSegment(nil)
	message, seg, err := capnp.NewMessage(arena)
	require.NoError(t, err)
	event, err := NewRootEvent(seg)
	require.NoError(t, err)

	out, err := event.NewTrackdOut()
	require.NoError(t, err)
	out.SetLinear(1.2)
	out.SetAngular(-0.3)
	out.SetCurvature(-0.25)
	out.SetCursor(7)
	out.SetPlanLength(42)
	out.SetGoalReached(true)

	got := roundTrip(t, message)
	gotOut, err := got.TrackdOut()
	require.NoError(t, err)
	assert.Equal(t, 1.2, gotOut.Linear())
	assert.Equal(t, -0.3, gotOut.Angular())
	assert.Equal(t, -0.25, gotOut.Curvature())
	assert.Equal(t, uint32(7), gotOut.Cursor())
	assert.Equal(t, uint32(42), gotOut.PlanLength())
	assert.True(t, gotOut.GoalReached())
}

func TestPlanList(t *testing.T) {
	arena := capnp.SingleSegment(nil)
	message, seg, err := capnp.NewMessage(arena)
	require.NoError(t, err)
	event, err := NewRootEvent(seg)
	require.NoError(t, err)

	list, err := event.NewNavPlan(3)
	require.NoError(t, err)
	for i := range 3 {
		pp := list.At(i)
		pp.SetX(float64(i))
		pp.SetY(float64(i) * 2)
		pp.SetYaw(0.1 * float64(i))
	}

	got := roundTrip(t, message)
	assert.Equal(t, EventNavPlan, got.Kind())
	gotList, err := got.NavPlan()
	require.NoError(t, err)
	require.Equal(t, 3, gotList.Len())
	assert.Equal(t, 2.0, gotList.At(2).X())
	assert.Equal(t, 4.0, gotList.At(2).Y())
}
