// Package msg holds hand-maintained capnp bindings for the trackd message
// schema. The struct layouts below are the schema; there is no generated code
// to regenerate, so any field added here must keep existing offsets stable.
package msg

import (
	"math"

	capnp "capnproto.org/go/capnp/v3"
)

type EventKind uint16

const (
	EventUnknown EventKind = iota
	EventLivePose
	EventCarState
	EventNavPlan
	EventTrackdIn
	EventTrackdOut
	EventLocalPlan
)

var eventSize = capnp.ObjectSize{DataSize: 16, PointerCount: 1}

// Event is the root of every trackd message: a monotonic timestamp, a valid
// bit, a kind tag and a single payload pointer.
type Event capnp.Struct

func NewRootEvent(seg *capnp.Segment) (Event, error) {
	st, err := capnp.NewRootStruct(seg, eventSize)
	return Event(st), err
}

func ReadRootEvent(m *capnp.Message) (Event, error) {
	p, err := m.Root()
	if err != nil {
		return Event{}, err
	}
	return Event(p.Struct()), nil
}

func (e Event) LogMonoTime() uint64      { return capnp.Struct(e).Uint64(0) }
func (e Event) SetLogMonoTime(v uint64)  { capnp.Struct(e).SetUint64(0, v) }
func (e Event) Valid() bool              { return capnp.Struct(e).Bit(64) }
func (e Event) SetValid(v bool)          { capnp.Struct(e).SetBit(64, v) }
func (e Event) Kind() EventKind          { return EventKind(capnp.Struct(e).Uint16(10)) }
func (e Event) setKind(k EventKind)      { capnp.Struct(e).SetUint16(10, uint16(k)) }

func (e Event) payload() (capnp.Struct, error) {
	p, err := capnp.Struct(e).Ptr(0)
	return p.Struct(), err
}

func (e Event) newPayload(k EventKind, sz capnp.ObjectSize) (capnp.Struct, error) {
	st, err := capnp.NewStruct(capnp.Struct(e).Segment(), sz)
	if err != nil {
		return capnp.Struct{}, err
	}
	e.setKind(k)
	return st, capnp.Struct(e).SetPtr(0, st.ToPtr())
}

func (e Event) newPlanList(k EventKind, n int32) (PlanPoseList, error) {
	l, err := capnp.NewCompositeList(capnp.Struct(e).Segment(), planPoseSize, n)
	if err != nil {
		return PlanPoseList{}, err
	}
	e.setKind(k)
	return PlanPoseList{List: l}, capnp.Struct(e).SetPtr(0, l.ToPtr())
}

func (e Event) planList() (PlanPoseList, error) {
	p, err := capnp.Struct(e).Ptr(0)
	return PlanPoseList{List: p.List()}, err
}

// float64 fields are stored as raw bits, matching capnp encoding.
func structFloat(s capnp.Struct, off capnp.DataOffset) float64 {
	return math.Float64frombits(s.Uint64(off))
}

func setStructFloat(s capnp.Struct, off capnp.DataOffset, v float64) {
	s.SetUint64(off, math.Float64bits(v))
}

// LivePose carries the localizer's pose snapshot in the plan frame.
type LivePose capnp.Struct

var livePoseSize = capnp.ObjectSize{DataSize: 24}

func (e Event) NewLivePose() (LivePose, error) {
	st, err := e.newPayload(EventLivePose, livePoseSize)
	return LivePose(st), err
}

func (e Event) LivePose() (LivePose, error) {
	st, err := e.payload()
	return LivePose(st), err
}

func (p LivePose) X() float64       { return structFloat(capnp.Struct(p), 0) }
func (p LivePose) SetX(v float64)   { setStructFloat(capnp.Struct(p), 0, v) }
func (p LivePose) Y() float64       { return structFloat(capnp.Struct(p), 8) }
func (p LivePose) SetY(v float64)   { setStructFloat(capnp.Struct(p), 8, v) }
func (p LivePose) Yaw() float64     { return structFloat(capnp.Struct(p), 16) }
func (p LivePose) SetYaw(v float64) { setStructFloat(capnp.Struct(p), 16, v) }

// CarState carries the measured velocities from the vehicle.
type CarState capnp.Struct

var carStateSize = capnp.ObjectSize{DataSize: 24}

func (e Event) NewCarState() (CarState, error) {
	st, err := e.newPayload(EventCarState, carStateSize)
	return CarState(st), err
}

func (e Event) CarState() (CarState, error) {
	st, err := e.payload()
	return CarState(st), err
}

func (c CarState) VEgo() float64         { return structFloat(capnp.Struct(c), 0) }
func (c CarState) SetVEgo(v float64)     { setStructFloat(capnp.Struct(c), 0, v) }
func (c CarState) OmegaEgo() float64     { return structFloat(capnp.Struct(c), 8) }
func (c CarState) SetOmegaEgo(v float64) { setStructFloat(capnp.Struct(c), 8, v) }
func (c CarState) AEgo() float64         { return structFloat(capnp.Struct(c), 16) }
func (c CarState) SetAEgo(v float64)     { setStructFloat(capnp.Struct(c), 16, v) }

// PlanPose is one waypoint of a navPlan or localPlan list.
type PlanPose capnp.Struct

var planPoseSize = capnp.ObjectSize{DataSize: 24}

func (p PlanPose) X() float64       { return structFloat(capnp.Struct(p), 0) }
func (p PlanPose) SetX(v float64)   { setStructFloat(capnp.Struct(p), 0, v) }
func (p PlanPose) Y() float64       { return structFloat(capnp.Struct(p), 8) }
func (p PlanPose) SetY(v float64)   { setStructFloat(capnp.Struct(p), 8, v) }
func (p PlanPose) Yaw() float64     { return structFloat(capnp.Struct(p), 16) }
func (p PlanPose) SetYaw(v float64) { setStructFloat(capnp.Struct(p), 16, v) }

type PlanPoseList struct {
	capnp.List
}

func (l PlanPoseList) At(i int) PlanPose {
	return PlanPose(l.List.Struct(i))
}

func (e Event) NewNavPlan(n int32) (PlanPoseList, error) {
	return e.newPlanList(EventNavPlan, n)
}

func (e Event) NavPlan() (PlanPoseList, error) {
	return e.planList()
}

func (e Event) NewLocalPlan(n int32) (PlanPoseList, error) {
	return e.newPlanList(EventLocalPlan, n)
}

func (e Event) LocalPlan() (PlanPoseList, error) {
	return e.planList()
}

// TrackdInputType enumerates the push-reconfiguration operations.
type TrackdInputType uint16

const (
	TrackdInputType_reloadSettings TrackdInputType = iota
	TrackdInputType_saveSettings
	TrackdInputType_loadDefaultSettings
	TrackdInputType_loadRecommendedSettings
	TrackdInputType_setMaxVel
	TrackdInputType_setMinVel
	TrackdInputType_setMinRadius
	TrackdInputType_setAccLim
	TrackdInputType_setForwardPointDistance
	TrackdInputType_setXYGoalTolerance
	TrackdInputType_setYawGoalTolerance
	TrackdInputType_setHeadingWeight
	TrackdInputType_setMove
	TrackdInputType_setLogLevel
)

// LogLevel values carried by setLogLevel inputs.
type LogLevel uint16

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// TrackdIn is a single reconfiguration input: a type tag plus whichever of
// the value fields the type uses.
type TrackdIn capnp.Struct

var trackdInSize = capnp.ObjectSize{DataSize: 16}

func (e Event) NewTrackdIn() (TrackdIn, error) {
	st, err := e.newPayload(EventTrackdIn, trackdInSize)
	return TrackdIn(st), err
}

func (e Event) TrackdIn() (TrackdIn, error) {
	st, err := e.payload()
	return TrackdIn(st), err
}

func (t TrackdIn) Type() TrackdInputType     { return TrackdInputType(capnp.Struct(t).Uint16(0)) }
func (t TrackdIn) SetType(v TrackdInputType) { capnp.Struct(t).SetUint16(0, uint16(v)) }
func (t TrackdIn) Level() LogLevel           { return LogLevel(capnp.Struct(t).Uint16(2)) }
func (t TrackdIn) SetLevel(v LogLevel)       { capnp.Struct(t).SetUint16(2, uint16(v)) }
func (t TrackdIn) Bool() bool                { return capnp.Struct(t).Bit(32) }
func (t TrackdIn) SetBool(v bool)            { capnp.Struct(t).SetBit(32, v) }
func (t TrackdIn) Float() float64            { return structFloat(capnp.Struct(t), 8) }
func (t TrackdIn) SetFloat(v float64)        { setStructFloat(capnp.Struct(t), 8, v) }

// TrackdOut is the per-cycle controller output.
type TrackdOut capnp.Struct

var trackdOutSize = capnp.ObjectSize{DataSize: 40}

func (e Event) NewTrackdOut() (TrackdOut, error) {
	st, err := e.newPayload(EventTrackdOut, trackdOutSize)
	return TrackdOut(st), err
}

func (e Event) TrackdOut() (TrackdOut, error) {
	st, err := e.payload()
	return TrackdOut(st), err
}

func (t TrackdOut) Linear() float64         { return structFloat(capnp.Struct(t), 0) }
func (t TrackdOut) SetLinear(v float64)     { setStructFloat(capnp.Struct(t), 0, v) }
func (t TrackdOut) Angular() float64        { return structFloat(capnp.Struct(t), 8) }
func (t TrackdOut) SetAngular(v float64)    { setStructFloat(capnp.Struct(t), 8, v) }
func (t TrackdOut) Curvature() float64      { return structFloat(capnp.Struct(t), 16) }
func (t TrackdOut) SetCurvature(v float64)  { setStructFloat(capnp.Struct(t), 16, v) }
func (t TrackdOut) Cursor() uint32          { return capnp.Struct(t).Uint32(24) }
func (t TrackdOut) SetCursor(v uint32)      { capnp.Struct(t).SetUint32(24, v) }
func (t TrackdOut) PlanLength() uint32      { return capnp.Struct(t).Uint32(28) }
func (t TrackdOut) SetPlanLength(v uint32)  { capnp.Struct(t).SetUint32(28, v) }
func (t TrackdOut) GoalReached() bool       { return capnp.Struct(t).Bit(256) }
func (t TrackdOut) SetGoalReached(v bool)   { capnp.Struct(t).SetBit(256, v) }
