package cereal

import (
	capnp "capnproto.org/go/capnp/v3"
	"github.com/pfeiferj/gomsgq"

	"pfeifer.dev/trackd/cereal/msg"
	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/settings"
)

// The daemon's channel set. Inputs conflate: only the latest pose, car state
// and plan matter; reconfiguration inputs do not conflate so none is lost.

func GetPoseSub() Subscriber[msg.LivePose] {
	return NewSubscriber("livePose", LivePoseReader, true)
}

func GetCarSub() Subscriber[msg.CarState] {
	return NewSubscriber("carState", CarStateReader, true)
}

func GetPlanSub() Subscriber[msg.PlanPoseList] {
	return NewSubscriber("navPlan", NavPlanReader, true)
}

func GetInSub() Subscriber[msg.TrackdIn] {
	return NewSubscriber("trackdIn", TrackdInReader, false)
}

func GetOutSub() Subscriber[msg.TrackdOut] {
	return NewSubscriber("trackdOut", TrackdOutReader, true)
}

func NewInPub() Publisher[msg.TrackdIn] {
	return NewPublisher("trackdIn", TrackdInCreator)
}

func NewOutPub() Publisher[msg.TrackdOut] {
	return NewPublisher("trackdOut", TrackdOutCreator)
}

// PlanPublisher sends whole waypoint lists; the list is sized per message so
// it does not fit the generic Publisher creator.
type PlanPublisher struct {
	Pub gomsgq.MsgqPublisher
}

func NewLocalPlanPub() (p PlanPublisher) {
	msgq := gomsgq.Msgq{}
	err := msgq.Init("localPlan", int64(settings.GetSegmentSize("localPlan")))
	if err != nil {
		panic(err)
	}
	pub := gomsgq.MsgqPublisher{}
	pub.Init(msgq)

	p.Pub = pub
	return p
}

func (p *PlanPublisher) Send(points []m.Pose) error {
	arena := capnp.SingleSegment(nil)

	message, seg, err := capnp.NewMessage(arena)
	if err != nil {
		return err
	}

	event, err := msg.NewRootEvent(seg)
	if err != nil {
		return err
	}
	event.SetLogMonoTime(GetTime())
	event.SetValid(true)

	list, err := event.NewLocalPlan(int32(len(points)))
	if err != nil {
		return err
	}
	for i, pt := range points {
		pp := list.At(i)
		pp.SetX(pt.X)
		pp.SetY(pt.Y)
		pp.SetYaw(pt.Yaw)
	}

	b, err := message.Marshal()
	if err != nil {
		return err
	}
	p.Pub.Send(b)
	return nil
}

// PlanPoses converts a received plan list into controller waypoints.
func PlanPoses(list msg.PlanPoseList) []m.Pose {
	points := make([]m.Pose, list.Len())
	for i := range points {
		pp := list.At(i)
		points[i] = m.NewPose(pp.X(), pp.Y(), pp.Yaw())
	}
	return points
}
