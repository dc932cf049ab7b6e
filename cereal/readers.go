package cereal

import (
	"pfeifer.dev/trackd/cereal/msg"
)

func LivePoseReader(evt msg.Event) (msg.LivePose, error) {
	return evt.LivePose()
}

func CarStateReader(evt msg.Event) (msg.CarState, error) {
	return evt.CarState()
}

func NavPlanReader(evt msg.Event) (msg.PlanPoseList, error) {
	return evt.NavPlan()
}

func TrackdInReader(evt msg.Event) (msg.TrackdIn, error) {
	return evt.TrackdIn()
}

func TrackdOutReader(evt msg.Event) (msg.TrackdOut, error) {
	return evt.TrackdOut()
}
