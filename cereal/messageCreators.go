package cereal

import (
	"pfeifer.dev/trackd/cereal/msg"
)

func TrackdInCreator(evt msg.Event) (msg.TrackdIn, error) {
	return evt.NewTrackdIn()
}

func TrackdOutCreator(evt msg.Event) (msg.TrackdOut, error) {
	return evt.NewTrackdOut()
}

func LivePoseCreator(evt msg.Event) (msg.LivePose, error) {
	return evt.NewLivePose()
}

func CarStateCreator(evt msg.Event) (msg.CarState, error) {
	return evt.NewCarState()
}
