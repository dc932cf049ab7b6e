package main

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/trackd/cereal/msg"
	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/params"
	ms "pfeifer.dev/trackd/settings"
	u "pfeifer.dev/trackd/utils"
)

type PersistedPose struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Yaw float64 `json:"yaw"`
}

// State holds the latest input snapshots and adapts them into the tracker's
// pose source. Readings older than POSE_TIMEOUT are treated as missing.
type State struct {
	Pose      m.Pose
	PoseValid bool
	OdomValid bool
	VEgo      float64
	OmegaEgo  float64
	AEgo      float64

	poseAge u.UpdateTracker
	odomAge u.UpdateTracker

	persisted u.TrackedState[m.Pose]
	lastSave  time.Time
}

func (s *State) Init() {
	s.poseAge.Init(20)
	s.odomAge.Init(20)
	s.persisted = u.TrackedState[m.Pose]{
		Equal: func(a, b m.Pose) bool { return a.Equals(b) },
		Null:  func(a m.Pose) bool { return a == m.Pose{} },
	}

	// seed from the last persisted pose so logs have a frame before the
	// localizer comes up; control still waits for a live pose
	data, err := params.GetParam(params.LAST_POSE)
	if err != nil {
		return
	}
	var p PersistedPose
	if err := json.Unmarshal(data, &p); err != nil {
		u.Logwe(errors.Wrap(err, "could not parse last pose param"))
		return
	}
	s.Pose = m.NewPose(p.X, p.Y, p.Yaw)
	slog.Info("restored last pose", "x", p.X, "y", p.Y, "yaw", p.Yaw)
}

func (s *State) UpdatePose(pose msg.LivePose) {
	s.Pose = m.NewPose(pose.X(), pose.Y(), pose.Yaw())
	s.PoseValid = true
	s.poseAge.Update()
}

func (s *State) UpdateCarState(car msg.CarState) {
	s.VEgo = car.VEgo()
	s.OmegaEgo = car.OmegaEgo()
	s.AEgo = car.AEgo()
	s.OdomValid = true
	s.odomAge.Update()
}

func (s *State) GetOdom() (linear float64, angular float64, ok bool) {
	if !s.OdomValid || s.odomAge.Age() >= ms.POSE_TIMEOUT {
		return 0, 0, false
	}
	return s.VEgo, s.OmegaEgo, true
}

func (s *State) GetRobotPose() (m.Pose, bool) {
	if !s.PoseValid || s.poseAge.Age() >= ms.POSE_TIMEOUT {
		return m.Pose{}, false
	}
	return s.Pose, true
}

// PersistPose writes the current pose to the params directory at most once
// per POSE_SAVE_INTERVAL, and only when it has changed.
func (s *State) PersistPose() {
	if !s.PoseValid {
		return
	}
	if time.Since(s.lastSave) < ms.POSE_SAVE_INTERVAL {
		return
	}
	if !s.persisted.Update(s.Pose) {
		return
	}
	s.lastSave = time.Now()

	data, err := json.Marshal(PersistedPose{X: s.Pose.X, Y: s.Pose.Y, Yaw: s.Pose.Yaw})
	if err != nil {
		u.Loge(errors.Wrap(err, "could not encode last pose"))
		return
	}
	if err := params.PutParam(params.LAST_POSE, data); err != nil {
		u.Logwe(errors.Wrap(err, "could not persist last pose"))
	}
}
