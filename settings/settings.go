package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"pfeifer.dev/trackd/cereal/msg"
	"pfeifer.dev/trackd/params"
	"pfeifer.dev/trackd/tracker"
	"pfeifer.dev/trackd/utils"
)

var (
	Settings = TrackdSettings{}
)

type TrackdSettings struct {
	MaxVel               float64 `json:"max_vel"`
	MinVel               float64 `json:"min_vel"`
	MinRadius            float64 `json:"min_radius"`
	AccLim               float64 `json:"acc_lim"`
	ForwardPointDistance float64 `json:"forward_point_distance"`
	XYGoalTolerance      float64 `json:"xy_goal_tolerance"`
	YawGoalTolerance     float64 `json:"yaw_goal_tolerance"`
	HeadingWeight        float64 `json:"heading_weight_m_per_rad"`
	Move                 bool    `json:"move"`
	LogLevel             string  `json:"log_level"`
}

func (s *TrackdSettings) Default() {
	s.MaxVel = 1.5
	s.MinVel = 0.1
	s.MinRadius = 1.0
	s.AccLim = 1.0
	s.ForwardPointDistance = 3.0
	s.XYGoalTolerance = 0.25
	s.YawGoalTolerance = 0.25
	s.HeadingWeight = 1.0
	s.Move = true
	s.LogLevel = "error"
}

func (s *TrackdSettings) Recommended() {
	s.Default()
	s.MaxVel = 2.0
	s.AccLim = 0.8
	s.ForwardPointDistance = 2.5
	s.LogLevel = "warn"
}

// Limits builds the controller's atomic configuration snapshot.
func (s *TrackdSettings) Limits() tracker.Limits {
	return tracker.Limits{
		MaxVel:               s.MaxVel,
		MinVel:               s.MinVel,
		MinRadius:            s.MinRadius,
		AccLim:               s.AccLim,
		ForwardPointDistance: s.ForwardPointDistance,
		XYGoalTolerance:      s.XYGoalTolerance,
		YawGoalTolerance:     s.YawGoalTolerance,
		HeadingWeight:        s.HeadingWeight,
		Move:                 s.Move,
	}
}

func (s *TrackdSettings) Load() (success bool) {
	s.Default() // set defaults so settings not already in param are defaulted
	data, err := params.GetParam(params.TRACKD_SETTINGS)
	if err != nil {
		utils.Loge(err)
		return false
	}

	err = json.Unmarshal(data, s)
	if err != nil {
		utils.Loge(err)
		return false
	}

	s.setLogLevel()

	return true
}

func (s *TrackdSettings) LoadWithRetries(tries int) {
	for range tries {
		if s.Load() {
			break
		}
		time.Sleep(1 * time.Second)
	}
	s.Save()
}

func (s *TrackdSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.TRACKD_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *TrackdSettings) setLogLevel() {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "info":
		slog.SetLogLoggerLevel(slog.LevelInfo)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelError)
	}
}

// Handle applies one push-reconfiguration input. The caller re-applies the
// Limits snapshot to the controller after any input.
func (s *TrackdSettings) Handle(input msg.TrackdIn) {
	switch input.Type() {
	case msg.TrackdInputType_reloadSettings:
		s.Load()
	case msg.TrackdInputType_saveSettings:
		go s.Save()
	case msg.TrackdInputType_loadDefaultSettings:
		s.Default()
	case msg.TrackdInputType_loadRecommendedSettings:
		s.Recommended()
	case msg.TrackdInputType_setMaxVel:
		s.MaxVel = input.Float()
	case msg.TrackdInputType_setMinVel:
		s.MinVel = input.Float()
	case msg.TrackdInputType_setMinRadius:
		s.MinRadius = input.Float()
	case msg.TrackdInputType_setAccLim:
		s.AccLim = input.Float()
	case msg.TrackdInputType_setForwardPointDistance:
		s.ForwardPointDistance = input.Float()
	case msg.TrackdInputType_setXYGoalTolerance:
		s.XYGoalTolerance = input.Float()
	case msg.TrackdInputType_setYawGoalTolerance:
		s.YawGoalTolerance = input.Float()
	case msg.TrackdInputType_setHeadingWeight:
		s.HeadingWeight = input.Float()
	case msg.TrackdInputType_setMove:
		s.Move = input.Bool()
	case msg.TrackdInputType_setLogLevel:
		switch input.Level() {
		case msg.LogLevelDebug:
			s.LogLevel = "debug"
		case msg.LogLevelInfo:
			s.LogLevel = "info"
		case msg.LogLevelWarn:
			s.LogLevel = "warn"
		default:
			s.LogLevel = "error"
		}
		s.setLogLevel()
	}
}
