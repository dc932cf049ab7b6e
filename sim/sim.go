// Package sim closes the loop around the tracker with a kinematic bicycle
// model, so controller behavior can be benched without a vehicle.
package sim

import (
	stdmath "math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/tracker"
)

// Vehicle is a kinematic bicycle that executes commands exactly. It doubles
// as the tracker's PoseSource.
type Vehicle struct {
	Pose    m.Pose
	Linear  float64
	Angular float64
}

func (v *Vehicle) Step(cmd tracker.Command, dt float64) {
	v.Linear = cmd.Linear
	v.Angular = cmd.Angular

	// midpoint heading keeps the integration honest on tight arcs
	midYaw := v.Pose.Yaw + 0.5*v.Angular*dt
	v.Pose.X += v.Linear * stdmath.Cos(midYaw) * dt
	v.Pose.Y += v.Linear * stdmath.Sin(midYaw) * dt
	v.Pose.Yaw = m.NormalizeAngle(v.Pose.Yaw + v.Angular*dt)
}

func (v *Vehicle) GetOdom() (linear float64, angular float64, ok bool) {
	return v.Linear, v.Angular, true
}

func (v *Vehicle) GetRobotPose() (m.Pose, bool) {
	return v.Pose, true
}

type Config struct {
	Limits   tracker.Limits
	Start    m.Pose
	DT       float64 // seconds per step
	MaxSteps int
}

type Result struct {
	Steps       int
	GoalReached bool
	Final       m.Pose
	CrossTrack  []float64 // meters, one sample per step
	MeanError   float64
	MaxError    float64
	StdDev      float64
}

// Run drives the vehicle along the plan until the goal is reached, the
// tracker fails, or MaxSteps elapse.
func Run(points []m.Pose, cfg Config) Result {
	vehicle := Vehicle{Pose: cfg.Start}

	var tr tracker.Tracker
	tr.Initialize("sim", &vehicle, nil)
	tr.ApplyLimits(cfg.Limits)
	tr.SetFixedCycleTime(cfg.DT)
	tr.SetPlan(points)

	res := Result{}
	for res.Steps < cfg.MaxSteps {
		if tr.IsGoalReached() {
			res.GoalReached = true
			break
		}
		cmd, err := tr.ComputeVelocityCommands()
		if err != nil {
			break
		}
		vehicle.Step(cmd, cfg.DT)
		res.Steps++
		res.CrossTrack = append(res.CrossTrack, CrossTrack(vehicle.Pose, points))
	}

	res.Final = vehicle.Pose
	if len(res.CrossTrack) > 0 {
		res.MeanError = stat.Mean(res.CrossTrack, nil)
		res.MaxError = floats.Max(res.CrossTrack)
		res.StdDev = stat.StdDev(res.CrossTrack, nil)
	}
	return res
}

// CrossTrack is the distance from pose to the nearest point of the plan
// polyline.
func CrossTrack(pose m.Pose, points []m.Pose) float64 {
	if len(points) == 0 {
		return 0
	}
	pt := pose.Point()
	if len(points) == 1 {
		single := points[0].Point()
		return pt.DistanceTo(single)
	}
	best := stdmath.MaxFloat64
	for i := 0; i < len(points)-1; i++ {
		line := m.Line{Start: points[i].Point(), End: points[i+1].Point()}
		near := line.NearestPosition(pt)
		d := pt.DistanceTo(near.Pos)
		if d < best {
			best = d
		}
	}
	return best
}

// Course builds a straight plan along +X with the given waypoint spacing,
// the built-in bench figure.
func Course(length, spacing float64) []m.Pose {
	n := int(length/spacing) + 1
	points := make([]m.Pose, n)
	for i := range points {
		points[i] = m.NewPose(float64(i)*spacing, 0, 0)
	}
	return points
}
