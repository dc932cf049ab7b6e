// Package tracker implements a local path-tracking controller for an
// Ackermann-steered vehicle. Each control cycle it locates the vehicle on the
// current global plan, picks a lookahead target and synthesizes a velocity
// command bounded by the active kinematic limits.
package tracker

import (
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"

	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/utils"
)

// PoseSource supplies pose and velocity snapshots. Implementations must not
// block; a cycle reads each at most once.
type PoseSource interface {
	// GetOdom returns the measured linear and angular velocity.
	GetOdom() (linear float64, angular float64, ok bool)
	// GetRobotPose returns the current pose in the plan frame.
	GetRobotPose() (m.Pose, bool)
}

// PoseCloudSource is an optional upgrade interface for localizers that expose
// a particle cloud. Preferred over CovariancePoseSource when present.
type PoseCloudSource interface {
	GetPoseCloud() ([]m.Pose, bool)
}

// CovariancePoseSource is an optional upgrade interface for localizers that
// annotate the pose with a covariance.
type CovariancePoseSource interface {
	GetPoseWithCovariance() (pose m.Pose, cov [9]float64, ok bool)
}

// CostmapView is a non-owning handle to the host's costmap. The tracker does
// not read costs; the handle is held for the host interface and released at
// teardown by the host, never by the tracker.
type CostmapView interface {
	Size() (width, height int)
}

// LocalPlanSink receives the plan suffix from the cursor onward once per
// cycle, for external visualization. Optional.
type LocalPlanSink func(points []m.Pose)

var (
	ErrNotInitialized = errors.New("tracker has not been initialized")
	ErrNoPlan         = errors.New("no plan waypoints available")
	ErrNoPose         = errors.New("no pose available")
)

type trackerState int

const (
	stateUninitialized trackerState = iota
	stateReady
)

// Tracker is the controller instance. One writer (the control cycle) mutates
// the cursor and ramp state; SetPlan and ApplyLimits may be called from other
// goroutines and only swap atomic pointers.
type Tracker struct {
	name    string
	state   trackerState
	pose    PoseSource
	costmap CostmapView
	sink    LocalPlanSink

	plan   atomic.Pointer[Plan]
	limits atomic.Pointer[Limits]

	cycle      utils.UpdateTracker
	fixedDT    float64
	lastLinear float64
}

// Initialize prepares the tracker. A second call is a no-op that logs a
// warning.
func (t *Tracker) Initialize(name string, pose PoseSource, costmap CostmapView) {
	if t.state == stateReady {
		slog.Warn("this tracker has already been initialized, doing nothing", "name", t.name)
		return
	}

	t.name = name
	t.pose = pose
	t.costmap = costmap
	if costmap != nil {
		w, h := costmap.Size()
		slog.Debug("costmap attached", "name", name, "width", w, "height", h)
	}
	t.cycle.Init(20)

	lim := DefaultLimits()
	t.limits.Store(&lim)

	t.state = stateReady
}

// SetLocalPlanSink installs the optional local-plan side channel.
func (t *Tracker) SetLocalPlanSink(sink LocalPlanSink) {
	t.sink = sink
}

// SetFixedCycleTime pins the cycle time used by the acceleration ramp instead
// of measuring wall-clock time between cycles. Used by benches and tests that
// step faster than real time.
func (t *Tracker) SetFixedCycleTime(dt float64) {
	t.fixedDT = dt
}

// ApplyLimits atomically replaces the active limits snapshot.
func (t *Tracker) ApplyLimits(lim Limits) {
	t.limits.Store(&lim)
}

// SetPlan replaces the global plan and resets the cursor to the plan start.
// It never blocks and always succeeds once the tracker is initialized.
func (t *Tracker) SetPlan(points []m.Pose) bool {
	if t.state != stateReady {
		slog.Error("this tracker has not been initialized, please call Initialize() before using it")
		return false
	}
	slog.Info("got new plan", "points", len(points))
	t.plan.Store(NewPlan(points))
	return true
}

// PlanProgress reports the cursor position and length of the active plan.
func (t *Tracker) PlanProgress() (cursor int, length int) {
	plan := t.plan.Load()
	if plan == nil {
		return 0, 0
	}
	return plan.Cursor(), plan.Len()
}

// IsGoalReached reports whether the cursor has logically reached the final
// waypoint and the vehicle is within both goal tolerances of it. Stable under
// repeated calls with unchanged state.
func (t *Tracker) IsGoalReached() bool {
	if t.state != stateReady {
		slog.Error("this tracker has not been initialized, please call Initialize() before using it")
		return false
	}
	plan := t.plan.Load()
	if plan == nil || plan.Len() == 0 {
		return false
	}
	if plan.Cursor() != plan.Len()-1 {
		return false
	}
	pose, ok := t.currentPose()
	if !ok {
		return false
	}
	lim := *t.limits.Load()
	return withinGoal(pose, plan.At(plan.Len()-1), lim)
}

// ComputeVelocityCommands runs one control cycle: update the cursor, pick the
// lookahead target, synthesize a command. On failure no command is produced
// and the caller decides on recovery (e.g. requesting a new plan).
func (t *Tracker) ComputeVelocityCommands() (Command, error) {
	if t.state != stateReady {
		slog.Error("this tracker has not been initialized, please call Initialize() before using it")
		return Command{}, ErrNotInitialized
	}
	plan := t.plan.Load()
	if plan == nil || plan.Len() == 0 {
		return Command{}, ErrNoPlan
	}
	lim := *t.limits.Load()

	measured, _, ok := t.pose.GetOdom()
	if !ok {
		return Command{}, errors.Wrap(ErrNoPose, "odometry read failed")
	}
	pose, ok := t.currentPose()
	if !ok {
		return Command{}, errors.Wrap(ErrNoPose, "pose read failed")
	}

	nearest := nearestPoint(plan, pose, lim.HeadingWeight)
	advanceCursor(plan, nearest)

	target, forward := lookaheadPoint(plan, nearest, lim.ForwardPointDistance)

	if t.sink != nil {
		t.sink(plan.Remaining())
	}

	dt := t.fixedDT
	if dt == 0 {
		t.cycle.Update()
		dt = t.cycle.DiffMA.Estimate
	}

	return t.synthesize(pose, target, forward, measured, lim, dt), nil
}

// currentPose picks the best available pose estimate: pose cloud, then
// covariance pose, then the plain pose. Only the plain pose drives control;
// the richer estimates are logged for diagnosis until the planner consumes
// them.
func (t *Tracker) currentPose() (m.Pose, bool) {
	if cloud, ok := t.pose.(PoseCloudSource); ok {
		if poses, ok := cloud.GetPoseCloud(); ok && len(poses) > 0 {
			slog.Debug("pose cloud available", "poses", len(poses))
		}
	}
	if cov, ok := t.pose.(CovariancePoseSource); ok {
		if _, c, ok := cov.GetPoseWithCovariance(); ok {
			slog.Debug("covariance pose available", "xx", c[0], "yy", c[4])
		}
	}
	return t.pose.GetRobotPose()
}
