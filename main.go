package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/trackd/cereal"
	"pfeifer.dev/trackd/cli"
	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/params"
	ms "pfeifer.dev/trackd/settings"
	"pfeifer.dev/trackd/tracker"
	u "pfeifer.dev/trackd/utils"
)

func main() {
	cli.Handle()
	params.EnsureParamDirectories()
	ms.Settings.LoadWithRetries(10)

	state := State{}
	state.Init()

	outPub := cereal.NewOutPub()
	planPub := cereal.NewLocalPlanPub()

	poseSub := cereal.GetPoseSub()
	defer poseSub.Sub.Msgq.Close()
	carSub := cereal.GetCarSub()
	defer carSub.Sub.Msgq.Close()
	planSub := cereal.GetPlanSub()
	defer planSub.Sub.Msgq.Close()
	inSub := cereal.GetInSub()
	defer inSub.Sub.Msgq.Close()

	tr := tracker.Tracker{}
	tr.Initialize("trackd", &state, nil)
	tr.ApplyLimits(ms.Settings.Limits())
	tr.SetLocalPlanSink(func(points []m.Pose) {
		u.Logde(errors.Wrap(planPub.Send(points), "could not publish local plan"))
	})

	for {
		time.Sleep(ms.LOOP_DELAY)

		// drain reconfiguration inputs before the cycle so a settings
		// change and the cycle that uses it land together
		for {
			input, success := inSub.Read()
			if !success {
				break
			}
			ms.Settings.Handle(input)
			tr.ApplyLimits(ms.Settings.Limits())
		}

		if pose, success := poseSub.Read(); success {
			state.UpdatePose(pose)
		}
		if car, success := carSub.Read(); success {
			state.UpdateCarState(car)
		}
		if plan, success := planSub.Read(); success {
			tr.SetPlan(cereal.PlanPoses(plan))
		}

		cmd, err := tr.ComputeVelocityCommands()
		valid := err == nil
		if err != nil {
			u.Logde(errors.Wrap(err, "could not compute velocity commands"))
			cmd = tracker.Command{}
		}

		cursor, length := tr.PlanProgress()
		goalReached := valid && tr.IsGoalReached()

		event, out := outPub.NewMessage(valid)
		out.SetLinear(cmd.Linear)
		out.SetAngular(cmd.Angular)
		out.SetCurvature(cmd.Curvature)
		out.SetCursor(uint32(cursor))
		out.SetPlanLength(uint32(length))
		out.SetGoalReached(goalReached)
		logOutput(valid, cmd, cursor, length, goalReached)
		u.Loge(errors.Wrap(outPub.Send(event), "failed to send update"))

		state.PersistPose()
	}
}

func logOutput(valid bool, cmd tracker.Command, cursor int, length int, goalReached bool) {
	slog.Debug("trackdOut",
		"valid", valid,
		"linear", cmd.Linear,
		"angular", cmd.Angular,
		"curvature", cmd.Curvature,
		"cursor", cursor,
		"planLength", length,
		"goalReached", goalReached,
	)
}
