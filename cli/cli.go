package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	m "pfeifer.dev/trackd/math"
	"pfeifer.dev/trackd/route"
	ms "pfeifer.dev/trackd/settings"
	"pfeifer.dev/trackd/sim"
)

func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Send commands to an active trackd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive()
					return nil
				},
			},
			{
				Name:    "simulate",
				Aliases: []string{"s"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs",
						Name:     "plan-file",
						Usage:    "A plan file to track, as written by the route command. Falls back to a straight course when unset",
						Aliases: []string{
							"p",
						},
					},
					&cli.Float64Flag{
						Category: "Course",
						Name:     "length",
						Usage:    "Sets the length in meters of the straight course used when no plan file is given",
						Value:    50,
					},
					&cli.Float64Flag{
						Category: "Course",
						Name:     "spacing",
						Usage:    "Sets the waypoint spacing in meters of the straight course",
						Value:    0.5,
					},
					&cli.Float64Flag{
						Category: "Course",
						Name:     "offset",
						Usage:    "Sets the initial lateral offset in meters from the first waypoint",
						Value:    0.5,
					},
					&cli.Float64Flag{
						Category: "Stepping",
						Name:     "dt",
						Usage:    "Sets the simulated control cycle time in seconds",
						Value:    0.05,
					},
					&cli.IntFlag{
						Category: "Stepping",
						Name:     "max-steps",
						Usage:    "Sets the maximum number of control cycles to run",
						Value:    10000,
					},
				},
				Usage: "Runs the controller closed-loop against a kinematic vehicle model",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return simulate(cmd)
				},
			},
			{
				Name:    "route",
				Aliases: []string{"r"},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "input-file",
						Usage:    "The open street maps pbf file to extract a plan from",
						Aliases: []string{
							"i",
						},
						Value: "./map.osm.pbf",
					},
					&cli.StringFlag{
						Category: "Inputs and Outputs",
						Name:     "output-file",
						Usage:    "The plan file to write",
						Aliases: []string{
							"o",
						},
						Value: "./plan.json",
					},
					&cli.StringFlag{
						Category: "Way selection",
						Name:     "way-name",
						Usage:    "The name tag of the way to extract. When neither this nor way-id is set the ways are listed for selection",
					},
					&cli.IntFlag{
						Category: "Way selection",
						Name:     "way-id",
						Usage:    "The id of the way to extract",
					},
					&cli.Float64Flag{
						Category: "Plan shaping",
						Name:     "spacing",
						Usage:    "Resamples the way at this waypoint spacing in meters. Zero keeps the raw nodes",
						Value:    0.5,
					},
					&cli.Float64Flag{
						Category: "Plan shaping",
						Name:     "min-radius",
						Usage:    "Warns when the way bends tighter than this radius in meters. Zero disables the check",
						Value:    1.0,
					},
				},
				Usage: "Extracts a trackable plan from an open street maps pbf file",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return extractRoute(cmd)
				},
			},
		},
		Name:  "Trackd",
		Usage: "Start an instance of trackd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}

func simulate(cmd *cli.Command) error {
	var points []m.Pose
	if planFile := cmd.String("plan-file"); len(planFile) > 0 {
		plan, err := route.Load(planFile)
		if err != nil {
			return err
		}
		points = plan.Poses()
	} else {
		points = sim.Course(cmd.Float64("length"), cmd.Float64("spacing"))
	}
	if len(points) == 0 {
		return fmt.Errorf("plan has no points")
	}

	settings := ms.TrackdSettings{}
	settings.Default()

	start := points[0]
	start.Y += cmd.Float64("offset")
	result := sim.Run(points, sim.Config{
		Limits:   settings.Limits(),
		Start:    start,
		DT:       cmd.Float64("dt"),
		MaxSteps: int(cmd.Int("max-steps")),
	})

	fmt.Printf(
		"steps: %d\ngoal reached: %t\nfinal pose: (%.3f, %.3f, %.3f)\nmean cross track error: %.3f\nmax cross track error: %.3f\ncross track std dev: %.3f\n",
		result.Steps,
		result.GoalReached,
		result.Final.X,
		result.Final.Y,
		result.Final.Yaw,
		result.MeanError,
		result.MaxError,
		result.StdDev,
	)
	return nil
}

func extractRoute(cmd *cli.Command) error {
	extractSettings := route.ExtractSettings{
		InputFile:  cmd.String("input-file"),
		OutputFile: cmd.String("output-file"),
		WayName:    cmd.String("way-name"),
		WayID:      int64(cmd.Int("way-id")),
		Spacing:    cmd.Float64("spacing"),
		MinRadius:  cmd.Float64("min-radius"),
	}

	if len(extractSettings.WayName) == 0 && extractSettings.WayID == 0 {
		id, err := selectWay(extractSettings.InputFile)
		if err != nil {
			return err
		}
		extractSettings.WayID = id
	}

	plan, err := route.Extract(extractSettings)
	if err != nil {
		return err
	}
	if err := plan.Write(extractSettings.OutputFile); err != nil {
		return err
	}
	fmt.Printf("wrote %d points to %s\n", len(plan.Points), extractSettings.OutputFile)
	return nil
}
