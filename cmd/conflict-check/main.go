package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ttacon/chalk"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/bytearena/rmf-traffic-core/conflict"
	"github.com/bytearena/rmf-traffic-core/geometry"
)

func main() {
	app := makeapp()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Name = "conflict-check"
	app.Description = "Check two trajectories for spatio-temporal conflicts"

	app.Commands = []cli.Command{
		{
			Name:  "between",
			Usage: "Check two trajectory files against each other",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "a", Usage: "Path to trajectory A (JSON waypoint array)"},
				cli.StringFlag{Name: "b", Usage: "Path to trajectory B (JSON waypoint array)"},
				cli.StringFlag{Name: "shape-a", Value: "circle:0.5", Usage: "Footprint shape for A, circle:<radius> or box:<w>,<h>"},
				cli.StringFlag{Name: "shape-b", Value: "circle:0.5", Usage: "Footprint shape for B, circle:<radius> or box:<w>,<h>"},
				cli.BoolFlag{Name: "verbose", Usage: "Log input diagnostics (waypoint counts)"},
				cli.BoolFlag{Name: "piecewise-sweep", Usage: "Use the piecewise-sweep fast path for circle-circle pairs"},
			},
			Action: betweenAction,
		},
	}

	return app
}

func betweenAction(c *cli.Context) error {
	logger := zap.NewNop()
	if c.Bool("verbose") {
		built, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = built
	}
	defer logger.Sync()

	trajA, err := loadTrajectory(c.String("a"))
	if err != nil {
		return err
	}
	trajB, err := loadTrajectory(c.String("b"))
	if err != nil {
		return err
	}

	shapeA, err := parseShape(c.String("shape-a"))
	if err != nil {
		return err
	}
	shapeB, err := parseShape(c.String("shape-b"))
	if err != nil {
		return err
	}

	logger.Debug("checking trajectories",
		zap.Int("waypoints_a", trajA.Size()),
		zap.Int("waypoints_b", trajB.Size()),
	)

	profileA := geometry.NewProfile(&shapeA, nil)
	profileB := geometry.NewProfile(&shapeB, nil)

	hint := conflict.WithPiecewiseSweepCircles(c.Bool("piecewise-sweep"))
	t, ok, err := conflict.DetectBetween(profileA, trajA, profileB, trajB, hint)
	if err != nil {
		return err
	}

	if !ok {
		fmt.Print(chalk.Green)
		fmt.Println("no conflict", chalk.Reset)
		return nil
	}

	fmt.Print(chalk.Red)
	fmt.Println("conflict at", t.Format("2006-01-02T15:04:05.000000000Z07:00"), chalk.Reset)
	return nil
}

func parseShape(spec string) (geometry.FinalShape, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return geometry.FinalShape{}, fmt.Errorf("invalid shape spec %q, expected kind:params", spec)
	}

	switch kind {
	case "circle":
		radius, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return geometry.FinalShape{}, fmt.Errorf("invalid circle radius %q: %w", rest, err)
		}
		return geometry.Finalize(geometry.Circle{Radius: radius}), nil

	case "box":
		dims := strings.Split(rest, ",")
		if len(dims) != 2 {
			return geometry.FinalShape{}, fmt.Errorf("invalid box dims %q, expected w,h", rest)
		}
		width, err := strconv.ParseFloat(dims[0], 64)
		if err != nil {
			return geometry.FinalShape{}, fmt.Errorf("invalid box width %q: %w", dims[0], err)
		}
		height, err := strconv.ParseFloat(dims[1], 64)
		if err != nil {
			return geometry.FinalShape{}, fmt.Errorf("invalid box height %q: %w", dims[1], err)
		}
		return geometry.Finalize(geometry.Box(width, height)), nil

	default:
		return geometry.FinalShape{}, fmt.Errorf("unknown shape kind %q", kind)
	}
}
