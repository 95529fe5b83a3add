package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

func newApp(logger log.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "go-life"
	app.Usage = "Conway's Game of Life on a fixed, non-wrapping grid"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "config", Value: "config.json", Usage: "JSON configuration file"},
		cli.IntFlag{Name: "width", Usage: "grid width in cells"},
		cli.IntFlag{Name: "height", Usage: "grid height in cells"},
		cli.IntFlag{Name: "area-width", Usage: "derive the width from an area of this many pixels"},
		cli.IntFlag{Name: "area-height", Usage: "derive the height from an area of this many pixels"},
		cli.IntFlag{Name: "cell-size", Usage: "pixel size of one cell when deriving from an area"},
		cli.DurationFlag{Name: "frame-rate", Usage: "delay between generations"},
		cli.IntFlag{Name: "max-generations", Usage: "stop after this many generations, 0 for no limit"},
		cli.Float64Flag{Name: "density", Usage: "random fill density when no cells are given"},
		cli.Int64Flag{Name: "seed", Usage: "random seed, 0 for time based"},
		cli.StringSliceFlag{Name: "cell", Usage: "x,y of a cell to start alive (repeatable)"},
		cli.BoolFlag{Name: "stop-on-stagnation", Usage: "stop once the board repeats"},
		cli.BoolFlag{Name: "no-clear", Usage: "do not clear the terminal between frames"},
		cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
	}
	app.Action = func(c *cli.Context) error {
		logger := logger
		if !c.Bool("debug") {
			logger = level.NewFilter(logger, level.AllowInfo())
		}

		config, err := buildConfig(c, logger)
		if err != nil {
			return err
		}

		g, err := initializeGame(config, os.Stdout, logger)
		if err != nil {
			return err
		}
		g.noClear = c.Bool("no-clear")

		return runGame(g, logger)
	}
	return app
}

// buildConfig loads the config file and applies the flags set on the command line
func buildConfig(c *cli.Context, logger log.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(c.String("config"))
	if err != nil {
		level.Info(logger).Log("msg", "using default configuration", "err", err)
		config = utils.DefaultConfig()
	}

	if c.IsSet("width") {
		config.Width = c.Int("width")
	}
	if c.IsSet("height") {
		config.Height = c.Int("height")
	}
	if c.IsSet("area-width") || c.IsSet("area-height") {
		config.Width, config.Height = 0, 0
		config.AreaWidth = c.Int("area-width")
		config.AreaHeight = c.Int("area-height")
	}
	if c.IsSet("cell-size") {
		config.CellSize = c.Int("cell-size")
	}
	if c.IsSet("frame-rate") {
		config.FrameRate = c.Duration("frame-rate")
	}
	if c.IsSet("max-generations") {
		config.MaxGenerations = c.Int("max-generations")
	}
	if c.IsSet("density") {
		config.RandomDensity = c.Float64("density")
	}
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.Bool("stop-on-stagnation") {
		config.StopOnStagnation = true
	}
	for _, s := range c.StringSlice("cell") {
		p, err := utils.ParsePoint(s)
		if err != nil {
			return config, err
		}
		config.Alive = append(config.Alive, p)
	}

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[buildConfig]")
	}
	return config, nil
}

// runGame runs the game loop next to a signal watcher; either one finishing stops the other
func runGame(g *game, logger log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		return g.run(ctx)
	})
	eg.Go(func() error {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		select {
		case sig := <-sigChan:
			level.Info(logger).Log("msg", "shutting down gracefully", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	level.Info(logger).Log(
		"msg", "final stats",
		"generations", g.grid.Generation(),
		"runtime", g.stats.Runtime(),
		"avg_population", g.stats.AveragePopulation,
	)
	return nil
}

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := newApp(logger).Run(os.Args); err != nil {
		level.Error(logger).Log("msg", "go-life failed", "err", err)
		os.Exit(1)
	}
}
