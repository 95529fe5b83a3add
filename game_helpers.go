package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game is the terminal front end around a grid: it seeds the board, paces
// the generations and renders each one.
type game struct {
	config   utils.Config
	grid     *model.Grid
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	logger   log.Logger
	out      io.Writer
	noClear  bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer, logger log.Logger) (*game, error) {
	width, height := config.Dimensions()
	grid, err := model.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	if len(config.Alive) > 0 {
		for _, p := range config.Alive {
			grid.Set(p.X, p.Y, true)
		}
	} else if config.RandomDensity > 0 {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		grid.Randomize(rand.New(rand.NewSource(seed)), config.RandomDensity)
		level.Debug(logger).Log("msg", "randomized grid", "seed", seed, "density", config.RandomDensity)
	}

	return &game{
		config:   config,
		grid:     grid,
		history:  model.NewHistory(config.HistorySize),
		renderer: &model.TerminalRenderer{Out: out},
		stats:    utils.NewStats(),
		logger:   logger,
		out:      out,
	}, nil
}

// step advances one generation and records its timing
func (g *game) step() model.Board {
	g.history.Record(g.grid.Snapshot())

	start := time.Now()
	board := g.grid.AdvanceGeneration()
	g.stats.Update(g.grid.Generation(), board.CountAlive(), time.Since(start))
	return board
}

// checkStopConditions determines if the game should stop after board
func (g *game) checkStopConditions(board model.Board) (bool, string) {
	if g.config.MaxGenerations > 0 && g.grid.Generation() >= g.config.MaxGenerations {
		return true, "max generations reached"
	}
	if g.config.StopOnExtinction && board.CountAlive() == 0 {
		return true, "extinction"
	}
	if g.config.StopOnStagnation && g.history.IsStagnant(board) {
		return true, "stagnation detected"
	}
	return false, ""
}

// display renders the board and the status lines under it
func (g *game) display(board model.Board) {
	if !g.noClear {
		if err := g.renderer.Clear(); err != nil {
			level.Debug(g.logger).Log("msg", "failed to clear terminal", "err", err)
		}
	}
	g.renderer.Display(board)

	density := float64(board.CountAlive()) / float64(board.Width()*board.Height()) * 100
	fmt.Fprintln(g.out, g.stats.Label())
	fmt.Fprintf(g.out, "Living: %d | Density: %.1f%% | Avg Pop: %.1f | Runtime: %.1fs\n",
		board.CountAlive(), density, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
}

// run drives the simulation until a stop condition is met or ctx is done
func (g *game) run(ctx context.Context) error {
	level.Info(g.logger).Log(
		"msg", "starting",
		"width", g.grid.GetWidth(),
		"height", g.grid.GetHeight(),
		"living", g.grid.CountLivingCells(),
	)
	g.display(g.grid.Snapshot())

	for {
		select {
		case <-ctx.Done():
			level.Info(g.logger).Log("msg", "stopped", "reason", "shutdown", "generation", g.grid.Generation())
			return nil
		default:
		}

		board := g.step()
		g.display(board)

		if stop, reason := g.checkStopConditions(board); stop {
			level.Info(g.logger).Log("msg", "stopped", "reason", reason, "generation", g.grid.Generation())
			return nil
		}

		select {
		case <-ctx.Done():
		case <-time.After(g.config.FrameRate):
		}
	}
}
