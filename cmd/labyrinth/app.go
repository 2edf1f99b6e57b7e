// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/internal/render"
	"github.com/katalvlaran/labyrinth/maze"
)

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	noColor    bool
}

// app carries what every subcommand needs once the root has been prepared.
type app struct {
	flags   globalFlags
	cfg     config.Config
	log     *slog.Logger
	printer *render.Printer
	stdout  io.Writer
	stderr  io.Writer
}

// prepare loads the configuration, applies flag overrides, and builds the
// logger and printer.
func (a *app) prepare(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = a.flags.logFormat
	}
	if a.flags.noColor {
		cfg.Render.Color = "never"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Logging, a.stderr)
	a.printer = render.New(
		render.AutoTheme(a.stdout, cfg.Render.Color),
		render.WithPathGlyph(cfg.Render.PathGlyph),
		render.WithBreachGlyph(cfg.Render.BreachGlyph),
	)
	a.log.Debug("configuration loaded", "path", a.flags.configPath, "color", cfg.Render.Color)

	return nil
}

// loadGrid parses the maze file with the configured markers.
func (a *app) loadGrid(path string) (*maze.Grid, error) {
	began := time.Now()
	grid, err := maze.ParseFile(path, maze.WithMarkers(a.cfg.MazeMarkers()))
	if err != nil {
		return nil, err
	}
	a.log.Debug("maze parsed", "file", path, "rows", grid.Rows(), "cols", grid.Cols(),
		"elapsed", time.Since(began))

	return grid, nil
}

// loadGraph parses the maze file and builds its graph.
func (a *app) loadGraph(path string) (*maze.Grid, *core.Graph, error) {
	grid, err := a.loadGrid(path)
	if err != nil {
		return nil, nil, err
	}

	began := time.Now()
	g, err := gridgraph.Build(grid)
	if err != nil {
		return nil, nil, fmt.Errorf("build graph: %w", err)
	}
	a.log.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount(),
		"start", g.Start(), "goal", g.Goal(), "elapsed", time.Since(began))

	return grid, g, nil
}

// print writes s to the command's output.
func (a *app) print(cmd *cobra.Command, parts ...string) {
	out := cmd.OutOrStdout()
	for _, s := range parts {
		_, _ = io.WriteString(out, s)
	}
}
