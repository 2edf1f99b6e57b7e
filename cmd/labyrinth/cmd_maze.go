// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/matrix"
	"github.com/katalvlaran/labyrinth/traversal"
)

// errTooLarge is returned when a matrix would exceed matrix.max_nodes.
var errTooLarge = errors.New("graph too large for dense matrices")

func (a *app) runInfo(cmd *cobra.Command, args []string) error {
	grid, g, err := a.loadGraph(args[0])
	if err != nil {
		return err
	}
	cycle, err := dfs.FindCycle(g)
	if err != nil {
		return err
	}

	a.print(cmd,
		a.printer.Heading("graph information"),
		a.printer.Maze(grid),
		a.printer.Info(grid, g),
		a.printer.Loop(g, cycle),
	)

	return nil
}

func (a *app) runPath(cmd *cobra.Command, args []string) error {
	grid, g, err := a.loadGraph(args[0])
	if err != nil {
		return err
	}

	from, _ := cmd.Flags().GetInt("from")
	to, _ := cmd.Flags().GetInt("to")
	if !cmd.Flags().Changed("from") {
		from = g.Start()
	}
	if !cmd.Flags().Changed("to") {
		to = g.Goal()
	}

	path, err := bfs.ShortestPath(g, from, to)
	if err != nil {
		return err
	}
	a.log.Debug("shortest path", "from", from, "to", to, "steps", path.Steps())

	a.print(cmd, a.printer.Heading("shortest path"), a.printer.Path(g, from, to, path))
	if path.Found() {
		a.print(cmd, a.printer.PathOverlay(grid, g, path))
	}

	return nil
}

func (a *app) runTraverse(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("strategy")
	if name == "" {
		name = a.cfg.Traverse.Strategy
	}

	strategies := traversal.All()
	if name != "all" {
		s, err := traversal.ParseStrategy(name)
		if err != nil {
			return err
		}
		strategies = []traversal.Strategy{s}
	}

	_, g, err := a.loadGraph(args[0])
	if err != nil {
		return err
	}

	a.print(cmd, a.printer.Heading("graph traversals"))
	for _, s := range strategies {
		seq, err := traversal.Run(g, s, g.Start(), g.Goal())
		if err != nil {
			return fmt.Errorf("%s: %w", s, err)
		}
		a.log.Debug("traversal done", "strategy", s.String(), "visited", len(seq))
		a.print(cmd, a.printer.Traversal(g, s.String(), seq))
	}

	return nil
}

func (a *app) runMatrix(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	switch kind {
	case "adjacency", "incidence", "both":
	default:
		return fmt.Errorf("unknown matrix kind %q (want adjacency, incidence or both)", kind)
	}

	_, g, err := a.loadGraph(args[0])
	if err != nil {
		return err
	}
	if limit := a.cfg.Matrix.MaxNodes; limit > 0 && g.NodeCount() > limit {
		return fmt.Errorf("%w: %d nodes, limit %d", errTooLarge, g.NodeCount(), limit)
	}

	p, err := matrix.NewProjector(g)
	if err != nil {
		return err
	}

	a.print(cmd, a.printer.Heading("graph matrices"))
	if kind != "incidence" {
		a.print(cmd, a.printer.Matrix("adjacency", p.IDs(), p.Adjacency().Ints()))
	}
	if kind != "adjacency" {
		inc := p.Incidence()
		a.print(cmd, a.printer.Matrix("incidence", p.IDs(), inc.Ints()), a.printer.Edges(inc.Edges))
	}

	return nil
}

func (a *app) runComponents(cmd *cobra.Command, args []string) error {
	_, g, err := a.loadGraph(args[0])
	if err != nil {
		return err
	}
	comps, err := gridgraph.ConnectedComponents(g)
	if err != nil {
		return err
	}

	a.print(cmd, a.printer.Heading("connected components"), a.printer.Components(g, comps))

	return nil
}

func (a *app) runBreach(cmd *cobra.Command, args []string) error {
	grid, err := a.loadGrid(args[0])
	if err != nil {
		return err
	}
	b, err := gridgraph.MinBreach(grid)
	if err != nil {
		return err
	}

	a.print(cmd, a.printer.Heading("wall breach"), a.printer.Breach(b), a.printer.BreachOverlay(grid, b))

	return nil
}

func (a *app) runConfig(cmd *cobra.Command, _ []string) error {
	data, err := a.cfg.Marshal()
	if err != nil {
		return err
	}
	a.print(cmd, string(data))

	return nil
}

func (a *app) runGenerate(cmd *cobra.Command, _ []string) error {
	name, _ := cmd.Flags().GetString("algorithm")
	alg, err := builder.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	rows, _ := cmd.Flags().GetInt("rows")
	cols, _ := cmd.Flags().GetInt("cols")
	loops, _ := cmd.Flags().GetInt("loops")
	if loops < 0 {
		return fmt.Errorf("--loops must be non-negative, got %d", loops)
	}
	seed, _ := cmd.Flags().GetInt64("seed")
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	lines, err := builder.Generate(alg, rows, cols,
		builder.WithSeed(seed),
		builder.WithLoops(loops),
		builder.WithMarkers(a.cfg.MazeMarkers()),
	)
	if err != nil {
		return err
	}
	a.log.Info("maze generated", "algorithm", alg.String(), "rows", rows, "cols", cols,
		"seed", seed, "loops", loops)

	text := strings.Join(lines, "\n") + "\n"
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		a.print(cmd, text)
		return nil
	}
	if err = os.WriteFile(out, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write maze: %w", err)
	}

	return nil
}
