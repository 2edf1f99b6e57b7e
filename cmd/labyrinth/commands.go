// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/traversal"
)

// newRootCmd builds the full command tree around a.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "labyrinth",
		Short: "Solve and analyse text mazes as graphs",
		Long: `labyrinth reads a maze drawn with '*' walls, ' ' corridors, 'A' start and
'B' goal, builds its 4-neighbour graph and reports paths, traversal orders,
adjacency and incidence matrices, connected regions and wall breaches.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.flags.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&a.flags.logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().BoolVar(&a.flags.noColor, "no-color", false, "disable coloured output")

	infoCmd := &cobra.Command{
		Use:   "info MAZE_FILE",
		Short: "Show grid size, graph counts, start/goal and the adjacency listing",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInfo,
	}

	pathCmd := &cobra.Command{
		Use:     "path MAZE_FILE",
		Short:   "Find the shortest path from A to B and draw it on the maze",
		Aliases: []string{"solve"},
		Args:    cobra.ExactArgs(1),
		RunE:    a.runPath,
	}
	pathCmd.Flags().Int("from", -1, "start node id (default: the A cell)")
	pathCmd.Flags().Int("to", -1, "goal node id (default: the B cell)")

	traverseCmd := &cobra.Command{
		Use:   "traverse MAZE_FILE",
		Short: "Print traversal orders from A",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runTraverse,
	}
	traverseCmd.Flags().StringP("strategy", "s", "",
		"one of "+strings.Join(traversal.Names(), ", ")+" or all (default from config)")

	matrixCmd := &cobra.Command{
		Use:   "matrix MAZE_FILE",
		Short: "Print the adjacency and/or incidence matrix",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runMatrix,
	}
	matrixCmd.Flags().StringP("kind", "k", "both", "adjacency, incidence or both")

	componentsCmd := &cobra.Command{
		Use:   "components MAZE_FILE",
		Short: "List connected regions of the maze",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runComponents,
	}

	breachCmd := &cobra.Command{
		Use:   "breach MAZE_FILE",
		Short: "Find the fewest walls to knock down to reach B",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runBreach,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE:  a.runConfig,
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Carve a random maze and print it in the configured alphabet",
		Args:  cobra.NoArgs,
		RunE:  a.runGenerate,
	}
	generateCmd.Flags().Int("rows", 10, "logical cell rows")
	generateCmd.Flags().Int("cols", 20, "logical cell columns")
	generateCmd.Flags().Int64("seed", 0, "RNG seed (default: current time)")
	generateCmd.Flags().StringP("algorithm", "a", "kruskal",
		"one of "+strings.Join(builder.Algorithms(), ", "))
	generateCmd.Flags().Int("loops", 0, "extra walls to open after carving")
	generateCmd.Flags().StringP("output", "o", "", "write the maze to this file instead of stdout")

	rootCmd.AddCommand(infoCmd, pathCmd, traverseCmd, matrixCmd, componentsCmd, breachCmd, configCmd, generateCmd)

	return rootCmd
}
