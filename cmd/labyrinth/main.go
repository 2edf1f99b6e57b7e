// SPDX-License-Identifier: MIT

// Command labyrinth loads a text maze and answers graph questions about it:
// shortest path, traversal orders, dense matrices, components and the
// cheapest wall breach. It can also carve new mazes.
package main

import (
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
// Errors are logged once through the configured logger.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		log := a.log
		if log == nil {
			log = slog.New(slog.NewTextHandler(stderr, nil))
		}
		log.Error("labyrinth failed", "error", err)

		return 1
	}

	return 0
}
