// SPDX-License-Identifier: MIT

package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// Option configures parsing.
type Option func(*parseOptions)

type parseOptions struct {
	markers Markers
}

// WithMarkers replaces the input alphabet. The resulting Grid still stores
// canonical markers.
func WithMarkers(m Markers) Option {
	return func(o *parseOptions) {
		o.markers = m
	}
}

// Parse turns raw text lines into a rectangular Grid.
//
// Lines are read as characters, not bytes: a multibyte rune occupies one
// cell and, being outside the alphabet, is open space. Ragged input is
// normalised, not rejected: every row is right-padded with open space up to
// the longest line. A trailing '\r' is dropped from each line. Exactly one
// start and one goal marker must be present, otherwise a *FormatError is
// returned.
//
// Complexity: O(R×C) time and memory.
func Parse(lines []string, opts ...Option) (*Grid, error) {
	o := parseOptions{markers: DefaultMarkers()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.markers.Validate(); err != nil {
		return nil, err
	}

	cols := 0
	runes := make([][]rune, len(lines))
	for i, line := range lines {
		runes[i] = []rune(strings.TrimSuffix(line, "\r"))
		if len(runes[i]) > cols {
			cols = len(runes[i])
		}
	}

	g := &Grid{
		cells: make([][]byte, len(runes)),
		rows:  len(runes),
		cols:  cols,
	}
	var starts, goals int
	for r, line := range runes {
		row := make([]byte, cols)
		for c := range row {
			if c >= len(line) {
				row[c] = Open
				continue
			}
			row[c] = o.markers.canonical(line[c])
			switch row[c] {
			case Start:
				starts++
				if starts > 1 {
					return nil, &FormatError{Reason: ErrDuplicateStart, Pos: core.Position{Row: r, Col: c}}
				}
				g.start = core.Position{Row: r, Col: c}
			case Goal:
				goals++
				if goals > 1 {
					return nil, &FormatError{Reason: ErrDuplicateGoal, Pos: core.Position{Row: r, Col: c}}
				}
				g.goal = core.Position{Row: r, Col: c}
			}
		}
		g.cells[r] = row
	}

	if starts == 0 {
		return nil, &FormatError{Reason: ErrMissingStart}
	}
	if goals == 0 {
		return nil, &FormatError{Reason: ErrMissingGoal}
	}

	return g, nil
}

// ParseReader reads all lines from r and parses them. Lines may be of any
// length; a final line without a newline is kept.
func ParseReader(r io.Reader, opts ...Option) (*Grid, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("maze: read: %w", err)
		}
	}

	return Parse(lines, opts...)
}

// ParseFile opens path and parses its contents.
func ParseFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	g, err := ParseReader(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("maze: %q: %w", path, err)
	}

	return g, nil
}
