// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/gridgraph"
	"github.com/katalvlaran/labyrinth/maze"
)

const (
	defaultPathGlyph   = "·"
	defaultBreachGlyph = "#"
	rule               = "=================================================="
)

// Printer formats domain values as text under a Theme.
type Printer struct {
	theme       Theme
	pathGlyph   string
	breachGlyph string
}

// Option configures a Printer.
type Option func(*Printer)

// WithPathGlyph sets the mark used for path cells. Empty is ignored.
func WithPathGlyph(s string) Option {
	return func(p *Printer) {
		if s != "" {
			p.pathGlyph = s
		}
	}
}

// WithBreachGlyph sets the mark used for knocked-down walls. Empty is ignored.
func WithBreachGlyph(s string) Option {
	return func(p *Printer) {
		if s != "" {
			p.breachGlyph = s
		}
	}
}

// New returns a Printer for theme.
func New(theme Theme, opts ...Option) *Printer {
	p := &Printer{theme: theme, pathGlyph: defaultPathGlyph, breachGlyph: defaultBreachGlyph}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Heading renders a ruled section title.
func (p *Printer) Heading(title string) string {
	t := p.theme

	return t.paint(t.Muted, rule) + "\n" + t.paint(t.Title, strings.ToUpper(title)) + "\n" + t.paint(t.Muted, rule) + "\n"
}

// Maze renders the grid.
func (p *Printer) Maze(grid *maze.Grid) string {
	return p.overlay(grid, nil)
}

// PathOverlay renders the grid with the interior cells of path marked.
// Start and goal keep their markers. An empty path renders the bare grid.
func (p *Printer) PathOverlay(grid *maze.Grid, g *core.Graph, path core.Path) string {
	marks := make(map[core.Position]string, len(path))
	for i := 1; i < len(path)-1; i++ {
		n, err := g.Node(path[i])
		if err != nil {
			continue
		}
		marks[n.Pos] = p.theme.paint(p.theme.Path, p.pathGlyph)
	}

	return p.overlay(grid, marks)
}

// BreachOverlay renders the grid with the breach route: open cells get the
// path glyph and knocked-down walls the breach glyph.
func (p *Printer) BreachOverlay(grid *maze.Grid, b gridgraph.Breach) string {
	marks := make(map[core.Position]string, len(b.Cells))
	for _, c := range b.Cells {
		switch grid.At(c.Row, c.Col) {
		case maze.Wall:
			marks[c] = p.theme.paint(p.theme.Breach, p.breachGlyph)
		case maze.Open:
			marks[c] = p.theme.paint(p.theme.Path, p.pathGlyph)
		}
	}

	return p.overlay(grid, marks)
}

// overlay draws the grid cell by cell, substituting marks where present.
func (p *Printer) overlay(grid *maze.Grid, marks map[core.Position]string) string {
	var sb strings.Builder
	for r := 0; r < grid.Rows(); r++ {
		for c := 0; c < grid.Cols(); c++ {
			pos := core.Position{Row: r, Col: c}
			if m, ok := marks[pos]; ok {
				sb.WriteString(m)
				continue
			}
			sb.WriteString(p.cell(grid.At(r, c)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (p *Printer) cell(m maze.Marker) string {
	s := string(m)
	switch m {
	case maze.Wall:
		return p.theme.paint(p.theme.Wall, s)
	case maze.Start:
		return p.theme.paint(p.theme.Start, s)
	case maze.Goal:
		return p.theme.paint(p.theme.Goal, s)
	default:
		return s
	}
}

// Sequence renders a node-id sequence joined by arrows; start and goal are
// tagged with their markers.
func (p *Printer) Sequence(g *core.Graph, seq []int) string {
	parts := make([]string, len(seq))
	for i, id := range seq {
		parts[i] = p.nodeLabel(g, id)
	}

	return strings.Join(parts, " -> ")
}

func (p *Printer) nodeLabel(g *core.Graph, id int) string {
	switch id {
	case g.Start():
		return p.theme.paint(p.theme.Start, p.plainLabel(g, id))
	case g.Goal():
		return p.theme.paint(p.theme.Goal, p.plainLabel(g, id))
	default:
		return p.plainLabel(g, id)
	}
}

// plainLabel is the unstyled node label: the ID, tagged with the marker
// for start and goal.
func (p *Printer) plainLabel(g *core.Graph, id int) string {
	switch id {
	case g.Start():
		return fmt.Sprintf("%d(%c)", id, maze.Start)
	case g.Goal():
		return fmt.Sprintf("%d(%c)", id, maze.Goal)
	default:
		return fmt.Sprintf("%d", id)
	}
}

// Traversal renders one named traversal result.
func (p *Printer) Traversal(g *core.Graph, name string, seq []int) string {
	var sb strings.Builder
	sb.WriteString(p.theme.paint(p.theme.Label, name) + "\n")
	fmt.Fprintf(&sb, "visited: %d\n", len(seq))
	fmt.Fprintf(&sb, "order: %s\n", p.Sequence(g, seq))

	return sb.String()
}

// Path renders a shortest path from one node to another, or the no-path
// notice naming both endpoints.
func (p *Printer) Path(g *core.Graph, from, to int, path core.Path) string {
	if !path.Found() {
		msg := fmt.Sprintf("no path between %s and %s", p.plainLabel(g, from), p.plainLabel(g, to))

		return p.theme.paint(p.theme.Muted, msg) + "\n"
	}

	return fmt.Sprintf("length: %d steps\npath: %s\n", path.Steps(), p.Sequence(g, path))
}

// Matrix renders a 0/1 matrix with row labels and column numbers, each cell
// right-aligned in three characters.
func (p *Printer) Matrix(title string, rowIDs []int, m [][]int) string {
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}

	var sb strings.Builder
	sb.WriteString(p.theme.paint(p.theme.Label, title) + "\n")
	fmt.Fprintf(&sb, "dimension: %dx%d\n", len(m), cols)
	sb.WriteString("    ")
	for j := 0; j < cols; j++ {
		sb.WriteString(p.theme.paint(p.theme.Muted, fmt.Sprintf("%3d ", j)))
	}
	sb.WriteByte('\n')
	for i, row := range m {
		sb.WriteString(p.theme.paint(p.theme.Muted, fmt.Sprintf("%3d ", rowIDs[i])))
		for _, v := range row {
			cell := fmt.Sprintf("%3d ", v)
			if v != 0 {
				cell = p.theme.paint(p.theme.One, cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Edges renders the incidence column legend: one "k: lo-hi" entry per column.
func (p *Printer) Edges(edges []core.EdgeKey) string {
	parts := make([]string, len(edges))
	for k, e := range edges {
		parts[k] = fmt.Sprintf("%d: %d-%d", k, e.Lo, e.Hi)
	}

	return "columns: " + strings.Join(parts, ", ") + "\n"
}

// Info renders grid and graph statistics plus the adjacency listing.
func (p *Printer) Info(grid *maze.Grid, g *core.Graph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "grid: %d rows x %d cols\n", grid.Rows(), grid.Cols())
	fmt.Fprintf(&sb, "nodes: %d\n", g.NodeCount())
	fmt.Fprintf(&sb, "edges: %d\n", g.EdgeCount())
	fmt.Fprintf(&sb, "start (A): node %d at %s\n", g.Start(), grid.Start())
	fmt.Fprintf(&sb, "goal (B): node %d at %s\n", g.Goal(), grid.Goal())
	sb.WriteString(p.theme.paint(p.theme.Label, "adjacency") + "\n")
	for _, n := range g.Nodes() {
		nbs, _ := g.Neighbors(n.ID)
		fmt.Fprintf(&sb, "%4d %s -> %v\n", n.ID, n.Pos, nbs)
	}

	return sb.String()
}

// Loop renders the result of a loop search.
func (p *Printer) Loop(g *core.Graph, cycle core.Path) string {
	if !cycle.Found() {
		return "loops: none (perfect maze)\n"
	}

	return fmt.Sprintf("loop: %s\n", p.Sequence(g, cycle))
}

// Components renders component sizes, flagging the one holding the start.
func (p *Printer) Components(g *core.Graph, comps [][]int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "components: %d\n", len(comps))
	for i, c := range comps {
		tag := ""
		for _, id := range c {
			if id == g.Start() {
				tag += " [A]"
			}
			if id == g.Goal() {
				tag += " [B]"
			}
		}
		fmt.Fprintf(&sb, "%4d: %d nodes%s %v\n", i, len(c), tag, c)
	}

	return sb.String()
}

// Breach renders the breach summary.
func (p *Printer) Breach(b gridgraph.Breach) string {
	if b.Cost() == 0 {
		return fmt.Sprintf("walls to remove: 0 (goal reachable, %d cells)\n", len(b.Cells))
	}
	walls := make([]string, len(b.Walls))
	for i, w := range b.Walls {
		walls[i] = w.String()
	}

	return fmt.Sprintf("walls to remove: %d %s\n", b.Cost(), strings.Join(walls, " "))
}
