// SPDX-License-Identifier: MIT

// Package render formats mazes, sequences and matrices for the terminal.
package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Labyrinth palette: stone walls, moss corridors, lantern path.
var (
	ColorStone   = lipgloss.Color("#5C5F66") // walls
	ColorMoss    = lipgloss.Color("#7FB069") // start marker
	ColorEmber   = lipgloss.Color("#E4572E") // goal marker
	ColorLantern = lipgloss.Color("#F3A712") // path cells
	ColorRubble  = lipgloss.Color("#A8201A") // breached walls
	ColorMist    = lipgloss.Color("#8D99AE") // muted text
	ColorSky     = lipgloss.Color("#29B6F6") // titles
)

// Theme holds one style per output element. A plain theme never calls
// into lipgloss, so its output is byte-for-byte predictable.
type Theme struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Muted  lipgloss.Style
	Wall   lipgloss.Style
	Start  lipgloss.Style
	Goal   lipgloss.Style
	Path   lipgloss.Style
	Breach lipgloss.Style
	One    lipgloss.Style

	plain bool
}

// Plain returns a theme without any styling.
func Plain() Theme {
	return Theme{plain: true}
}

// Colored returns the palette theme bound to renderer r.
func Colored(r *lipgloss.Renderer) Theme {
	return Theme{
		Title:  r.NewStyle().Bold(true).Foreground(ColorSky),
		Label:  r.NewStyle().Bold(true),
		Muted:  r.NewStyle().Foreground(ColorMist),
		Wall:   r.NewStyle().Foreground(ColorStone),
		Start:  r.NewStyle().Bold(true).Foreground(ColorMoss),
		Goal:   r.NewStyle().Bold(true).Foreground(ColorEmber),
		Path:   r.NewStyle().Foreground(ColorLantern),
		Breach: r.NewStyle().Bold(true).Foreground(ColorRubble),
		One:    r.NewStyle().Foreground(ColorLantern),
	}
}

// IsPlain reports whether the theme emits no escape sequences.
func (t Theme) IsPlain() bool { return t.plain }

// paint renders s with st unless the theme is plain.
func (t Theme) paint(st lipgloss.Style, s string) string {
	if t.plain {
		return s
	}

	return st.Render(s)
}

// AutoTheme picks a theme for w. mode is "always", "never" or "auto";
// auto colours only when w is a terminal and NO_COLOR is unset.
func AutoTheme(w io.Writer, mode string) Theme {
	switch mode {
	case "never":
		return Plain()
	case "always":
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)

		return Colored(r)
	}

	if !IsTerminal(w) || os.Getenv("NO_COLOR") != "" {
		return Plain()
	}

	return Colored(lipgloss.NewRenderer(w))
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
