// Package render draws assembled plot groups as terminal charts.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sumviz/internal/config"
	"github.com/san-kum/sumviz/internal/plot"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// historic overlays draw in a fixed dim color outside the cycle
var historicColor = asciigraph.Gray

var defaultPalette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Orange,
	asciigraph.Purple,
	asciigraph.Cyan,
}

// Renderer draws plot groups to a terminal. The color cycle carries
// across groups unless a group asks for a reset.
type Renderer struct {
	out     io.Writer
	width   int
	height  int
	palette []asciigraph.AnsiColor
	next    int
}

func New(out io.Writer, cfg *config.Config) *Renderer {
	r := &Renderer{
		out:     out,
		width:   cfg.ChartWidth,
		height:  cfg.ChartHeight,
		palette: defaultPalette,
	}
	if p := paletteFromNames(cfg.Palette); len(p) > 0 {
		r.palette = p
	}
	return r
}

var namedColors = map[string]asciigraph.AnsiColor{
	"red":     asciigraph.Red,
	"blue":    asciigraph.Blue,
	"green":   asciigraph.Green,
	"orange":  asciigraph.Orange,
	"purple":  asciigraph.Purple,
	"cyan":    asciigraph.Cyan,
	"yellow":  asciigraph.Yellow,
	"magenta": asciigraph.Magenta,
	"gray":    asciigraph.Gray,
}

func paletteFromNames(names []string) []asciigraph.AnsiColor {
	var out []asciigraph.AnsiColor
	for _, name := range names {
		if c, ok := namedColors[name]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Render draws every group in order.
func (r *Renderer) Render(groups []plot.Group) {
	for _, g := range groups {
		r.draw(g)
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) draw(g plot.Group) {
	if g.ResetColors {
		r.next = 0
	}
	if g.Title != "" {
		fmt.Fprintln(r.out, titleStyle.Render(g.Title))
	}

	var (
		data   [][]float64
		colors []asciigraph.AnsiColor
		lines  []plot.Line
	)
	for _, l := range g.Lines {
		if len(l.Y) == 0 {
			continue
		}
		data = append(data, l.Y)
		colors = append(colors, r.color(l))
		lines = append(lines, l)
	}
	if len(data) == 0 {
		fmt.Fprintln(r.out, dimStyle.Render("no data"))
		return
	}

	chart := asciigraph.PlotMany(data,
		asciigraph.Width(r.width),
		asciigraph.Height(r.height),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption(lines)),
	)
	fmt.Fprintln(r.out, chart)
	r.legend(lines, colors)
}

// color assigns the next cycle color to a line; point-style overlays
// use a fixed dim color and do not consume a cycle slot.
func (r *Renderer) color(l plot.Line) asciigraph.AnsiColor {
	if l.Style == plot.StylePoint {
		return historicColor
	}
	c := r.palette[r.next%len(r.palette)]
	r.next++
	return c
}

func (r *Renderer) legend(lines []plot.Line, colors []asciigraph.AnsiColor) {
	for i, l := range lines {
		if !l.Legended() {
			continue
		}
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprint(int(colors[i])))).
			Render("──")
		fmt.Fprintf(r.out, "  %s %s\n", swatch, l.Label)
	}
}

func caption(lines []plot.Line) string {
	min, max := 0.0, 0.0
	found := false
	for _, l := range lines {
		for _, x := range l.X {
			if !found {
				min, max = x, x
				found = true
				continue
			}
			if x < min {
				min = x
			}
			if x > max {
				max = x
			}
		}
	}
	if !found {
		return ""
	}
	return fmt.Sprintf("days %g - %g", min, max)
}
