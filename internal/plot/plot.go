// Package plot assembles resolved vectors and restart series into
// renderable plot groups. It performs no I/O: everything here is pure
// assembly over already-resolved data.
package plot

// OmitLabel marks a series that stays on the plot but is left out of
// the legend.
const OmitLabel = "_nolegend_"

// Style selects how a series is drawn.
type Style int

const (
	StyleLine Style = iota
	StylePoint
)

// Line is one series of a group: a label, aligned x/y data and a style.
type Line struct {
	Label string
	X     []float64
	Y     []float64
	Style Style
}

// Group is one logical figure: a title, its series in draw order, and
// whether the color cycle restarts at the group boundary.
type Group struct {
	Title       string
	Lines       []Line
	ResetColors bool
}

// Legended reports whether the line carries a visible legend entry.
func (l Line) Legended() bool {
	return l.Label != OmitLabel && l.Label != ""
}
