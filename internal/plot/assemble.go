package plot

import (
	"strings"

	"github.com/san-kum/sumviz/internal/series"
)

// DefaultLegendCap is the default number of cases that get visible
// legend entries per group.
const DefaultLegendCap = 5

// SummarySource is the per-case summary capability the assembler needs.
type SummarySource interface {
	Name() string
	HasKey(key string) bool
	Timestamps(key string) []float64
	Values(key string) []float64
}

// Options are the layout flags of one render pass.
type Options struct {
	SingleFigure bool
	NoLegend     bool
	Historic     bool
	LegendCap    int // 0 disables the cap
}

// Assemble groups the resolved plain keys and restart series into plot
// groups. In the default mode every key and every spec gets its own
// group with a fresh color cycle; with SingleFigure everything lands in
// one untitled group sharing a single color cycle, with labels prefixed
// by their originating vector or spec.
func Assemble(keys []string, rseries []series.Series, cases []SummarySource, opts Options) []Group {
	if opts.SingleFigure {
		return []Group{assembleSingle(keys, rseries, cases, opts)}
	}

	var groups []Group
	for _, key := range keys {
		g := Group{Title: key, ResetColors: true}
		g.Lines = append(g.Lines, plainLines(key, cases, opts, false)...)
		groups = append(groups, g)
	}
	for _, sg := range groupBySpec(rseries) {
		g := Group{Title: sg.title, ResetColors: true}
		for _, s := range sg.members {
			g.Lines = append(g.Lines, restartLine(s, opts, false))
		}
		groups = append(groups, g)
	}
	return groups
}

func assembleSingle(keys []string, rseries []series.Series, cases []SummarySource, opts Options) Group {
	g := Group{Title: "", ResetColors: false}
	for _, key := range keys {
		g.Lines = append(g.Lines, plainLines(key, cases, opts, true)...)
	}
	for _, s := range rseries {
		g.Lines = append(g.Lines, restartLine(s, opts, true))
	}
	return g
}

// plainLines builds one line per case that carries the key, plus the
// historic overlay from the reference case when requested. A case
// lacking the key is skipped, never an error.
func plainLines(key string, cases []SummarySource, opts Options, prefixed bool) []Line {
	var lines []Line
	for ci, c := range cases {
		if !c.HasKey(key) {
			continue
		}
		lines = append(lines, Line{
			Label: seriesLabel(key, c.Name(), ci, opts, prefixed),
			X:     c.Timestamps(key),
			Y:     c.Values(key),
			Style: StyleLine,
		})
	}
	if opts.Historic && len(cases) > 0 {
		ref := cases[0]
		hist := historicKey(key)
		if ref.HasKey(hist) {
			lines = append(lines, Line{
				Label: OmitLabel,
				X:     ref.Timestamps(hist),
				Y:     ref.Values(hist),
				Style: StylePoint,
			})
		}
	}
	return lines
}

func restartLine(s series.Series, opts Options, prefixed bool) Line {
	return Line{
		Label: seriesLabel(s.Spec.String(), s.Case, s.CaseIndex, opts, prefixed),
		X:     s.Days,
		Y:     s.Values,
		Style: StyleLine,
	}
}

func seriesLabel(vector, caseName string, caseIndex int, opts Options, prefixed bool) string {
	if opts.NoLegend {
		return OmitLabel
	}
	if opts.LegendCap > 0 && caseIndex >= opts.LegendCap {
		return OmitLabel
	}
	label := strings.ToLower(caseName)
	if prefixed {
		label = strings.ToLower(vector) + " " + label
	}
	return label
}

// historicKey maps a vector key to its historic variant: the base name
// gets a fixed H suffix, the qualifier is preserved.
func historicKey(key string) string {
	if colon := strings.IndexByte(key, ':'); colon >= 0 {
		return key[:colon] + "H" + key[colon:]
	}
	return key + "H"
}

type specGroup struct {
	title   string
	members []series.Series
}

// groupBySpec partitions the flat series list by spec, preserving the
// order in which specs first appear.
func groupBySpec(rseries []series.Series) []specGroup {
	var groups []specGroup
	index := make(map[string]int)
	for _, s := range rseries {
		title := s.Spec.String()
		i, ok := index[title]
		if !ok {
			i = len(groups)
			index[title] = i
			groups = append(groups, specGroup{title: title})
		}
		groups[i].members = append(groups[i].members, s)
	}
	return groups
}
