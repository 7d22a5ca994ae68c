package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/sumviz/internal/config"
	"github.com/san-kum/sumviz/internal/plot"
)

func testGroups() []plot.Group {
	line := plot.Line{
		Label: "case1",
		X:     []float64{0, 30, 60},
		Y:     []float64{100, 95, 90},
	}
	return []plot.Group{
		{Title: "FOPR", Lines: []plot.Line{line}, ResetColors: true},
		{Title: "FGPR", Lines: []plot.Line{line}, ResetColors: true},
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, config.DefaultConfig())

	r.Render(testGroups())

	out := buf.String()
	for _, want := range []string{"FOPR", "FGPR", "case1", "days 0 - 60"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRender_ColorCycle(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, config.DefaultConfig())

	groups := testGroups()
	r.Render(groups)
	if r.next != 1 {
		t.Errorf("cycle offset = %d after reset groups, want 1", r.next)
	}

	// Shared-figure groups keep the cycle running.
	groups[1].ResetColors = false
	buf.Reset()
	r.next = 0
	r.Render(groups)
	if r.next != 2 {
		t.Errorf("cycle offset = %d without reset, want 2", r.next)
	}
}

func TestRender_OmittedLegend(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, config.DefaultConfig())

	r.Render([]plot.Group{{
		Title: "FOPR",
		Lines: []plot.Line{{
			Label: plot.OmitLabel,
			X:     []float64{0, 30},
			Y:     []float64{1, 2},
		}},
		ResetColors: true,
	}})

	if strings.Contains(buf.String(), plot.OmitLabel) {
		t.Error("sentinel label leaked into output")
	}
}

func TestRender_EmptyGroup(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, config.DefaultConfig())

	r.Render([]plot.Group{{Title: "FOPR", ResetColors: true}})

	if !strings.Contains(buf.String(), "no data") {
		t.Error("expected no-data notice")
	}
}
