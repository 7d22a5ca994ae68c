// Package series builds (timestamp, value) sequences from restart
// snapshots for restart-indexed vector specs.
package series

import (
	"fmt"
	"io"

	"github.com/san-kum/sumviz/internal/caseio"
	"github.com/san-kum/sumviz/internal/resolve"
)

// Saturation quantities. SOIL is never stored: it is derived from the
// water and gas saturations read at the same report step and cell.
const (
	WaterSaturation = "SWAT"
	GasSaturation   = "SGAS"
	OilSaturation   = "SOIL"
)

// The report-step count of a case is the record count of this quantity
// in its restart data.
const referenceQuantity = WaterSaturation

// Source is the grid/restart capability of one case.
type Source interface {
	Name() string
	HasRestart() bool
	Grid() (*caseio.Grid, error)
	Restart() (*caseio.Restart, error)
}

// Series is the restart time series for one (spec, case) pair, one
// point per report step of that case.
type Series struct {
	Spec      resolve.RestartSpec
	Case      string
	CaseIndex int
	Days      []float64
	Values    []float64
}

// Build produces one Series per (spec, case) pair, ordered by spec then
// case. A case that cannot serve a spec (missing grid/restart files,
// inactive cell, absent quantity) is skipped with a diagnostic on warn;
// the remaining cases proceed.
func Build(specs []resolve.RestartSpec, cases []Source, warn io.Writer) []Series {
	var out []Series
	for _, spec := range specs {
		for ci, c := range cases {
			s, err := build(spec, c)
			if err != nil {
				fmt.Fprintf(warn, "warning: %s: skipping %s: %v\n", c.Name(), spec, err)
				continue
			}
			s.CaseIndex = ci
			out = append(out, s)
		}
	}
	return out
}

func build(spec resolve.RestartSpec, c Source) (Series, error) {
	if !c.HasRestart() {
		return Series{}, fmt.Errorf("no grid/restart files")
	}
	grid, err := c.Grid()
	if err != nil {
		return Series{}, err
	}
	cell, err := grid.ActiveIndex(spec.I, spec.J, spec.K)
	if err != nil {
		return Series{}, err
	}
	rst, err := c.Restart()
	if err != nil {
		return Series{}, err
	}

	steps := rst.NumRecords(referenceQuantity)
	if steps == 0 {
		return Series{}, fmt.Errorf("restart data has no %s records", referenceQuantity)
	}

	s := Series{
		Spec:   spec,
		Case:   c.Name(),
		Days:   make([]float64, 0, steps),
		Values: make([]float64, 0, steps),
	}
	for step := 0; step < steps; step++ {
		v, err := value(rst, spec.Quantity, step, cell)
		if err != nil {
			return Series{}, err
		}
		s.Days = append(s.Days, rst.Days(step))
		s.Values = append(s.Values, v)
	}
	return s, nil
}

func value(rst *caseio.Restart, quantity string, step, cell int) (float64, error) {
	if quantity == OilSaturation {
		sw, err := rst.Solution(step, WaterSaturation)
		if err != nil {
			return 0, err
		}
		sg, err := rst.Solution(step, GasSaturation)
		if err != nil {
			return 0, err
		}
		if cell >= len(sw) || cell >= len(sg) {
			return 0, fmt.Errorf("cell %d beyond saturation solutions", cell)
		}
		return 1 - sw[cell] - sg[cell], nil
	}
	sol, err := rst.Solution(step, quantity)
	if err != nil {
		return 0, err
	}
	if cell >= len(sol) {
		return 0, fmt.Errorf("cell %d beyond %s solution of %d values", cell, quantity, len(sol))
	}
	return sol[cell], nil
}
