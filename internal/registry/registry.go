// Package registry opens and holds the simulation cases named on the
// command line for the duration of one render pass.
package registry

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/sumviz/internal/caseio"
)

var ErrNoCases = errors.New("registry: no openable simulation cases")

// Case is one opened simulation case: the summary handle plus lazy
// grid/restart handles, loaded on first use.
type Case struct {
	name        string
	Summary     *caseio.Summary
	gridPath    string
	restartPath string

	grid    *caseio.Grid
	restart *caseio.Restart
}

func (c *Case) Name() string { return c.name }

// HasRestart reports whether the case has both its grid and restart
// files on disk.
func (c *Case) HasRestart() bool {
	if _, err := os.Stat(c.gridPath); err != nil {
		return false
	}
	_, err := os.Stat(c.restartPath)
	return err == nil
}

func (c *Case) Grid() (*caseio.Grid, error) {
	if c.grid == nil {
		g, err := caseio.LoadGrid(c.gridPath)
		if err != nil {
			return nil, err
		}
		c.grid = g
	}
	return c.grid, nil
}

func (c *Case) Restart() (*caseio.Restart, error) {
	if c.restart == nil {
		r, err := caseio.LoadRestart(c.restartPath)
		if err != nil {
			return nil, err
		}
		c.restart = r
	}
	return c.restart, nil
}

// Summary capability accessors, so consumers can stay on the narrow
// vocabulary interface instead of reaching through to caseio.
func (c *Case) Keys(pattern string) []string    { return c.Summary.Keys(pattern) }
func (c *Case) HasKey(key string) bool          { return c.Summary.HasKey(key) }
func (c *Case) Timestamps(key string) []float64 { return c.Summary.Timestamps(key) }
func (c *Case) Values(key string) []float64     { return c.Summary.Values(key) }

// Registry is the ordered set of opened cases. The first case is the
// reference case for vector resolution.
type Registry struct {
	cases []*Case
}

// Open tries each token as a case; tokens that do not open are returned
// as leftovers in their original order for vector/flag classification.
func Open(tokens []string) (*Registry, []string) {
	r := &Registry{}
	var leftovers []string
	for _, token := range tokens {
		if c, ok := tryOpen(token); ok {
			r.cases = append(r.cases, c)
		} else {
			leftovers = append(leftovers, token)
		}
	}
	return r, leftovers
}

// tryOpen treats the token as a path to CASE.DATA (the .DATA suffix is
// optional) and opens it when the companion summary CSV loads.
func tryOpen(token string) (*Case, bool) {
	base := strings.TrimSuffix(token, ".DATA")
	name := filepath.Base(base)
	summary, err := caseio.LoadSummary(name, base+".csv")
	if err != nil {
		return nil, false
	}
	return &Case{
		name:        name,
		Summary:     summary,
		gridPath:    base + ".grid.json",
		restartPath: base + ".rst.json",
	}, true
}

func (r *Registry) Len() int       { return len(r.cases) }
func (r *Registry) Cases() []*Case { return r.cases }

// Reference returns the first opened case.
func (r *Registry) Reference() *Case {
	if len(r.cases) == 0 {
		return nil
	}
	return r.cases[0]
}
