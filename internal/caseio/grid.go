package caseio

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var (
	ErrCellOutOfRange = errors.New("caseio: cell out of grid range")
	ErrCellInactive   = errors.New("caseio: cell is not active")
)

// Grid maps 1-based (i,j,k) coordinates to flat active-cell indices.
// Active-cell numbering is specific to one case and never shared.
type Grid struct {
	dims   [3]int
	active []int // global index -> active index, -1 when inactive
}

type gridFile struct {
	Dims   []int `json:"dims"`
	Actnum []int `json:"actnum"`
}

// NewGrid builds a grid from dims and a 0/1 actnum array in natural
// ordering (i fastest, then j, then k).
func NewGrid(dims [3]int, actnum []int) (*Grid, error) {
	total := dims[0] * dims[1] * dims[2]
	if total <= 0 || len(actnum) != total {
		return nil, fmt.Errorf("caseio: actnum length %d does not match dims %v", len(actnum), dims)
	}
	g := &Grid{dims: dims, active: make([]int, total)}
	next := 0
	for i, a := range actnum {
		if a != 0 {
			g.active[i] = next
			next++
		} else {
			g.active[i] = -1
		}
	}
	return g, nil
}

func LoadGrid(path string) (*Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var gf gridFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("caseio: parse grid %s: %w", path, err)
	}
	if len(gf.Dims) != 3 {
		return nil, fmt.Errorf("caseio: grid %s has %d dims, want 3", path, len(gf.Dims))
	}
	return NewGrid([3]int{gf.Dims[0], gf.Dims[1], gf.Dims[2]}, gf.Actnum)
}

func (g *Grid) Dims() [3]int { return g.dims }

// ActiveIndex resolves 1-based (i,j,k) to the flat active-cell index.
func (g *Grid) ActiveIndex(i, j, k int) (int, error) {
	if i < 1 || i > g.dims[0] || j < 1 || j > g.dims[1] || k < 1 || k > g.dims[2] {
		return 0, fmt.Errorf("%w: (%d,%d,%d) in %dx%dx%d", ErrCellOutOfRange, i, j, k, g.dims[0], g.dims[1], g.dims[2])
	}
	global := (i - 1) + (j-1)*g.dims[0] + (k-1)*g.dims[0]*g.dims[1]
	idx := g.active[global]
	if idx < 0 {
		return 0, fmt.Errorf("%w: (%d,%d,%d)", ErrCellInactive, i, j, k)
	}
	return idx, nil
}
