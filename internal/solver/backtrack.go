package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/godoku/internal/domain"
	"svw.info/godoku/internal/ports"
)

// BacktrackingSolver is a straightforward recursive solver with no
// candidate bookkeeping. Slower than the propagation engine; kept as an
// independent cross-check selectable from the CLI.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func allowed(top *Topology, g *domain.Grid, cell, v int) bool {
	for _, p := range top.Peers(cell) {
		if g.Cells[p] == v {
			return false
		}
	}
	return true
}

func findEmpty(g *domain.Grid) int {
	for i, v := range g.Cells {
		if v == 0 {
			return i
		}
	}
	return -1
}

func (s *BacktrackingSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	top, err := NewTopology(g.Size, g.Size)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	grid := g.Clone()
	for i, v := range grid.Cells {
		if v == 0 {
			continue
		}
		for _, p := range top.Peers(i) {
			if p > i && grid.Cells[p] == v {
				return nil, ports.Stats{Duration: time.Since(start)},
					fmt.Errorf("%w: value %d at row %d, column %d",
						domain.ErrInputConflict, v, grid.Row(p), grid.Col(p))
			}
		}
	}

	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		cell := findEmpty(grid)
		if cell < 0 {
			return true
		}
		for v := 1; v <= grid.Size; v++ {
			nodes++
			if allowed(top, grid, cell, v) {
				grid.Cells[cell] = v
				if dfs() {
					return true
				}
				grid.Cells[cell] = 0
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !solved {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}
	return grid, st, nil
}
