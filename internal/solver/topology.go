package solver

import (
	"fmt"
	"math"

	"svw.info/godoku/internal/domain"
)

// Topology holds, for every cell of an N×N grid, the indices of the cells
// sharing its row, column, and block, plus their union. It is a pure
// function of the grid shape: computed once, then shared read-only by
// every solve on a grid of that shape.
type Topology struct {
	Size int
	Rank int

	rowPeers   [][]int
	colPeers   [][]int
	blockPeers [][]int
	allPeers   [][]int
}

// NewTopology derives the peer sets for an nRow×nCol grid. Both dimensions
// must agree and be a perfect square of at least 4.
func NewTopology(nRow, nCol int) (*Topology, error) {
	if nRow != nCol {
		return nil, fmt.Errorf("%w: %dx%d is not square", domain.ErrInvalidShape, nRow, nCol)
	}
	rank := int(math.Sqrt(float64(nCol)))
	if nCol < 4 || rank*rank != nCol {
		return nil, fmt.Errorf("%w: %d rows is not a perfect square of at least 4", domain.ErrInvalidShape, nCol)
	}

	n := nCol
	t := &Topology{
		Size:       n,
		Rank:       rank,
		rowPeers:   make([][]int, n*n),
		colPeers:   make([][]int, n*n),
		blockPeers: make([][]int, n*n),
		allPeers:   make([][]int, n*n),
	}
	for i := 0; i < n*n; i++ {
		r, c := i/n, i%n

		row := make([]int, 0, n-1)
		for cc := 0; cc < n; cc++ {
			if j := r*n + cc; j != i {
				row = append(row, j)
			}
		}

		col := make([]int, 0, n-1)
		for rr := 0; rr < n; rr++ {
			if j := rr*n + c; j != i {
				col = append(col, j)
			}
		}

		block := make([]int, 0, n-1)
		br, bc := (r/rank)*rank, (c/rank)*rank
		for dr := 0; dr < rank; dr++ {
			for dc := 0; dc < rank; dc++ {
				if j := (br+dr)*n + (bc + dc); j != i {
					block = append(block, j)
				}
			}
		}

		seen := make([]bool, n*n)
		all := make([]int, 0, 3*(n-1))
		for _, group := range [][]int{row, col, block} {
			for _, j := range group {
				if !seen[j] {
					seen[j] = true
					all = append(all, j)
				}
			}
		}

		t.rowPeers[i] = row
		t.colPeers[i] = col
		t.blockPeers[i] = block
		t.allPeers[i] = all
	}
	return t, nil
}

// RowPeers returns the row peers of cell i. Callers must not mutate the
// returned slice.
func (t *Topology) RowPeers(i int) []int { return t.rowPeers[i] }

// ColPeers returns the column peers of cell i.
func (t *Topology) ColPeers(i int) []int { return t.colPeers[i] }

// BlockPeers returns the block peers of cell i.
func (t *Topology) BlockPeers(i int) []int { return t.blockPeers[i] }

// Peers returns the union of row, column, and block peers of cell i.
func (t *Topology) Peers(i int) []int { return t.allPeers[i] }
