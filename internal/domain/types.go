package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid holds the values of an N×N puzzle in reading order. Cells are
// addressed by a single linear index; 0 marks an unknown cell.
type Grid struct {
	Size  int   // row and column count N
	Rank  int   // block side, √N
	Cells []int // flat values, row-major
}

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewGrid creates an empty size×size grid. The size must be a perfect
// square of at least 4 for the block structure to exist.
func NewGrid(size int) (*Grid, error) {
	rank := int(math.Sqrt(float64(size)))
	if size < 4 || rank*rank != size {
		return nil, fmt.Errorf("%w: %d rows is not a perfect square of at least 4", ErrInvalidShape, size)
	}
	return &Grid{Size: size, Rank: rank, Cells: make([]int, size*size)}, nil
}

// At returns the value of the cell at linear index i.
func (g *Grid) At(i int) int { return g.Cells[i] }

// Set stores v at linear index i.
func (g *Grid) Set(i, v int) { g.Cells[i] = v }

// Row returns the row of linear index i.
func (g *Grid) Row(i int) int { return i / g.Size }

// Col returns the column of linear index i.
func (g *Grid) Col(i int) int { return i % g.Size }

// Block returns the block number of linear index i, counting blocks in
// reading order.
func (g *Grid) Block(i int) int {
	return (g.Row(i)/g.Rank)*g.Rank + g.Col(i)/g.Rank
}

// Complete reports whether every cell holds a value.
func (g *Grid) Complete() bool {
	for _, v := range g.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing no storage with g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Size: g.Size, Rank: g.Rank, Cells: make([]int, len(g.Cells))}
	copy(out.Cells, g.Cells)
	return out
}

// String renders the grid between dashed bars, one pipe-separated row per
// line. Cell width grows with the largest value so grids past 9×9 stay
// aligned.
func (g *Grid) String() string {
	w := len(strconv.Itoa(g.Size))
	bar := "\t" + strings.Repeat("-", g.Size*(w+1)+1)
	var b strings.Builder
	for r := 0; r < g.Size; r++ {
		b.WriteString(bar)
		b.WriteString("\n\t")
		for c := 0; c < g.Size; c++ {
			fmt.Fprintf(&b, "|%*d", w, g.Cells[r*g.Size+c])
		}
		b.WriteString("|\n")
	}
	b.WriteString(bar)
	return b.String()
}
