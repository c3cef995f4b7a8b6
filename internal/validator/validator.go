package validator

import (
	"context"

	"svw.info/godoku/internal/domain"
)

// FastValidator accepts a grid iff every cell is filled and every row,
// column, and block holds the values 1..N exactly once. It inspects only
// the grid itself, so it works on externally supplied grids as well as
// solver output.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	n := g.Size
	conf := make([]domain.CellCoord, 0, 8)

	// out-of-range and unknown cells
	for i, val := range g.Cells {
		if val < 1 || val > n {
			conf = append(conf, domain.CellCoord{Row: i / n, Col: i % n})
		}
	}
	// rows
	for r := 0; r < n; r++ {
		var m uint32
		for c := 0; c < n; c++ {
			val := g.Cells[r*n+c]
			if val < 1 || val > n {
				continue
			}
			bit := uint32(1) << uint(val-1)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < n; c++ {
		var m uint32
		for r := 0; r < n; r++ {
			val := g.Cells[r*n+c]
			if val < 1 || val > n {
				continue
			}
			bit := uint32(1) << uint(val-1)
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// blocks
	rank := g.Rank
	for br := 0; br < rank; br++ {
		for bc := 0; bc < rank; bc++ {
			var m uint32
			for dr := 0; dr < rank; dr++ {
				for dc := 0; dc < rank; dc++ {
					r := br*rank + dr
					c := bc*rank + dc
					val := g.Cells[r*n+c]
					if val < 1 || val > n {
						continue
					}
					bit := uint32(1) << uint(val-1)
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
