package solver

import (
	"context"
	"fmt"

	"svw.info/godoku/internal/domain"
)

// seed assigns every clue of g to the engine. A failure here means the
// clues themselves are mutually inconsistent.
func (e *engine) seed(g *domain.Grid) error {
	for i, v := range g.Cells {
		if v == 0 {
			continue
		}
		if !e.assign(i, v) {
			return fmt.Errorf("%w: value %d at row %d, column %d",
				domain.ErrInputConflict, v, g.Row(i), g.Col(i))
		}
	}
	return nil
}

// frame records one branch point: the store as it was before the trial,
// the chosen cell, and the candidate values not yet tried.
type frame struct {
	snap candidates
	cell int
	vals []int
}

// search resolves every cell propagation left open, branching on the
// undetermined cell with the fewest candidates and trying its values in
// ascending order. The stack of frames is explicit so recursion depth
// never tracks grid size. Returns the number of assignments tried and
// whether a full solution was reached.
func (e *engine) search(ctx context.Context) (int, bool) {
	nodes := 0
	var stack []frame
	for {
		if ctx.Err() != nil {
			return nodes, false
		}
		cell := e.pickCell()
		if cell < 0 {
			return nodes, true
		}
		stack = append(stack, frame{snap: e.cand.snapshot(), cell: cell, vals: e.cand.values(cell)})

		// Take the next untried value from the top frame, unwinding frames
		// that have run out of values.
		for {
			if len(stack) == 0 {
				return nodes, false
			}
			top := &stack[len(stack)-1]
			if len(top.vals) == 0 {
				e.cand.restore(top.snap)
				stack = stack[:len(stack)-1]
				continue
			}
			v := top.vals[0]
			top.vals = top.vals[1:]
			e.cand.restore(top.snap)
			nodes++
			if e.assign(top.cell, v) {
				break
			}
		}
	}
}

// pickCell returns the undetermined cell with the fewest candidates,
// preferring the lowest linear index on ties, or -1 when every cell is
// fixed.
func (e *engine) pickCell() int {
	best, bestCount := -1, 0
	for i := range e.cand {
		n := e.cand.count(i)
		if n > 1 && (best < 0 || n < bestCount) {
			best, bestCount = i, n
		}
	}
	return best
}
