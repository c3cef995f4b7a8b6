package solver

import "svw.info/godoku/internal/domain"

// engine pairs a shared peer topology with the live candidate store and
// implements the assign/eliminate protocol. Both operations report
// contradictions by returning false; callers backtrack, they never treat a
// contradiction as a program error.
type engine struct {
	top  *Topology
	cand candidates
}

func newEngine(top *Topology) *engine {
	return &engine{top: top, cand: newCandidates(top.Size)}
}

// assign commits cell to v by eliminating every other candidate of cell.
// Assigning an already-fixed matching value is a no-op success; a v that is
// no longer a candidate is a direct conflict and fails.
func (e *engine) assign(cell, v int) bool {
	if !e.cand.has(cell, v) {
		return false
	}
	if e.cand.fixed(cell) {
		return true
	}
	for _, other := range e.cand.values(cell) {
		if other == v {
			continue
		}
		if !e.eliminate(cell, other) {
			return false
		}
	}
	return true
}

// eliminate removes v from cell's candidates and propagates the two
// consequences: a cell left with one candidate forces that value out of all
// its peers (naked single), and a value left with one place in a row,
// column, or block must be assigned there (hidden single).
func (e *engine) eliminate(cell, v int) bool {
	if !e.cand.has(cell, v) {
		// Can't eliminate what's not there.
		return true
	}
	if e.cand.fixed(cell) {
		// Removing the last candidate would empty the set.
		return false
	}
	e.cand.remove(cell, v)

	if e.cand.fixed(cell) {
		last := e.cand.sole(cell)
		for _, p := range e.top.Peers(cell) {
			if !e.eliminate(p, last) {
				return false
			}
		}
	}

	// v left this cell; each unit of the cell must still have a home for it.
	units := [3][]int{e.top.RowPeers(cell), e.top.ColPeers(cell), e.top.BlockPeers(cell)}
	for _, unit := range units {
		spot, found := -1, 0
		for _, p := range unit {
			if e.cand.has(p, v) {
				spot = p
				found++
			}
		}
		switch found {
		case 0:
			return false
		case 1:
			if !e.assign(spot, v) {
				return false
			}
		}
	}
	return true
}

// readInto copies every fixed cell's value into g.
func (e *engine) readInto(g *domain.Grid) {
	for i := range e.cand {
		if e.cand.fixed(i) {
			g.Cells[i] = e.cand.sole(i)
		}
	}
}
