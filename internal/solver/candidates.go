package solver

import "math/bits"

// candidates tracks the still-possible values of every cell as one bitmask
// per cell: bit v-1 set means value v is not yet ruled out. A uint32 covers
// grids up to rank 5 (25×25), the largest size the solver targets.
type candidates []uint32

func newCandidates(n int) candidates {
	full := uint32(1)<<uint(n) - 1
	c := make(candidates, n*n)
	for i := range c {
		c[i] = full
	}
	return c
}

func (c candidates) has(cell, v int) bool { return c[cell]&(1<<uint(v-1)) != 0 }

func (c candidates) count(cell int) int { return bits.OnesCount32(c[cell]) }

// fixed reports whether cell has collapsed to a single candidate.
func (c candidates) fixed(cell int) bool { return bits.OnesCount32(c[cell]) == 1 }

// sole returns the lowest candidate of cell; for a fixed cell that is its
// assigned value.
func (c candidates) sole(cell int) int { return bits.TrailingZeros32(c[cell]) + 1 }

func (c candidates) remove(cell, v int) { c[cell] &^= 1 << uint(v-1) }

// values lists the candidates of cell in ascending order. The slice is
// freshly allocated and safe to hold across mutations.
func (c candidates) values(cell int) []int {
	out := make([]int, 0, bits.OnesCount32(c[cell]))
	for m := c[cell]; m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros32(m)+1)
	}
	return out
}

// snapshot copies the whole store. Snapshots share no storage with the
// live store, so a later restore is exact.
func (c candidates) snapshot() candidates {
	out := make(candidates, len(c))
	copy(out, c)
	return out
}

func (c candidates) restore(snap candidates) { copy(c, snap) }

// equal compares two stores by value.
func (c candidates) equal(other candidates) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}
