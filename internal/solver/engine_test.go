package solver

import (
	"errors"
	"testing"

	"svw.info/godoku/internal/domain"
)

func newTestEngine(t *testing.T, n int) *engine {
	t.Helper()
	top, err := NewTopology(n, n)
	if err != nil {
		t.Fatalf("NewTopology(%d, %d) failed: %v", n, n, err)
	}
	return newEngine(top)
}

func TestAssignIdempotent(t *testing.T) {
	e := newTestEngine(t, 9)
	if !e.assign(0, 5) {
		t.Fatalf("assign(0, 5) failed on a fresh store")
	}
	after := e.cand.snapshot()
	if !e.assign(0, 5) {
		t.Fatalf("re-assigning the same value failed")
	}
	if !e.cand.equal(after) {
		t.Fatalf("re-assigning the same value changed the store")
	}
}

func TestAssignRejectsEliminatedValue(t *testing.T) {
	e := newTestEngine(t, 9)
	if !e.assign(0, 5) {
		t.Fatalf("assign(0, 5) failed")
	}
	// 5 is fixed in cell 0, so its row peers cannot take it.
	if e.assign(1, 5) {
		t.Fatalf("assign(1, 5) succeeded against a fixed peer")
	}
}

func TestEliminateAbsentValueIsNoop(t *testing.T) {
	e := newTestEngine(t, 9)
	if !e.assign(0, 5) {
		t.Fatalf("assign(0, 5) failed")
	}
	before := e.cand.snapshot()
	if !e.eliminate(0, 7) {
		t.Fatalf("eliminating an already-absent value reported failure")
	}
	if !e.cand.equal(before) {
		t.Fatalf("eliminating an already-absent value changed the store")
	}
}

func TestEliminateLastCandidateFails(t *testing.T) {
	e := newTestEngine(t, 9)
	if !e.assign(0, 5) {
		t.Fatalf("assign(0, 5) failed")
	}
	if e.eliminate(0, 5) {
		t.Fatalf("eliminating the last candidate must fail")
	}
}

func TestSnapshotRestoreExact(t *testing.T) {
	e := newTestEngine(t, 9)
	if !e.assign(3, 2) {
		t.Fatalf("setup assign failed")
	}
	before := e.cand.snapshot()

	if !e.assign(10, 7) {
		t.Fatalf("assign(10, 7) failed")
	}
	if !e.eliminate(40, 1) {
		t.Fatalf("eliminate(40, 1) failed")
	}
	if e.cand.equal(before) {
		t.Fatalf("mutations did not change the store; test is vacuous")
	}

	e.cand.restore(before)
	if !e.cand.equal(before) {
		t.Fatalf("restore did not reproduce the snapshot exactly")
	}
}

func TestSnapshotDoesNotAliasLiveStore(t *testing.T) {
	e := newTestEngine(t, 4)
	snap := e.cand.snapshot()
	if !e.assign(0, 1) {
		t.Fatalf("assign(0, 1) failed")
	}
	full := uint32(1)<<4 - 1
	for i, m := range snap {
		if m != full {
			t.Fatalf("snapshot cell %d mutated along with the live store", i)
		}
	}
}

func TestSeedConflictOnPeerDuplicate(t *testing.T) {
	e := newTestEngine(t, 9)
	g, err := domain.NewGrid(9)
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	g.Cells[0] = 5
	g.Cells[1] = 5 // same row
	if err := e.seed(g); !errors.Is(err, domain.ErrInputConflict) {
		t.Fatalf("want ErrInputConflict for duplicate row clues, got %v", err)
	}
}
