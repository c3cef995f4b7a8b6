package solver

import (
	"errors"
	"testing"

	"svw.info/godoku/internal/domain"
)

func TestNewTopologyRejectsBadShapes(t *testing.T) {
	cases := []struct {
		name       string
		nRow, nCol int
	}{
		{"not square", 8, 9},
		{"not a perfect square", 6, 6},
		{"too small", 2, 2},
		{"prime", 7, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewTopology(tc.nRow, tc.nCol); !errors.Is(err, domain.ErrInvalidShape) {
				t.Fatalf("NewTopology(%d, %d): want ErrInvalidShape, got %v", tc.nRow, tc.nCol, err)
			}
		})
	}
	for _, n := range []int{4, 9, 16, 25} {
		if _, err := NewTopology(n, n); err != nil {
			t.Fatalf("NewTopology(%d, %d) failed: %v", n, n, err)
		}
	}
}

func TestTopologyPeerCounts(t *testing.T) {
	top, err := NewTopology(9, 9)
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}
	for i := 0; i < 81; i++ {
		if got := len(top.RowPeers(i)); got != 8 {
			t.Fatalf("cell %d: want 8 row peers, got %d", i, got)
		}
		if got := len(top.ColPeers(i)); got != 8 {
			t.Fatalf("cell %d: want 8 col peers, got %d", i, got)
		}
		if got := len(top.BlockPeers(i)); got != 8 {
			t.Fatalf("cell %d: want 8 block peers, got %d", i, got)
		}
		if got := len(top.Peers(i)); got != 20 {
			t.Fatalf("cell %d: want 20 peers in the union, got %d", i, got)
		}
	}
}

func TestTopologyPeersSymmetricIrreflexive(t *testing.T) {
	top, err := NewTopology(9, 9)
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}
	peers := make([]map[int]bool, 81)
	for i := 0; i < 81; i++ {
		peers[i] = make(map[int]bool, 20)
		for _, p := range top.Peers(i) {
			peers[i][p] = true
		}
	}
	for i := 0; i < 81; i++ {
		if peers[i][i] {
			t.Fatalf("cell %d lists itself as a peer", i)
		}
		for p := range peers[i] {
			if !peers[p][i] {
				t.Fatalf("peer relation not symmetric: %d has %d but not vice versa", i, p)
			}
		}
	}
}

func TestTopologyBlockPeersOfCorner(t *testing.T) {
	top, err := NewTopology(9, 9)
	if err != nil {
		t.Fatalf("NewTopology failed: %v", err)
	}
	want := map[int]bool{1: true, 2: true, 9: true, 10: true, 11: true, 18: true, 19: true, 20: true}
	for _, p := range top.BlockPeers(0) {
		if !want[p] {
			t.Fatalf("cell 0: unexpected block peer %d", p)
		}
		delete(want, p)
	}
	if len(want) != 0 {
		t.Fatalf("cell 0: missing block peers %v", want)
	}
}
