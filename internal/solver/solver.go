package solver

import (
	"context"
	"time"

	"svw.info/godoku/internal/domain"
	"svw.info/godoku/internal/ports"
)

// ConstraintSolver solves grids by constraint propagation, falling back to
// depth-first search over the cells propagation cannot determine.
type ConstraintSolver struct {
	top *Topology // cached for repeated solves of the same shape
}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

func (s *ConstraintSolver) topologyFor(n int) (*Topology, error) {
	if s.top != nil && s.top.Size == n {
		return s.top, nil
	}
	t, err := NewTopology(n, n)
	if err != nil {
		return nil, err
	}
	s.top = t
	return t, nil
}

// Solve seeds the engine with g's clues and searches for a completion.
// Conflicting clues yield domain.ErrInputConflict; an exhausted search
// yields domain.ErrNoSolution. g is not modified.
func (s *ConstraintSolver) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	top, err := s.topologyFor(g.Size)
	if err != nil {
		return nil, ports.Stats{}, err
	}

	e := newEngine(top)
	if err := e.seed(g); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	nodes, ok := e.search(ctx)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}

	out := g.Clone()
	e.readInto(out)
	return out, st, nil
}
