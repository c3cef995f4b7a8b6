package ports

import (
	"context"
	"time"

	"svw.info/godoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver produces a completed grid from a partially filled one.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/block).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// GridReader loads a puzzle from an external source.
type GridReader interface {
	Load(ctx context.Context, path string) (*domain.Grid, error)
}

// GridWriter persists a solved grid, derived from the input location,
// and returns the path it wrote.
type GridWriter interface {
	Write(ctx context.Context, g *domain.Grid, inputPath string) (string, error)
}
