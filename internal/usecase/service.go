package usecase

import (
	"context"
	"errors"
	"fmt"

	"svw.info/godoku/internal/domain"
	"svw.info/godoku/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Reader    ports.GridReader
	Writer    ports.GridWriter
}

func NewService(s ports.Solver, v ports.Validator, r ports.GridReader, w ports.GridWriter) *Service {
	return &Service{Solver: s, Validator: v, Reader: r, Writer: w}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Result collects everything one solve run produced. Input is set as soon
// as loading succeeds, even when a later stage fails.
type Result struct {
	Input  *domain.Grid
	Output *domain.Grid
	Stats  ports.Stats
	Path   string // written solution file
}

// Run drives the full pipeline: load the puzzle, solve it, double-check
// the completed grid, and write the solution next to the input. Errors
// carry the domain sentinels so callers can tell conflicting clues and
// exhausted searches from IO failures.
func (u *Service) Run(ctx context.Context, path string) (*Result, error) {
	if u.Solver == nil || u.Validator == nil || u.Reader == nil || u.Writer == nil {
		return nil, errNotConfigured
	}

	in, err := u.Reader.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	res := &Result{Input: in}

	out, st, err := u.Solver.Solve(ctx, in)
	res.Stats = st
	if err != nil {
		return res, err
	}
	res.Output = out

	ok, conf, err := u.Validator.Validate(ctx, out)
	if err != nil {
		return res, err
	}
	if !ok {
		return res, fmt.Errorf("%w: solver output failed validation with %d conflicts",
			domain.ErrNoSolution, len(conf))
	}

	written, err := u.Writer.Write(ctx, out, path)
	if err != nil {
		return res, err
	}
	res.Path = written
	return res, nil
}

// Solve runs the solver alone, without touching the filesystem.
func (u *Service) Solve(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

// Validate checks a grid against the row/column/block constraints.
func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}
