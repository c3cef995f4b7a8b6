package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"svw.info/godoku/internal/domain"
)

// Writer saves a solved grid as solution_<name> beside the input file.
type Writer struct{}

func NewWriter() *Writer { return &Writer{} }

// SolutionPath derives the output location for a given input path.
func SolutionPath(inputPath string) string {
	dir, base := filepath.Split(inputPath)
	return filepath.Join(dir, "solution_"+base)
}

func (wr *Writer) Write(ctx context.Context, g *domain.Grid, inputPath string) (string, error) {
	out := SolutionPath(inputPath)
	f, err := os.Create(out)
	if err != nil {
		return "", fmt.Errorf("create solution: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	rec := make([]string, g.Size)
	for r := 0; r < g.Size; r++ {
		for c := 0; c < g.Size; c++ {
			rec[c] = strconv.Itoa(g.Cells[r*g.Size+c])
		}
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write solution: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("write solution: %w", err)
	}
	return out, nil
}
