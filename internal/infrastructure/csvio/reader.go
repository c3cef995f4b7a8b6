package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"svw.info/godoku/internal/domain"
)

// Reader loads puzzles from CSV files. A cell holding a digit string in
// 1..N is a clue; every other token (blank, letter, zero, or a number past
// N) marks an unknown cell.
type Reader struct{}

func NewReader() *Reader { return &Reader{} }

func (rd *Reader) Load(ctx context.Context, path string) (*domain.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open puzzle: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // shape is checked below, with a better error
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read puzzle: %w", err)
	}

	nRow := len(rows)
	if nRow == 0 {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidShape)
	}
	for i, row := range rows {
		if len(row) != nRow {
			return nil, fmt.Errorf("%w: %d rows but row %d has %d columns",
				domain.ErrInvalidShape, nRow, i, len(row))
		}
	}

	g, err := domain.NewGrid(nRow)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, tok := range row {
			v, err := strconv.Atoi(strings.TrimSpace(tok))
			if err == nil && v >= 1 && v <= nRow {
				g.Cells[i*nRow+j] = v
			}
		}
	}
	return g, nil
}
