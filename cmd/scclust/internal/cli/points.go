package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// loadPoints reads a CSV of numeric rows into a flat row-major []float64,
// returning the point count and dimensionality alongside it.
func loadPoints(path string) (data []float64, n, dims int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, 0, 0, err
	}
	if len(rows) == 0 {
		return nil, 0, 0, fmt.Errorf("scclust: %s contains no rows", path)
	}

	dims = len(rows[0])
	data = make([]float64, 0, len(rows)*dims)
	for i, row := range rows {
		if len(row) != dims {
			return nil, 0, 0, fmt.Errorf("scclust: row %d has %d columns, want %d", i, len(row), dims)
		}
		for _, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, 0, 0, fmt.Errorf("scclust: row %d: %w", i, err)
			}
			data = append(data, v)
		}
	}
	return data, len(rows), dims, nil
}
