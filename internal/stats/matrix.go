package stats

import (
	"math"

	"github.com/pkg/errors"
)

// Matrix is a square Pearson correlation matrix over named columns.
type Matrix struct {
	Columns []string    `json:"columns" yaml:"columns"`
	Cells   [][]float64 `json:"cells" yaml:"cells"`
}

// CorrelationMatrix computes the pairwise Pearson correlations of the given
// columns. Each off-diagonal cell is computed once and mirrored; a diagonal
// cell is exactly 1 unless the column is constant, in which case it is 0
// to match the zero-variance convention of Correlation.
func CorrelationMatrix(names []string, columns [][]float64) (*Matrix, error) {
	if len(names) != len(columns) {
		return nil, errors.New("stats: names and columns differ in length")
	}
	if len(columns) == 0 {
		return nil, errors.New("stats: correlation matrix needs at least one column")
	}
	rows := len(columns[0])
	for _, col := range columns {
		if len(col) != rows {
			return nil, errors.New("stats: correlation matrix columns differ in length")
		}
	}

	n := len(columns)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		if Variance(columns[i]) > 0 {
			cells[i][i] = 1
		}
		for j := i + 1; j < n; j++ {
			r := Correlation(columns[i], columns[j])
			cells[i][j] = r
			cells[j][i] = r
		}
	}
	cols := make([]string, n)
	copy(cols, names)
	return &Matrix{Columns: cols, Cells: cells}, nil
}

// At returns the cell at row i, column j.
func (m *Matrix) At(i, j int) float64 { return m.Cells[i][j] }

// Symmetric reports whether every pair of mirrored cells agrees within tol.
func (m *Matrix) Symmetric(tol float64) bool {
	for i := range m.Cells {
		for j := i + 1; j < len(m.Cells); j++ {
			if math.Abs(m.Cells[i][j]-m.Cells[j][i]) > tol {
				return false
			}
		}
	}
	return true
}

// UnitDiagonal reports whether every diagonal cell is 1 within tol.
func (m *Matrix) UnitDiagonal(tol float64) bool {
	for i := range m.Cells {
		if math.Abs(m.Cells[i][i]-1) > tol {
			return false
		}
	}
	return true
}
