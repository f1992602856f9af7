package graph

import "encoding/json"

// Dense is a square row-major matrix of float64 values backed by a flat
// slice.
type Dense struct {
	n    int
	data []float64
}

// newDense creates an n×n zero matrix.
func newDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// Size returns the matrix dimension n.
func (m *Dense) Size() int {
	return m.n
}

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

func (m *Dense) set(i, j int, v float64) {
	m.data[i*m.n+j] = v
}

// Row returns row i as a slice view into the backing storage.
func (m *Dense) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// MarshalJSON encodes the matrix as an array of rows.
func (m *Dense) MarshalJSON() ([]byte, error) {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = m.Row(i)
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes an array of rows. All rows must have the same
// length as the row count.
func (m *Dense) UnmarshalJSON(data []byte) error {
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	n := len(rows)
	flat := make([]float64, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return errNotSquare
		}
		flat = append(flat, row...)
	}
	m.n = n
	m.data = flat
	return nil
}
