package core

import "gonum.org/v1/gonum/floats"

// Field stores a square grid of float64 cell values in row-major order. The
// outermost ring of cells is the border; everything else is interior.
type Field struct {
	N    int
	data []float64
}

// NewField allocates a zeroed n×n field.
func NewField(n int) *Field {
	if n <= 0 {
		n = 1
	}
	return &Field{N: n, data: make([]float64, n*n)}
}

// Values exposes the backing slice so callers can read/write values directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for (row, col).
func (f *Field) Index(row, col int) int { return col + row*f.N }

// At returns the value stored at (row, col).
func (f *Field) At(row, col int) float64 { return f.data[col+row*f.N] }

// Set overwrites the value stored at (row, col).
func (f *Field) Set(row, col int, value float64) { f.data[col+row*f.N] = value }

// Add accumulates amount into (row, col).
func (f *Field) Add(row, col int, amount float64) { f.data[col+row*f.N] += amount }

// InBounds reports whether (row, col) addresses a cell of the field.
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < f.N && col >= 0 && col < f.N
}

// Clone returns a deep copy.
func (f *Field) Clone() *Field {
	c := &Field{N: f.N, data: make([]float64, len(f.data))}
	copy(c.data, f.data)
	return c
}

// Sum totals every cell, border included.
func (f *Field) Sum() float64 { return floats.Sum(f.data) }

// Clear fills the field with zeros.
func (f *Field) Clear() {
	for i := range f.data {
		f.data[i] = 0
	}
}
