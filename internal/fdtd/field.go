package fdtd

// Field represents any scalar field (electric, magnetic, current) sampled
// over discrete time rows and space columns. The buffer is time-major: the
// first index is the time row n, the second the spatial column i. A cursor
// marks the row representing "now"; each Field manages its cursor
// independently.
type Field struct {
	numN, numI int
	n          int
	data       [][]float64
}

// NewField returns a zero-initialized field with numN time rows and numI
// spatial columns, cursor at 0.
func NewField(numN, numI int) *Field {
	data := make([][]float64, numN)
	for n := range data {
		data[n] = make([]float64, numI)
	}
	return &Field{numN: numN, numI: numI, data: data}
}

// NewFieldFrom builds a field from a caller-supplied time-major buffer,
// whose shape determines the dimensions. The buffer is deep-copied.
func NewFieldFrom(buf [][]float64) (*Field, error) {
	if len(buf) == 0 || len(buf[0]) == 0 {
		return nil, ErrEmptyField
	}
	numI := len(buf[0])
	data := make([][]float64, len(buf))
	for n, row := range buf {
		if len(row) != numI {
			return nil, ErrLengthMismatch
		}
		data[n] = make([]float64, numI)
		copy(data[n], row)
	}
	return &Field{numN: len(buf), numI: numI, data: data}, nil
}

// TimeLen returns the number of time rows.
func (f *Field) TimeLen() int { return f.numN }

// SpaceLen returns the number of spatial columns.
func (f *Field) SpaceLen() int { return f.numI }

// TimeIndex returns the current time cursor.
func (f *Field) TimeIndex() int { return f.n }

// SetTimeIndex moves the cursor to n. On failure the cursor is unchanged.
func (f *Field) SetTimeIndex(n int) error {
	if n < 0 || n >= f.numN {
		return ErrTimeIndexOutOfRange
	}
	f.n = n
	return nil
}

// Row returns a copy of the current time row.
func (f *Field) Row() []float64 {
	row := make([]float64, f.numI)
	copy(row, f.data[f.n])
	return row
}

// RowAt returns a copy of the row at time n.
func (f *Field) RowAt(n int) ([]float64, error) {
	if n < 0 || n >= f.numN {
		return nil, ErrTimeIndexOutOfRange
	}
	row := make([]float64, f.numI)
	copy(row, f.data[n])
	return row, nil
}

// Value returns the value at the current row and column i. Columns outside
// [0, SpaceLen) read as zero: the open boundary condition, not an error.
func (f *Field) Value(i int) float64 {
	if i < 0 || i >= f.numI {
		return 0
	}
	return f.data[f.n][i]
}

// SetValue writes into the current row at column i. Unlike reads, writes
// outside the spatial range are rejected.
func (f *Field) SetValue(i int, v float64) error {
	if i < 0 || i >= f.numI {
		return ErrSpatialIndexOutOfRange
	}
	f.data[f.n][i] = v
	return nil
}

// SetRow replaces the current time row.
func (f *Field) SetRow(row []float64) error {
	return f.SetRowAt(row, f.n)
}

// SetRowAt replaces the row at time n. On failure the field is unchanged.
func (f *Field) SetRowAt(row []float64, n int) error {
	if len(row) != f.numI {
		return ErrLengthMismatch
	}
	if n < 0 || n >= f.numN {
		return ErrTimeIndexOutOfRange
	}
	copy(f.data[n], row)
	return nil
}

// Advance copies the current row into row n+1 and moves the cursor to n+1.
// At the final row it fails with ErrTimeExhausted and the field is left
// unmodified.
func (f *Field) Advance() error {
	if f.n+1 >= f.numN {
		return ErrTimeExhausted
	}
	copy(f.data[f.n+1], f.data[f.n])
	f.n++
	return nil
}

// Export returns a deep copy of the full time-major buffer.
func (f *Field) Export() [][]float64 {
	out := make([][]float64, f.numN)
	for n := range f.data {
		out[n] = make([]float64, f.numI)
		copy(out[n], f.data[n])
	}
	return out
}
