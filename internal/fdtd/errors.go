package fdtd

import (
	"errors"
	"fmt"
)

// Domain errors for field and simulation operations.
var (
	// ErrTimeIndexOutOfRange indicates a time cursor or row index outside [0, TimeLen).
	ErrTimeIndexOutOfRange = errors.New("fdtd: time index out of range")

	// ErrSpatialIndexOutOfRange indicates a write outside [0, SpaceLen).
	// Reads outside that range are not an error; they yield zero.
	ErrSpatialIndexOutOfRange = errors.New("fdtd: spatial index out of range")

	// ErrTimeExhausted indicates an Advance attempted at the final time row.
	ErrTimeExhausted = errors.New("fdtd: temporal index exhausted")

	// ErrLengthMismatch indicates a replacement row whose length differs from SpaceLen.
	ErrLengthMismatch = errors.New("fdtd: row length does not match spatial extent")

	// ErrEmptyField indicates a caller-supplied buffer with no rows or columns.
	ErrEmptyField = errors.New("fdtd: field buffer has no rows or columns")

	// ErrDimensionMismatch indicates a current field whose shape differs from the simulation's.
	ErrDimensionMismatch = errors.New("fdtd: field dimensions do not match simulation")

	// ErrInvalidParams indicates physical constants the coefficients cannot be derived from.
	ErrInvalidParams = errors.New("fdtd: invalid physical parameters")
)

// StepError reports which update pass failed and at which iteration. A
// failure aborts the run; rows already written remain inspectable but the
// grids are not complete.
type StepError struct {
	Step    int
	Pass    string
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("fdtd: step %d (%s pass): %v", e.Step, e.Pass, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
