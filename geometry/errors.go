package geometry

import (
	"errors"
	"fmt"
)

// ErrNilInput is returned when a required point argument is nil.
var ErrNilInput = errors.New("nil input point")

// ErrInvalidDimension indicates a point with too few coordinates for the
// requested operation.
type ErrInvalidDimension struct {
	Dimension int
	Min       int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d (minimum %d)", e.Dimension, e.Min)
}

// ErrOutOfRange indicates a Euclidean point outside the open unit ball.
// Only points with norm strictly below 1 lift onto the hyperboloid.
type ErrOutOfRange struct {
	Norm float64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("point outside open unit ball: norm %g >= 1", e.Norm)
}

// ErrDimensionMismatch indicates two points of different dimension fed to
// a binary operation.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}
