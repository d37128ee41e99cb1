package hypergo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/geometry"
)

// ErrNilInput is returned when a required argument is absent.
var ErrNilInput = errors.New("nil input")

// ErrInvalidDimension indicates a vector with too few coordinates, or a
// batch/codec call with inconsistent dimensions.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrOutOfRange indicates a Euclidean point with norm >= 1, violating the
// open-unit-ball precondition for lifting to hyperbolic space.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrOutOfRange struct {
	Norm  float64
	cause error
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("point out of range: norm %g >= 1", e.Norm)
}

func (e *ErrOutOfRange) Unwrap() error { return e.cause }

// ErrDimensionMismatch indicates two points of different dimension fed to
// a binary operation.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrMalformedBuffer indicates a binary payload whose declared shape does
// not match its actual byte length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMalformedBuffer struct {
	Reason string
	cause  error
}

func (e *ErrMalformedBuffer) Error() string {
	return fmt.Sprintf("malformed buffer: %s", e.Reason)
}

func (e *ErrMalformedBuffer) Unwrap() error { return e.cause }

// ErrNode annotates a projection failure with the offending node's
// position in the input graph. Batch calls fail whole on the first
// offending node.
type ErrNode struct {
	Index int
	cause error
}

func (e *ErrNode) Error() string {
	return fmt.Sprintf("node %d: %v", e.Index, e.cause)
}

func (e *ErrNode) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, geometry.ErrNilInput) {
		return fmt.Errorf("%w: %w", ErrNilInput, err)
	}

	var gid *geometry.ErrInvalidDimension
	if errors.As(err, &gid) {
		return &ErrInvalidDimension{Dimension: gid.Dimension, cause: err}
	}
	var gor *geometry.ErrOutOfRange
	if errors.As(err, &gor) {
		return &ErrOutOfRange{Norm: gor.Norm, cause: err}
	}
	var gdm *geometry.ErrDimensionMismatch
	if errors.As(err, &gdm) {
		return &ErrDimensionMismatch{Expected: gdm.Expected, Actual: gdm.Actual, cause: err}
	}

	var cid *codec.ErrInvalidDimension
	if errors.As(err, &cid) {
		return &ErrInvalidDimension{Dimension: cid.Actual, cause: err}
	}
	var cmb *codec.ErrMalformedBuffer
	if errors.As(err, &cmb) {
		return &ErrMalformedBuffer{Reason: cmb.Reason, cause: err}
	}

	return err
}
