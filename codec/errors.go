package codec

import "fmt"

// ErrInvalidDimension indicates a batch whose vectors do not share a single
// positive dimension.
type ErrInvalidDimension struct {
	Index    int // position of the offending vector
	Expected int
	Actual   int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid batch dimension: vector %d has dimension %d, expected %d", e.Index, e.Actual, e.Expected)
}

// ErrMalformedBuffer indicates a payload whose declared shape does not match
// its actual byte length.
type ErrMalformedBuffer struct {
	Reason string
}

func (e *ErrMalformedBuffer) Error() string {
	return fmt.Sprintf("malformed buffer: %s", e.Reason)
}
