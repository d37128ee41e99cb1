package codec

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/hypergo/model"
)

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
//
// Intended for debugging and interop with non-Go consumers; the Binary
// codec is smaller and faster. Go prints float64 values with the shortest
// representation that round-trips, so decoding recovers exact coordinates.
type GoJSON struct{}

// Encode serializes the batch as a JSON array of number arrays.
func (GoJSON) Encode(vectors []model.Vector) ([]byte, error) {
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != dim {
			return nil, &ErrInvalidDimension{Index: i, Expected: dim, Actual: len(v)}
		}
	}
	if len(vectors) > 0 && dim == 0 {
		return nil, &ErrInvalidDimension{Index: 0, Expected: 1, Actual: 0}
	}

	if vectors == nil {
		vectors = []model.Vector{}
	}
	return gojson.Marshal(vectors)
}

// Decode parses the JSON array and tags each vector with its position.
// JSON can express ragged batches the wire format cannot; Decode enforces
// the single-dimension contract so every codec yields the same shape.
func (GoJSON) Decode(data []byte) ([]model.Embedding, error) {
	var vectors []model.Vector
	if err := gojson.Unmarshal(data, &vectors); err != nil {
		return nil, &ErrMalformedBuffer{Reason: fmt.Sprintf("invalid JSON payload: %v", err)}
	}

	if len(vectors) > 0 {
		dim := len(vectors[0])
		if dim == 0 {
			return nil, &ErrInvalidDimension{Index: 0, Expected: 1, Actual: 0}
		}
		for i, v := range vectors {
			if len(v) != dim {
				return nil, &ErrInvalidDimension{Index: i, Expected: dim, Actual: len(v)}
			}
		}
	}

	out := make([]model.Embedding, len(vectors))
	for i, v := range vectors {
		out[i] = model.Embedding{ID: uint64(i), Vector: v}
	}
	return out, nil
}

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }
