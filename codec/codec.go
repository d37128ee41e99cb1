// Package codec centralizes embedding batch encoding.
//
// Hypergo intentionally treats codec selection as a breaking-change boundary:
// if you change codecs, persisted bytes created by older codecs may no longer
// decode. Persistence layers should store the codec name next to the payload
// and select the codec via ByName on load.
package codec

import (
	"fmt"

	"github.com/hupe1980/hypergo/model"
)

// Codec encodes an ordered batch of same-dimension vectors to bytes and
// decodes it back, preserving order and numeric precision.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Encode serializes the batch. All vectors must share one dimension;
	// a mixed batch fails with *ErrInvalidDimension.
	Encode(vectors []model.Vector) ([]byte, error)

	// Decode reconstructs the batch in original order. Each embedding is
	// tagged with its positional index as default identifier.
	Decode(data []byte) ([]model.Embedding, error)

	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// This is used for self-describing persistence formats that store the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "binary":
		return Binary{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Default is the default codec used by the library.
//
// NOTE: This affects newly-encoded batches. Self-describing persisted data
// records the codec name and is decoded by selecting the codec by name.
var Default Codec = Binary{}

// MustEncode is a helper for internal tests/benchmarks.
func MustEncode(c Codec, vectors []model.Vector) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Encode(vectors)
	if err != nil {
		panic(fmt.Errorf("codec %s encode failed: %w", c.Name(), err))
	}
	return b
}
