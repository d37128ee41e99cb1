package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/hypergo/model"
)

// headerSize is the fixed prefix: record count and per-record dimension,
// both uint32 little-endian.
const headerSize = 8

// Binary is the wire codec: an 8-byte header {count, dimension} followed by
// the row-major concatenation of the batch's coordinates, each stored as an
// 8-byte IEEE-754 little-endian float. No compression; round-trips are
// bit-for-bit exact.
type Binary struct{}

// Encode serializes the batch. The empty batch encodes to a bare header.
func (Binary) Encode(vectors []model.Vector) ([]byte, error) {
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

	buf := make([]byte, headerSize+len(vectors)*dim*8)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(len(vectors)))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(dim))

	off := headerSize
	for _, v := range vectors {
		for _, x := range v {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(x))
			off += 8
		}
	}
	return buf, nil
}

// Decode parses the header and reconstructs the batch in original order.
func (Binary) Decode(data []byte) ([]model.Embedding, error) {
	if len(data) < headerSize {
		return nil, &ErrMalformedBuffer{Reason: fmt.Sprintf("buffer too short for header: %d bytes", len(data))}
	}

	count := binary.LittleEndian.Uint32(data[0:4])
	dim := binary.LittleEndian.Uint32(data[4:8])

	// Validate the declared shape with division, not multiplication:
	// count*dim*8 wraps for crafted headers, which would let an 8-byte
	// buffer claim billions of records and turn decoding into a giant
	// allocation.
	payload := int64(len(data) - headerSize)
	if dim == 0 {
		if count != 0 || payload != 0 {
			return nil, &ErrMalformedBuffer{Reason: fmt.Sprintf("declared %d records of dimension 0 with %d payload bytes", count, payload)}
		}
		return []model.Embedding{}, nil
	}
	recordSize := int64(dim) * 8
	if payload%recordSize != 0 || payload/recordSize != int64(count) {
		return nil, &ErrMalformedBuffer{Reason: fmt.Sprintf("declared %d records of dimension %d do not match %d payload bytes", count, dim, payload)}
	}

	out := make([]model.Embedding, count)
	off := headerSize
	for i := range out {
		vec := make(model.Vector, dim)
		for j := range vec {
			vec[j] = math.Float64frombits(binary.LittleEndian.Uint64(data[off:]))
			off += 8
		}
		out[i] = model.Embedding{ID: uint64(i), Vector: vec}
	}
	return out, nil
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
