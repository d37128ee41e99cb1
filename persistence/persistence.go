// Package persistence stores encoded embedding batches in a BlobStore
// behind a small self-describing envelope.
//
// The envelope records the codec name so that batches written with one
// codec (binary, zstd, lz4, go-json) can always be read back, regardless
// of the store's current default.
package persistence

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hupe1980/hypergo/blobstore"
	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/model"
)

const (
	// MagicNumber identifies hypergo embedding envelopes (ASCII: "HGE1").
	MagicNumber = 0x48474531
	// Version is the current envelope format version.
	Version = 1
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
)

// ErrUnknownCodec indicates an envelope written with a codec this build
// does not know.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown codec: %q", e.Name)
}

// envelope layout: magic uint32 LE, version uint16 LE, name length uint16 LE,
// codec name bytes, codec payload.
const envelopeHeaderSize = 8

// EmbeddingStore persists embedding batches through a BlobStore.
// Stateless between calls; safe for concurrent use if the underlying
// store is.
type EmbeddingStore struct {
	blobs blobstore.BlobStore
	codec codec.Codec
}

// New creates an EmbeddingStore writing with the given codec.
// A nil codec falls back to codec.Default.
func New(blobs blobstore.BlobStore, c codec.Codec) *EmbeddingStore {
	if c == nil {
		c = codec.Default
	}
	return &EmbeddingStore{blobs: blobs, codec: c}
}

// Save encodes the batch and writes it under name.
func (s *EmbeddingStore) Save(ctx context.Context, name string, vectors []model.Vector) error {
	payload, err := s.codec.Encode(vectors)
	if err != nil {
		return err
	}

	cn := s.codec.Name()
	buf := make([]byte, envelopeHeaderSize+len(cn)+len(payload))
	binary.LittleEndian.PutUint32(buf[0:4], MagicNumber)
	binary.LittleEndian.PutUint16(buf[4:6], Version)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(len(cn)))
	copy(buf[envelopeHeaderSize:], cn)
	copy(buf[envelopeHeaderSize+len(cn):], payload)

	return s.blobs.Put(ctx, name, buf)
}

// Load reads the envelope under name, selects the codec recorded in its
// header, and decodes the batch.
func (s *EmbeddingStore) Load(ctx context.Context, name string) ([]model.Embedding, error) {
	buf, err := s.blobs.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	if len(buf) < envelopeHeaderSize {
		return nil, fmt.Errorf("envelope too short: %d bytes", len(buf))
	}
	if binary.LittleEndian.Uint32(buf[0:4]) != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if v := binary.LittleEndian.Uint16(buf[4:6]); v != Version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, v)
	}

	nameLen := int(binary.LittleEndian.Uint16(buf[6:8]))
	if envelopeHeaderSize+nameLen > len(buf) {
		return nil, fmt.Errorf("envelope codec name truncated")
	}
	codecName := string(buf[envelopeHeaderSize : envelopeHeaderSize+nameLen])

	c, ok := codec.ByName(codecName)
	if !ok {
		return nil, &ErrUnknownCodec{Name: codecName}
	}
	return c.Decode(buf[envelopeHeaderSize+nameLen:])
}

// Delete removes the batch stored under name.
func (s *EmbeddingStore) Delete(ctx context.Context, name string) error {
	return s.blobs.Delete(ctx, name)
}

// List returns the names of stored batches with the given prefix.
func (s *EmbeddingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.blobs.List(ctx, prefix)
}
