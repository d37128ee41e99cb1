package codec

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/hypergo/model"
)

// Zstd wraps the Binary codec with zstd compression. Trades CPU for size;
// use it when batches travel over the network or land in object storage.
type Zstd struct{}

var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdInitErr error
)

// EncodeAll/DecodeAll on shared instances are safe for concurrent use.
func zstdInit() {
	zstdOnce.Do(func() {
		zstdEncoder, zstdInitErr = zstd.NewWriter(nil)
		if zstdInitErr != nil {
			return
		}
		zstdDecoder, zstdInitErr = zstd.NewReader(nil)
	})
}

// Encode serializes the batch via Binary and compresses the result.
func (Zstd) Encode(vectors []model.Vector) ([]byte, error) {
	zstdInit()
	if zstdInitErr != nil {
		return nil, zstdInitErr
	}

	raw, err := Binary{}.Encode(vectors)
	if err != nil {
		return nil, err
	}
	return zstdEncoder.EncodeAll(raw, nil), nil
}

// Decode decompresses and delegates to Binary.
func (Zstd) Decode(data []byte) ([]model.Embedding, error) {
	zstdInit()
	if zstdInitErr != nil {
		return nil, zstdInitErr
	}

	raw, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, &ErrMalformedBuffer{Reason: fmt.Sprintf("zstd decompression failed: %v", err)}
	}
	return Binary{}.Decode(raw)
}

// Name returns the unique name of the codec ("zstd").
func (Zstd) Name() string { return "zstd" }
