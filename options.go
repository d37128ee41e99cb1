package hypergo

import (
	"github.com/hupe1980/hypergo/codec"
)

type options struct {
	codec            codec.Codec
	chunkSize        int
	maxWorkers       int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Provider construction behavior.
type Option func(*options)

// WithCodec configures the codec used by EncodeEmbeddings/DecodeEmbeddings.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithChunkSize configures the number of node vectors each internal batch
// partition processes. Smaller chunks bound peak memory per worker; larger
// chunks amortize scheduling overhead.
//
// Values <= 0 fall back to the default of 256.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WithMaxWorkers configures the number of goroutines GenerateBatchEmbeddings
// uses. Projection is CPU-bound, so values beyond GOMAXPROCS rarely help.
//
// Values <= 0 fall back to GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(o *options) {
		o.maxWorkers = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging. Pass nil to disable logging.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}
