package hypergo

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hypergo/codec"
	"github.com/hupe1980/hypergo/geometry"
	"github.com/hupe1980/hypergo/model"
)

// DefaultChunkSize is the number of node vectors per internal batch
// partition when none is configured.
const DefaultChunkSize = 256

// Provider is the batch-oriented facade over the projection engine. It
// turns a graph of Euclidean node vectors into one hyperbolic point per
// node and exposes the wire codec for embedding batches.
//
// A Provider holds no mutable state between calls; all methods are safe
// for concurrent use.
type Provider struct {
	codec      codec.Codec
	chunkSize  int
	maxWorkers int
	metrics    MetricsCollector
	logger     *Logger
}

// New creates a Provider. The zero configuration uses codec.Default, a
// chunk size of DefaultChunkSize and GOMAXPROCS workers.
func New(optFns ...Option) *Provider {
	opts := options{
		codec:            codec.Default,
		chunkSize:        DefaultChunkSize,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.chunkSize <= 0 {
		opts.chunkSize = DefaultChunkSize
	}
	if opts.maxWorkers <= 0 {
		opts.maxWorkers = runtime.GOMAXPROCS(0)
	}

	return &Provider{
		codec:      opts.codec,
		chunkSize:  opts.chunkSize,
		maxWorkers: opts.maxWorkers,
		metrics:    opts.metricsCollector,
		logger:     opts.logger,
	}
}

// IsOptimized reports whether the chunked/parallel code path is active.
// Always true once constructed; a capability flag for callers, not a
// tunable.
func (p *Provider) IsOptimized() bool { return true }

// GenerateEmbeddings projects every node vector of the graph onto the
// hyperboloid, in node order. Edges are accepted for graph-aware
// refinement but do not influence the minimal projection contract;
// out-of-range edges are logged, not fatal.
//
// The whole call fails on the first offending node, reporting that node's
// index via *ErrNode.
func (p *Provider) GenerateEmbeddings(ctx context.Context, graph *model.Graph) ([]model.LorentzPoint, error) {
	start := time.Now()
	out, err := p.generate(ctx, graph, false)
	p.metrics.RecordGenerate(graphLen(graph), time.Since(start), err)
	p.logger.WithDimension(graphDim(graph)).LogGenerate(ctx, graphLen(graph), err)
	return out, err
}

// GenerateBatchEmbeddings is GenerateEmbeddings with internal chunking:
// node vectors are partitioned into fixed-size chunks projected by a
// bounded worker group. Results are indistinguishable from the unchunked
// call; order always matches input node order regardless of scheduling.
func (p *Provider) GenerateBatchEmbeddings(ctx context.Context, graph *model.Graph) ([]model.LorentzPoint, error) {
	start := time.Now()
	out, err := p.generate(ctx, graph, true)

	chunks := 0
	if graph != nil {
		chunks = (len(graph.Nodes) + p.chunkSize - 1) / p.chunkSize
	}
	p.metrics.RecordBatchGenerate(graphLen(graph), chunks, time.Since(start), err)
	p.logger.WithDimension(graphDim(graph)).LogGenerate(ctx, graphLen(graph), err)
	return out, err
}

func graphLen(graph *model.Graph) int {
	if graph == nil {
		return 0
	}
	return len(graph.Nodes)
}

func graphDim(graph *model.Graph) int {
	if graph == nil || len(graph.Nodes) == 0 {
		return 0
	}
	return len(graph.Nodes[0])
}

func (p *Provider) generate(ctx context.Context, graph *model.Graph, chunked bool) ([]model.LorentzPoint, error) {
	if graph == nil {
		return nil, ErrNilInput
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if idx := graph.ValidateEdges(); idx >= 0 {
		p.logger.WarnContext(ctx, "edge references missing node",
			"edge", idx,
			"nodes", len(graph.Nodes),
		)
	}

	out := make([]model.LorentzPoint, len(graph.Nodes))

	if !chunked || len(graph.Nodes) <= p.chunkSize {
		if err := projectChunk(graph.Nodes, 0, out); err != nil {
			return nil, err
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)

	numChunks := (len(graph.Nodes) + p.chunkSize - 1) / p.chunkSize
	errs := make([]error, numChunks)

	for c := 0; c < numChunks; c++ {
		c := c
		lo := c * p.chunkSize
		hi := min(lo+p.chunkSize, len(graph.Nodes))

		g.Go(func() error {
			// A projection failure must not cancel the group: earlier
			// chunks have to finish so the error reported below is the
			// lowest-index one, independent of scheduling. Only context
			// cancellation aborts outstanding chunks.
			if err := gctx.Err(); err != nil {
				return err
			}
			errs[c] = projectChunk(graph.Nodes[lo:hi], lo, out[lo:hi])
			return nil
		})
	}

	waitErr := g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if waitErr != nil {
		return nil, waitErr
	}
	return out, nil
}

// projectChunk fills out[i] with the projection of nodes[i]. offset is the
// chunk's position in the full node list, used for error annotation.
func projectChunk(nodes []model.Vector, offset int, out []model.LorentzPoint) error {
	for i, node := range nodes {
		point, err := geometry.ProjectToHyperbolic(node)
		if err != nil {
			return &ErrNode{Index: offset + i, cause: translateError(err)}
		}
		out[i] = point
	}
	return nil
}

// Project lifts a single ball point onto the hyperboloid.
func (p *Provider) Project(point model.PoincarePoint) (model.LorentzPoint, error) {
	out, err := geometry.ProjectToHyperbolic(point)
	return out, translateError(err)
}

// Unproject maps a hyperboloid point back into the open unit ball.
func (p *Provider) Unproject(point model.LorentzPoint) (model.PoincarePoint, error) {
	out, err := geometry.ProjectFromHyperbolic(point)
	return out, translateError(err)
}

// Distance returns the geodesic distance between two hyperboloid points.
func (p *Provider) Distance(a, b model.LorentzPoint) (float64, error) {
	start := time.Now()
	d, err := geometry.Distance(a, b)
	err = translateError(err)
	p.metrics.RecordDistance(time.Since(start), err)
	return d, err
}

// EncodeEmbeddings serializes an ordered batch of same-dimension vectors
// with the Provider's codec.
func (p *Provider) EncodeEmbeddings(vectors []model.Vector) ([]byte, error) {
	data, err := p.codec.Encode(vectors)
	return data, translateError(err)
}

// DecodeEmbeddings reconstructs a batch encoded by EncodeEmbeddings,
// preserving order and tagging each record with its positional index.
func (p *Provider) DecodeEmbeddings(data []byte) ([]model.Embedding, error) {
	if data == nil {
		return nil, ErrNilInput
	}
	out, err := p.codec.Decode(data)
	return out, translateError(err)
}
