// Package hypergo provides a hyperbolic embedding engine for Go.
//
// Hypergo converts vectors between Euclidean, Poincaré-ball, and Lorentz
// (hyperboloid) representations, computes geodesic distances in hyperbolic
// space, and serializes batches of embeddings to a compact binary wire
// format:
//
//   - Poincaré ↔ Lorentz projection with curvature −1 invariants
//   - Geodesic distance via the Lorentzian inner product and arccosh
//   - Batch provider: one hyperbolic point per graph node, order preserved
//   - Chunked/parallel batch generation with deterministic results
//   - Wire codecs: binary (exact), zstd, lz4, go-json
//   - BlobStore persistence: memory, local filesystem, MinIO, Amazon S3
//
// # Quick Start
//
// Project a graph of node vectors into hyperbolic space:
//
//	ctx := context.Background()
//	provider := hypergo.New(
//	    hypergo.WithChunkSize(512),
//	    hypergo.WithMaxWorkers(4),
//	)
//
//	graph := &model.Graph{
//	    Nodes: []model.Vector{{0.1, 0.2}, {0.3, 0.1}},
//	    Edges: []model.Edge{{Source: 0, Target: 1}},
//	}
//	points, err := provider.GenerateBatchEmbeddings(ctx, graph)
//	if err != nil {
//	    panic(err)
//	}
//
// Measure geodesic distances:
//
//	d, err := provider.Distance(points[0], points[1])
//
// Round-trip a batch through the wire format:
//
//	data, err := provider.EncodeEmbeddings(graph.Nodes)
//	embeddings, err := provider.DecodeEmbeddings(data)
//
// # Numerical Notes
//
// Projection requires inputs strictly inside the open unit ball. The
// inverse map's derivative diverges at the ball boundary, so round-trip
// precision degrades as the input norm approaches 1; keep points well
// inside the ball when tight round-trips matter.
package hypergo
