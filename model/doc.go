// Package model defines core types used throughout Hypergo.
//
// # Geometric Types
//
//   - Vector: ordered float64 coordinates (Euclidean point or raw feature)
//   - PoincarePoint: point in the open unit ball (norm < 1)
//   - LorentzPoint: point on the upper hyperboloid sheet (x₀² − Σxᵢ² = 1)
//
// # Batch Types
//
//   - Embedding: identifier plus vector payload, order-preserving in batches
//   - Graph: node vectors with an edge list referencing node positions
//   - Adjacency: bitmap-backed neighbor view built from a Graph
package model
