package model

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Edge references two node positions in a Graph's node list.
type Edge struct {
	Source uint32
	Target uint32
}

// String returns a string representation of the Edge.
func (e Edge) String() string {
	return fmt.Sprintf("Edge(%d->%d)", e.Source, e.Target)
}

// Graph is the provider's input: node feature vectors plus an edge list.
// Edges reference positions in Nodes. The minimal projection contract does
// not consume edges; they feed the adjacency view used by graph-aware
// refinement.
type Graph struct {
	Nodes []Vector
	Edges []Edge
}

// NumNodes returns the number of node vectors.
func (g *Graph) NumNodes() int { return len(g.Nodes) }

// ValidateEdges checks that every edge references a valid node position.
// Returns the first offending edge index, or -1 if all edges are in range.
func (g *Graph) ValidateEdges() int {
	n := uint32(len(g.Nodes))
	for i, e := range g.Edges {
		if e.Source >= n || e.Target >= n {
			return i
		}
	}
	return -1
}

// Adjacency is a per-node neighbor view over a Graph's edge list, backed
// by compressed bitmaps. Treated as undirected: each edge contributes to
// both endpoints. Out-of-range edges are skipped.
type Adjacency struct {
	neighbors []*roaring.Bitmap
}

// Adjacency builds the adjacency view. Cost is O(edges); the result is
// independent of the graph and safe for concurrent reads.
func (g *Graph) Adjacency() *Adjacency {
	n := len(g.Nodes)
	adj := &Adjacency{neighbors: make([]*roaring.Bitmap, n)}
	for i := range adj.neighbors {
		adj.neighbors[i] = roaring.New()
	}
	for _, e := range g.Edges {
		if int(e.Source) >= n || int(e.Target) >= n {
			continue
		}
		adj.neighbors[e.Source].Add(e.Target)
		adj.neighbors[e.Target].Add(e.Source)
	}
	return adj
}

// Neighbors returns the neighbor positions of node i in ascending order.
// Returns nil if i is out of range.
func (a *Adjacency) Neighbors(i int) []uint32 {
	if i < 0 || i >= len(a.neighbors) {
		return nil
	}
	return a.neighbors[i].ToArray()
}

// Degree returns the number of distinct neighbors of node i.
func (a *Adjacency) Degree(i int) int {
	if i < 0 || i >= len(a.neighbors) {
		return 0
	}
	return int(a.neighbors[i].GetCardinality())
}

// Connected reports whether nodes i and j share an edge.
func (a *Adjacency) Connected(i, j int) bool {
	if i < 0 || i >= len(a.neighbors) || j < 0 {
		return false
	}
	return a.neighbors[i].Contains(uint32(j))
}
