package model

import (
	"math"
	"slices"
)

// Vector is an ordered sequence of IEEE-754 double-precision coordinates.
// It represents either a Euclidean point or an intermediate geometric
// quantity. Vectors are treated as immutable: functions that derive new
// coordinates always allocate.
type Vector []float64

// Dim returns the number of coordinates.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector { return slices.Clone(v) }

// Norm returns the Euclidean (L2) norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// PoincarePoint is a point in the open unit ball model of hyperbolic space.
// Its Euclidean norm must be strictly less than 1; boundary and exterior
// points are rejected by the projection engine.
type PoincarePoint = Vector

// LorentzPoint is a point on the upper sheet of the unit hyperboloid in
// Minkowski space: x₀² − Σxᵢ² = 1 with x₀ > 0. A point embedding an
// n-dimensional ball point has n+1 coordinates; coordinate 0 is the
// timelike component.
type LorentzPoint Vector

// Time returns the timelike coordinate x₀.
func (p LorentzPoint) Time() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Spatial returns the spacelike coordinates (x₁, …, xₙ).
// The returned slice aliases p.
func (p LorentzPoint) Spatial() Vector { return Vector(p[1:]) }

// ConstraintResidual returns |x₀² − Σxᵢ² − 1|, the deviation from the
// hyperboloid constraint. Zero for an exact hyperbolic point.
func (p LorentzPoint) ConstraintResidual() float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}
	s := p[0] * p[0]
	for _, x := range p[1:] {
		s -= x * x
	}
	return math.Abs(s - 1)
}

// OnHyperboloid reports whether p satisfies the Lorentz constraint within
// tol and lies on the upper sheet (x₀ > 0).
func (p LorentzPoint) OnHyperboloid(tol float64) bool {
	return len(p) > 0 && p[0] > 0 && p.ConstraintResidual() <= tol
}

// Embedding pairs an identifier with a vector payload. The codec assigns
// positional indices as default identifiers on decode; callers may
// overwrite them with external keys.
type Embedding struct {
	ID     uint64
	Vector Vector
}
