// Package geometry provides public API for hyperbolic coordinate
// conversions and geodesic distance. All functions are pure and safe for
// concurrent use; they never mutate their inputs.
package geometry

import (
	"math"

	"github.com/hupe1980/hypergo/model"
)

// Tolerance is the accepted residual for the hyperboloid constraint
// x₀² − Σxᵢ² = 1 on points produced or consumed by this package.
const Tolerance = 1e-5

// MinDimension is the smallest supported Euclidean dimension.
const MinDimension = 2

// ProjectToHyperbolic lifts a point of the open unit ball onto the upper
// sheet of the unit hyperboloid (curvature −1). An n-dimensional ball
// point maps to n+1 Lorentz coordinates:
//
//	x₀ = (1 + ‖p‖²) / (1 − ‖p‖²)
//	xᵢ = 2pᵢ / (1 − ‖p‖²)
//
// The result satisfies x₀² − Σxᵢ² = 1 within Tolerance and x₀ > 0.
//
// Precision note: the mapping's derivative diverges as ‖p‖ → 1, so
// round-trip accuracy degrades for points close to the boundary. Callers
// that need tight round-trips should keep inputs well inside the ball.
func ProjectToHyperbolic(p model.PoincarePoint) (model.LorentzPoint, error) {
	if p == nil {
		return nil, ErrNilInput
	}
	if len(p) < MinDimension {
		return nil, &ErrInvalidDimension{Dimension: len(p), Min: MinDimension}
	}

	var norm2 float64
	for _, x := range p {
		norm2 += x * x
	}
	if norm2 >= 1 {
		return nil, &ErrOutOfRange{Norm: math.Sqrt(norm2)}
	}

	inv := 1 / (1 - norm2)
	out := make(model.LorentzPoint, len(p)+1)
	out[0] = (1 + norm2) * inv
	for i, x := range p {
		out[i+1] = 2 * x * inv
	}
	return out, nil
}

// ProjectFromHyperbolic maps a hyperboloid point back into the open unit
// ball via pᵢ = xᵢ / (1 + x₀). It is the inverse of ProjectToHyperbolic
// up to floating-point error: away from the ball boundary the round-trip
// recovers the original coordinates to at least three decimal places.
func ProjectFromHyperbolic(x model.LorentzPoint) (model.PoincarePoint, error) {
	if x == nil {
		return nil, ErrNilInput
	}
	if len(x) < MinDimension+1 {
		return nil, &ErrInvalidDimension{Dimension: len(x) - 1, Min: MinDimension}
	}

	inv := 1 / (1 + x[0])
	out := make(model.PoincarePoint, len(x)-1)
	for i, xi := range x[1:] {
		out[i] = xi * inv
	}
	return out, nil
}

// LorentzDot computes the Lorentzian inner product
// ⟨a,b⟩_L = a₀b₀ − Σᵢaᵢbᵢ. Assumes equal dimension (caller's
// responsibility; Distance validates).
func LorentzDot(a, b model.LorentzPoint) float64 {
	dot := a[0] * b[0]
	for i := 1; i < len(a); i++ {
		dot -= a[i] * b[i]
	}
	return dot
}

// Distance computes the geodesic distance between two hyperboloid points
// via the hyperbolic law of cosines: d(a,b) = arccosh(⟨a,b⟩_L).
//
// The inner product is clamped to 1 before arccosh so that floating-point
// drift just below the theoretical minimum cannot produce a domain error.
// For valid points the result is finite, non-negative and symmetric, with
// d(a,a) = 0.
func Distance(a, b model.LorentzPoint) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilInput
	}
	if len(a) < MinDimension+1 {
		return 0, &ErrInvalidDimension{Dimension: len(a) - 1, Min: MinDimension}
	}
	if len(a) != len(b) {
		return 0, &ErrDimensionMismatch{Expected: len(a), Actual: len(b)}
	}

	dot := LorentzDot(a, b)
	if dot < 1 {
		dot = 1
	}
	return math.Acosh(dot), nil
}

// DistancePoincare lifts two ball points onto the hyperboloid and returns
// their geodesic distance. Convenience for callers that never hold
// Lorentz coordinates themselves.
func DistancePoincare(p, q model.PoincarePoint) (float64, error) {
	a, err := ProjectToHyperbolic(p)
	if err != nil {
		return 0, err
	}
	b, err := ProjectToHyperbolic(q)
	if err != nil {
		return 0, err
	}
	return Distance(a, b)
}
