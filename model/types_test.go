package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	v := Vector{3, 4}

	assert.Equal(t, 2, v.Dim())
	assert.InDelta(t, 5.0, v.Norm(), 1e-12)

	c := v.Clone()
	c[0] = 99
	assert.Equal(t, 3.0, v[0])
}

func TestLorentzPoint(t *testing.T) {
	// (sqrt(2), 1, 0) lies exactly on the hyperboloid.
	p := LorentzPoint{math.Sqrt2, 1, 0}

	assert.InDelta(t, math.Sqrt2, p.Time(), 1e-12)
	assert.Equal(t, Vector{1, 0}, p.Spatial())
	assert.LessOrEqual(t, p.ConstraintResidual(), 1e-12)
	assert.True(t, p.OnHyperboloid(1e-5))
}

func TestLorentzPointOffSheet(t *testing.T) {
	// Lower sheet: constraint holds but x₀ < 0.
	p := LorentzPoint{-math.Sqrt2, 1, 0}
	assert.False(t, p.OnHyperboloid(1e-5))

	// Spacelike point: constraint violated.
	q := LorentzPoint{0.5, 2, 0}
	assert.False(t, q.OnHyperboloid(1e-5))

	var empty LorentzPoint
	assert.False(t, empty.OnHyperboloid(1e-5))
}
