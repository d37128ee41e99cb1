package util

import (
	"math"
	"math/rand"
)

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// GenerateRandomVectors generates random vectors with coordinates in [0,1).
func (r *RNG) GenerateRandomVectors(num int, dimensions int) [][]float64 {
	vectors := make([][]float64, num)
	for i := range vectors {
		vectors[i] = make([]float64, dimensions)
		for j := range vectors[i] {
			vectors[i][j] = r.rand.Float64()
		}
	}

	return vectors
}

// GenerateBallPoints generates random points of the open unit ball with
// Euclidean norm at most maxNorm. maxNorm must be in (0, 1); values
// outside that range are clamped to 0.9.
func (r *RNG) GenerateBallPoints(num int, dimensions int, maxNorm float64) [][]float64 {
	if maxNorm <= 0 || maxNorm >= 1 {
		maxNorm = 0.9
	}

	points := make([][]float64, num)
	for i := range points {
		p := make([]float64, dimensions)
		var norm2 float64
		for j := range p {
			p[j] = r.rand.Float64()*2 - 1
			norm2 += p[j] * p[j]
		}
		// Scale to a random radius below maxNorm so points spread over
		// the whole ball instead of clustering at the shell.
		if norm2 > 0 {
			scale := r.rand.Float64() * maxNorm / math.Sqrt(norm2)
			for j := range p {
				p[j] *= scale
			}
		}
		points[i] = p
	}

	return points
}
