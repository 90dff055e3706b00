package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float32
	}{
		{name: "identical vectors", a: []float32{1, 0}, b: []float32{1, 0}, want: 1},
		{name: "orthogonal vectors", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite vectors", a: []float32{1, 0}, b: []float32{-1, 0}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 0}, want: 0},
		{name: "scale invariant", a: []float32{2, 0}, b: []float32{5, 0}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, cosineSimilarity(tt.a, tt.b), 1e-6)
		})
	}
}

func TestCosineDistance_Ordering(t *testing.T) {
	query := []float32{1, 0, 0}
	near := []float32{1, 0.1, 0}
	far := []float32{0.2, 1, 0}

	assert.Less(t, cosineDistance(query, near), cosineDistance(query, far))
}
