package badger

import "math"

// cosineDistance returns 1 minus the cosine similarity of two vectors.
// Smaller means more similar. If either vector has zero magnitude the
// similarity is undefined; it is treated as 0 (distance 1).
func cosineDistance(a, b []float32) float32 {
	return 1 - cosineSimilarity(a, b)
}

// cosineSimilarity calculates the cosine of the angle between two vectors.
func cosineSimilarity(a, b []float32) float32 {
	dot := dotProduct(a, b)
	magA := magnitude(a)
	magB := magnitude(b)
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (magA * magB)
}

// dotProduct calculates the dot product of two vectors.
func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// magnitude calculates the Euclidean length of a vector.
func magnitude(v []float32) float32 {
	var sum float32
	for _, val := range v {
		sum += val * val
	}
	return float32(math.Sqrt(float64(sum)))
}
