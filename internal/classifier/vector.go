package classifier

// Vector is a sparse feature vector with ascending indices.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int {
	return len(v.Indices)
}

// Dot returns the inner product of v and a dense weight vector.
func (v Vector) Dot(weights []float64) (float64, error) {
	var sum float64
	for i, idx := range v.Indices {
		if idx < 0 || idx >= len(weights) {
			return 0, ErrDimensionMismatch
		}
		sum += v.Values[i] * weights[idx]
	}
	return sum, nil
}
