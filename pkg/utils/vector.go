// Package utils provides common numeric helpers for the stylo project.
package utils

import "math"

// CosineSimilarity calculates the cosine similarity between two float64
// vectors. Returns 0 if vectors have different lengths, are empty, or either
// has zero magnitude. The result is in the range [-1, 1], where 1 means
// identical direction, 0 means orthogonal, and -1 means opposite direction.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64

	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Magnitude calculates the Euclidean magnitude (L2 norm) of a vector.
func Magnitude(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// NormalizeL2 scales v in place to unit length. A zero or empty vector is
// left untouched.
func NormalizeL2(v []float64) {
	mag := Magnitude(v)
	if mag == 0 {
		return
	}
	for i := range v {
		v[i] /= mag
	}
}

// ColumnMinMax returns the per-column minimum and maximum of a row-major
// matrix. Both results are empty when the matrix has no rows.
func ColumnMinMax(rows [][]float64) (mins, maxs []float64) {
	if len(rows) == 0 {
		return nil, nil
	}
	cols := len(rows[0])
	mins = make([]float64, cols)
	maxs = make([]float64, cols)
	copy(mins, rows[0])
	copy(maxs, rows[0])
	for _, row := range rows[1:] {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}
	return mins, maxs
}

// ColumnStdDev returns the per-column population standard deviation of a
// row-major matrix. Returns nil when the matrix has no rows.
func ColumnStdDev(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}
	cols := len(rows[0])
	n := float64(len(rows))

	means := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			means[j] += v
		}
	}
	for j := range means {
		means[j] /= n
	}

	stds := make([]float64, cols)
	for _, row := range rows {
		for j, v := range row {
			d := v - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		stds[j] = math.Sqrt(stds[j] / n)
	}
	return stds
}
