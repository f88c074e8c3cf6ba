// Package f64 provides float64 vector kernels.
// This is an internal package - external users should use the vector package.
package f64

// Dot calculates the dot product of two equal-length slices.
func Dot(a, b []float64) float64 {
	var ret float64
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance between two equal-length
// slices.
func SquaredL2(a, b []float64) float64 {
	var distance float64
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}
