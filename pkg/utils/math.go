package utils

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// CeilDiv returns ceil(numerator / denominator) for non-negative numerator and
// positive denominator.
func CeilDiv(numerator, denominator int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + denominator - 1) / denominator
}

// FloorDiv returns floor(numerator / denominator) for non-negative numerator and
// positive denominator.
func FloorDiv(numerator, denominator int) int {
	if numerator <= 0 {
		return 0
	}
	return numerator / denominator
}
