package utils

import "math"

// CalculateSkip returns how many records precede a zero-based page. It
// saturates at math.MaxInt64 instead of overflowing.
func CalculateSkip(page, limit int) int64 {
	if page < 0 || limit <= 0 {
		return 0
	}
	if int64(page) > math.MaxInt64/int64(limit) {
		return math.MaxInt64
	}
	return int64(page) * int64(limit)
}
