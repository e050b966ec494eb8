// Package buf contains overflow-safe size arithmetic, range validation and
// little-endian unit helpers shared by the containers.
package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// Growth uses it for the capacity doubling step.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckRange validates that [index, index+count) lies within a container of
// size elements. Returns the end index if valid, or an error describing the
// specific failure (negative input, overflow or out of bounds).
//
//	end, err := buf.CheckRange(n, index, count)
//	if err != nil {
//	    return lzt.OutOfRange("erase: %v", err)
//	}
func CheckRange(size, index, count int) (int, error) {
	if index < 0 {
		return 0, fmt.Errorf("negative index: %d", index)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	end, ok := AddOverflowSafe(index, count)
	if !ok {
		return 0, fmt.Errorf("overflow: index=%d + count=%d", index, count)
	}
	if end > size {
		return 0, fmt.Errorf("bounds: end=%d > size=%d", end, size)
	}
	return end, nil
}

// Clamp returns min(count, size-pos), the number of elements available from
// pos. pos must already be within [0, size].
func Clamp(count, size, pos int) int {
	if count < 0 || count > size-pos {
		return size - pos
	}
	return count
}
