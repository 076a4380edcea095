// Package safe provides checked numeric conversions for values read from the
// node and the host.
package safe

import (
	"fmt"
	"math"
)

// Integer lists the integer kinds accepted by the checked conversions.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// Uint32 converts v to uint32, rejecting negatives and values above MaxUint32.
func Uint32[T Integer](v T) (uint32, error) {
	u, err := Uint64(v)
	if err != nil || u > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(u), nil
}

// Uint64FromFloat truncates a non-negative finite float into uint64.
func Uint64FromFloat(v float64) (uint64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= math.MaxUint64 {
		return 0, fmt.Errorf("value %v out of uint64 range", v)
	}
	return uint64(v), nil
}

// Int clamps v into [lo, hi] and truncates it. NaN maps to lo.
func Int(v float64, lo, hi int) int {
	switch {
	case math.IsNaN(v) || v < float64(lo):
		return lo
	case v > float64(hi):
		return hi
	default:
		return int(v)
	}
}
