package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts a position to uint32, rejecting negative values and
// values above math.MaxUint32.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("position %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("position %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts a bitmap value back to a position.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// Span converts the half-open position range [lo, hi) to bitmap bounds.
// Empty or invalid ranges report ok=false.
func Span(lo, hi int) (start, end uint64, ok bool) {
	if lo < 0 || hi <= lo {
		return 0, 0, false
	}
	if uint64(hi) > math.MaxUint32+1 {
		return 0, 0, false
	}
	return uint64(lo), uint64(hi), true
}
