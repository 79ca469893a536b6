// Package conv provides checked conversions between Go's int positions and
// the uint32 values stored in roaring bitmaps.
//
// Section and item positions are plain ints in the public API. Index sets are
// backed by 32-bit roaring bitmaps, so every position crossing that boundary
// goes through this package.
package conv
