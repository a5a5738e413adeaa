// Package mathutil holds narrow-word helpers shared by the arithmetic engines.
// Wide values are always split and joined through shift-and-mask, least
// significant part first, so the result does not depend on host byte order.
package mathutil

import (
	"unsafe"
)

const (
	bitsInInt32 = unsafe.Sizeof(int32(0)) * 8
	bitsInInt64 = unsafe.Sizeof(int64(0)) * 8
)

// Halves32 splits v into its low and high 16-bit halves.
func Halves32(v uint32) (lo, hi uint16) {
	return uint16(v), uint16(v >> 16)
}

// JoinHalves32 is the inverse of Halves32.
func JoinHalves32(lo, hi uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// Bytes16 splits v into its low and high bytes, widened to 16 bits
// so that a byte product cannot overflow.
func Bytes16(v uint16) (lo, hi uint16) {
	return v & 0xff, v >> 8
}

// Bytes64 returns the eight bytes of v, least significant first.
func Bytes64(v uint64) (b [8]uint8) {
	for i := range b {
		b[i] = uint8(v >> (8 * i))
	}
	return b
}

// Words64 returns the four 16-bit words of v, least significant first.
func Words64(v uint64) (w [4]uint16) {
	for i := range w {
		w[i] = uint16(v >> (16 * i))
	}
	return w
}

// JoinWords64 is the inverse of Words64.
func JoinWords64(w [4]uint16) uint64 {
	var v uint64
	for i := len(w) - 1; i >= 0; i-- {
		v = v<<16 | uint64(w[i])
	}
	return v
}

// AbsInt32 returns the magnitude of val.
// The result is unsigned, so math.MinInt32 maps to 1<<31.
func AbsInt32(val int32) uint32 {
	mask := val >> (bitsInInt32 - 1)
	return uint32((val + mask) ^ mask)
}

// AbsInt64 returns the magnitude of val.
// The result is unsigned, so math.MinInt64 maps to 1<<63.
func AbsInt64(val int64) uint64 {
	mask := val >> (bitsInInt64 - 1)
	return uint64((val + mask) ^ mask)
}

// SameSign reports whether a and b are both negative or both non-negative.
func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

