// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package intmul implements truncating 32-bit and 64-bit multiplication
// built from 8x8->16 and 16x16->16 products.
// Bits of the product beyond the result width are dropped, which is
// ordinary two's complement wraparound, so the same routines serve signed
// and unsigned operands.
package intmul

import (
	mu "github.com/avdva/softrt/internal/mathutil"
)

const bytesInLongLong = 8

// MulTrunc32 returns a*b mod 2^32.
//
// With a = ah:al and b = bh:bl split into 16-bit halves,
//   a*b mod 2^32 = al*bl + ((ah*bl + al*bh) mod 2^16) << 16
// al*bl needs all 32 bits, so it is assembled from byte products of
// a0:a1 and b0:b1 (the bytes of al and bl).
func MulTrunc32(a, b uint32) uint32 {
	al, ah := mu.Halves32(a)
	bl, bh := mu.Halves32(b)
	a0, a1 := mu.Bytes16(al)
	b0, b1 := mu.Bytes16(bl)

	// high half, wrapping at 16 bits.
	hi := ah*bl + al*bh + a1*b1
	lo := a0 * b0
	// the cross sum may carry into bit 16, keep it.
	mid := uint32(a0*b1) + uint32(a1*b0)

	return mu.JoinHalves32(lo, hi) + mid<<8
}

// MulTrunc64 returns a*b mod 2^64 by schoolbook multiplication of bytes.
// Products whose position is beyond byte 7 can't affect the result
// and are skipped.
func MulTrunc64(a, b uint64) uint64 {
	ab, bb := mu.Bytes64(a), mu.Bytes64(b)
	var ret uint64
	for i := 0; i < bytesInLongLong; i++ {
		l := uint16(ab[i])
		for j := 0; i+j < bytesInLongLong; j++ {
			r := uint16(bb[j])
			ret += uint64(l*r) << (8 * (i + j))
		}
	}
	return ret
}

// MulInt32 returns the truncated product of two signed 32-bit values.
func MulInt32(a, b int32) int32 {
	return int32(MulTrunc32(uint32(a), uint32(b)))
}

// MulInt64 returns the truncated product of two signed 64-bit values.
func MulInt64(a, b int64) int64 {
	return int64(MulTrunc64(uint64(a), uint64(b)))
}
