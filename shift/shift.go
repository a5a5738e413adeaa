// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package shift implements 64-bit shifts for targets whose widest shift
// works on a 16-bit word.
//
// A value is handled as four 16-bit words, least significant first:
//   63              47              31              15             0
//   ________________|_______________|_______________|_______________
//   w3              w2              w1              w0
//
// Whole words are moved while the shift amount is at least 16, then the
// residual amount is applied to each word, carrying the bits that cross a
// word boundary over from the neighbor.
//
// Shift amounts of 64 or more are a caller error. The result for them is
// deterministic (every bit is shifted out) but is not part of the contract.
package shift

import (
	mu "github.com/avdva/softrt/internal/mathutil"
)

const (
	wordBits = 16
	words    = 4
	top      = words - 1
	signMask = 1 << (wordBits - 1)
)

// Shl64 returns v << s. Vacated low bits are zero.
func Shl64(v uint64, s uint8) uint64 {
	w := mu.Words64(v)
	for ; s >= wordBits; s -= wordBits {
		copy(w[1:], w[:top])
		w[0] = 0
	}
	for i := top; i > 0; i-- {
		w[i] = w[i]<<s | w[i-1]>>(wordBits-s)
	}
	w[0] <<= s
	return mu.JoinWords64(w)
}

// ShrLogical64 returns v >> s. Vacated high bits are zero.
func ShrLogical64(v uint64, s uint8) uint64 {
	return shr(v, s, false)
}

// ShrArith64 returns v >> s, treating v as a two's complement number:
// vacated high bits are copies of the original sign bit.
func ShrArith64(v uint64, s uint8) uint64 {
	return shr(v, s, true)
}

func shr(v uint64, s uint8, arith bool) uint64 {
	w := mu.Words64(v)
	var fill uint16
	if arith && w[top]&signMask != 0 {
		fill = 0xffff
	}
	for ; s >= wordBits; s -= wordBits {
		copy(w[:top], w[1:])
		w[top] = fill
	}
	for i := 0; i < top; i++ {
		w[i] = w[i]>>s | w[i+1]<<(wordBits-s)
	}
	if arith {
		w[top] = uint16(int16(w[top]) >> s)
	} else {
		w[top] >>= s
	}
	return mu.JoinWords64(w)
}
