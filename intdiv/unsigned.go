// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package intdiv implements 32-bit and 64-bit integer division and modulo
// for targets with no divide instruction.
//
// Quotients come from binary restoring division, one quotient bit per
// iteration. The 64-bit modulo uses normalized subtraction instead:
// the divisor is first aligned under the dividend, then subtracted while
// it is walked back down.
//
// None of the routines checks for a zero divisor. Division by zero yields
// an all-ones quotient and a remainder equal to the dividend. Callers that
// need anything else must check before calling.
package intdiv

const (
	bitsInLong     = 32
	bitsInLongLong = 64
)

// DivU32 returns x / y.
func DivU32(x, y uint32) uint32 {
	quo, _ := restore32(x, y)
	return quo
}

// ModU32 returns x % y.
func ModU32(x, y uint32) uint32 {
	_, rem := restore32(x, y)
	return rem
}

// DivU64 returns x / y.
func DivU64(x, y uint64) uint64 {
	quo, _ := restore64(x, y)
	return quo
}

// ModU64 returns a % b.
func ModU64(a, b uint64) uint64 {
	if b == 0 {
		return a
	}
	var count int
	for b>>(bitsInLongLong-1) == 0 {
		b <<= 1
		if b > a {
			b >>= 1
			break
		}
		count++
	}
	for ; count >= 0; count-- {
		if a >= b {
			a -= b
		}
		b >>= 1
	}
	return a
}

// restore32 shifts x through the remainder register bit by bit.
// A quotient bit takes the place vacated in x by the shifted out bit,
// so after 32 rounds x holds the quotient.
// After k rounds rem is the top k bits of x modulo y, so rem<<1|c can't
// overflow the register.
func restore32(x, y uint32) (quo, rem uint32) {
	for count := bitsInLong; count > 0; count-- {
		c := x >> (bitsInLong - 1)
		x <<= 1
		rem = rem<<1 | c
		if rem >= y {
			rem -= y
			x |= 1
		}
	}
	return x, rem
}

// restore64 is restore32 for 64-bit operands.
func restore64(x, y uint64) (quo, rem uint64) {
	for count := bitsInLongLong; count > 0; count-- {
		c := x >> (bitsInLongLong - 1)
		x <<= 1
		rem = rem<<1 | c
		if rem >= y {
			rem -= y
			x |= 1
		}
	}
	return x, rem
}
