// Copyright 2020 Aleksandr Demakin. All rights reserved.

package intdiv

import (
	mu "github.com/avdva/softrt/internal/mathutil"
)

// DivS32 returns x / y truncated toward zero.
// The quotient is negative iff exactly one operand is negative.
// DivS32(math.MinInt32, -1) wraps to math.MinInt32.
func DivS32(x, y int32) int32 {
	r := int32(DivU32(mu.AbsInt32(x), mu.AbsInt32(y)))
	if (x < 0) != (y < 0) {
		return -r
	}
	return r
}

// ModS32 returns x % y. A non-zero result has the sign of x.
func ModS32(x, y int32) int32 {
	r := int32(ModU32(mu.AbsInt32(x), mu.AbsInt32(y)))
	if x < 0 {
		return -r
	}
	return r
}

// DivS64 returns x / y truncated toward zero.
// The quotient is negative iff exactly one operand is negative.
// DivS64(math.MinInt64, -1) wraps to math.MinInt64.
func DivS64(x, y int64) int64 {
	r := int64(DivU64(mu.AbsInt64(x), mu.AbsInt64(y)))
	if !mu.SameSign(x, y) {
		return -r
	}
	return r
}

// ModS64 returns x % y. A non-zero result has the sign of x.
func ModS64(x, y int64) int64 {
	r := int64(ModU64(mu.AbsInt64(x), mu.AbsInt64(y)))
	if x < 0 {
		return -r
	}
	return r
}

// DivMod32 returns both x / y and x % y, so that x == quo*y + rem.
func DivMod32(x, y int32) (quo, rem int32) {
	return DivS32(x, y), ModS32(x, y)
}

// DivMod64 returns both x / y and x % y, so that x == quo*y + rem.
func DivMod64(x, y int64) (quo, rem int64) {
	return DivS64(x, y), ModS64(x, y)
}
