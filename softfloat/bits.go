// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements IEEE-754 single-precision division for
// targets without a floating-point unit.
// Denormals are flushed to zero: they are never produced, and a denormal
// operand is treated as zero.
package softfloat

import (
	"fmt"
	"math"
)

const (
	bitsInNumber = 32
	expBits      = 8
	mantBits     = 23

	bias     = 1<<(expBits-1) - 1
	expMask  = 1<<expBits - 1
	mantMask = 1<<mantBits - 1
	hidden   = 1 << mantBits
	signBit  = 1 << (bitsInNumber - 1)
	maxExp   = expMask
)

const (
	// Inf is the bit pattern of positive infinity.
	Inf = Bits(maxExp << mantBits)
	// NegInf is the bit pattern of negative infinity.
	NegInf = Bits(signBit | maxExp<<mantBits)
	// NaN is the quiet NaN produced by the runtime.
	NaN = Bits(maxExp<<mantBits | 1<<(mantBits-1))
)

// Bits is the bit pattern of a single-precision number.
//   31 30     22                     0
//   _|________|_______________________
//   seeeeeeeemmmmmmmmmmmmmmmmmmmmmmmmm
//
// The exponent is biased by 127. A zero exponent field means zero
// or a denormal, 0xff means infinity or NaN.
type Bits uint32

// FromFloat32 returns the bit pattern of f.
func FromFloat32(f float32) Bits {
	return Bits(math.Float32bits(f))
}

// Float32 returns b as a float32.
func (b Bits) Float32() float32 {
	return math.Float32frombits(uint32(b))
}

// Pack assembles a pattern from its fields.
// sign is 0 or 1, exp is the biased exponent, mant the stored 23 bits.
func Pack(sign uint32, exp int, mant uint32) Bits {
	return Bits(sign<<(bitsInNumber-1) | uint32(exp)<<mantBits | mant)
}

// Sign returns the sign bit, 0 or 1.
func (b Bits) Sign() uint32 {
	return uint32(b) >> (bitsInNumber - 1)
}

// Exp returns the biased exponent field.
func (b Bits) Exp() int {
	return int(uint32(b) >> mantBits & expMask)
}

// Mant returns the stored 23-bit mantissa, without the implicit bit.
func (b Bits) Mant() uint32 {
	return uint32(b) & mantMask
}

// IsZero reports whether b is zero or a denormal, both of which
// the runtime treats as zero.
func (b Bits) IsZero() bool {
	return b.Exp() == 0
}

// IsNaN reports whether b is a NaN.
func (b Bits) IsNaN() bool {
	return b.Exp() == maxExp && b.Mant() != 0
}

// IsInf reports whether b is an infinity of either sign.
func (b Bits) IsInf() bool {
	return b.Exp() == maxExp && b.Mant() == 0
}

// GoString returns a debug representation, like `1.5 {0, 127, 0x400000}`.
func (b Bits) GoString() string {
	return fmt.Sprintf("%v {%d, %d, %#x}", b.Float32(), b.Sign(), b.Exp(), b.Mant())
}

// mant24 returns the mantissa with the implicit leading bit.
func mant24(b Bits) uint32 {
	return b.Mant() | hidden
}
