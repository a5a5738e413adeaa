// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

// excess is added to the exponent difference. It is one less than bias,
// the m1 >= m2 case adds the missing one back.
const excess = bias - 1

// Div returns a / b.
func Div(a, b float32) float32 {
	return DivBits(FromFloat32(a), FromFloat32(b)).Float32()
}

// DivBits returns a / b for bit patterns.
//
// A zero or denormal divisor gives a signed infinity taking the sign of a,
// or NaN if a is zero, denormal or NaN itself.
// Results too small to be normal are +0, too big ones are a signed infinity.
// Infinite and NaN operands are not special-cased otherwise.
func DivBits(a, b Bits) Bits {
	if b.IsZero() {
		switch {
		case a.IsZero() || a.IsNaN():
			return NaN
		case a.Sign() == 0:
			return Inf
		default:
			return NegInf
		}
	}
	return div(a, b)
}

func div(a, b Bits) Bits {
	// numerator denormal or zero.
	if a.IsZero() {
		return 0
	}
	exp := a.Exp() - b.Exp() + excess
	sign := a.Sign() ^ b.Sign()
	m1, m2 := mant24(a), mant24(b)

	// gives 24 bits of quotient in any case.
	var mask uint32
	if m1 < m2 {
		mask = hidden << 1
	} else {
		mask = hidden
		exp++
	}

	if exp < 1 {
		return 0
	}
	if exp >= maxExp {
		return Pack(sign, maxExp, 0)
	}

	var result uint32
	for ; mask != 0; mask >>= 1 {
		if m1 >= m2 {
			m1 -= m2
			result |= mask
		}
		m1 <<= 1
	}
	// round
	if m1 >= m2 {
		result++
	}
	return Pack(sign, exp, result&^hidden)
}
