// Package limits describes the integer widths of the narrow target the
// runtime is built for: 8-bit char, 16-bit int, 32-bit long and 64-bit
// long long. Everything here is a compile-time constant.
package limits

import "math"

// CharBit is the number of bits in a byte.
const CharBit = 8

// Widths of the target's C integer types, in bits.
const (
	IntBits      = 16
	LongBits     = 32
	LongLongBits = 64
)

const (
	Int8Min   = math.MinInt8
	Int8Max   = math.MaxInt8
	Uint8Max  = math.MaxUint8
	Int16Min  = math.MinInt16
	Int16Max  = math.MaxInt16
	Uint16Max = math.MaxUint16
	Int32Min  = math.MinInt32
	Int32Max  = math.MaxInt32
	Uint32Max = math.MaxUint32
	Int64Min  = math.MinInt64
	Int64Max  = math.MaxInt64
	Uint64Max = math.MaxUint64
)

// C names for the same limits, as the target headers spell them.
const (
	SCharMin = Int8Min
	SCharMax = Int8Max
	UCharMax = Uint8Max
	IntMin   = Int16Min
	IntMax   = Int16Max
	UIntMax  = Uint16Max
	LongMin  = Int32Min
	LongMax  = Int32Max
	ULongMax = Uint32Max
)

// NativeShift reports whether the target shifts an integer of the given
// width in bits without a runtime helper. Shifts are native up to long,
// unlike division and multiplication, which need helpers above int.
func NativeShift(bits int) bool {
	return bits <= LongBits
}
