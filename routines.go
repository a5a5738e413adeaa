// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softrt is a software arithmetic runtime for narrow targets.
// It gathers the helper routines a code generator must call where the
// target has no instruction for an operation, under the names the
// generated code links against.
//
// The routines live in their own packages:
//   intdiv    32/64-bit division and modulo
//   intmul    32/64-bit truncating multiplication
//   shift     64-bit shifts
//   softfloat single-precision division
package softrt

import (
	"errors"
	"fmt"
	"sort"

	"github.com/avdva/softrt/intdiv"
	"github.com/avdva/softrt/intmul"
	"github.com/avdva/softrt/limits"
	"github.com/avdva/softrt/shift"
	"github.com/avdva/softrt/softfloat"
)

var (
	// ErrNative is returned by Select for operations the target does inline.
	ErrNative = errors.New("operation is native to the target")
	// ErrUnsupported is returned by Select for operations the runtime lacks.
	ErrUnsupported = errors.New("operation is not supported by the runtime")
)

// Op is an arithmetic operation.
type Op int

const (
	OpDiv Op = iota
	OpMod
	OpMul
	OpShl
	OpShr
)

var opNames = [...]string{"div", "mod", "mul", "shl", "shr"}

func (op Op) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return opNames[op]
}

// Type is the operand type of an operation.
type Type int

const (
	Int32 Type = iota
	Uint32
	Int64
	Uint64
	Float32
)

var typeNames = [...]string{"int32", "uint32", "int64", "uint64", "float32"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Bits returns the width of t.
func (t Type) Bits() int {
	switch t {
	case Int64, Uint64:
		return limits.LongLongBits
	default:
		return limits.LongBits
	}
}

// Signed reports whether t is a signed integer or float type.
func (t Type) Signed() bool {
	return t == Int32 || t == Int64 || t == Float32
}

// Routine is a runtime helper.
// Eval takes and returns raw bit patterns: 32-bit operands in the low half,
// the shift amount in the low byte of b, floats as their IEEE-754 bits.
type Routine struct {
	Name string
	Op   Op
	Type Type
	Eval func(a, b uint64) uint64
}

func (r Routine) String() string {
	return fmt.Sprintf("%s (%s %s)", r.Name, r.Op, r.Type)
}

type key struct {
	op Op
	t  Type
}

var (
	table = map[key]Routine{}
	named = map[string]Routine{}
)

func init() {
	for _, r := range []Routine{
		{"_divulong", OpDiv, Uint32, u32(intdiv.DivU32)},
		{"_divslong", OpDiv, Int32, s32(intdiv.DivS32)},
		{"_modulong", OpMod, Uint32, u32(intdiv.ModU32)},
		{"_modslong", OpMod, Int32, s32(intdiv.ModS32)},
		{"_divulonglong", OpDiv, Uint64, intdiv.DivU64},
		{"_divslonglong", OpDiv, Int64, s64(intdiv.DivS64)},
		{"_modulonglong", OpMod, Uint64, intdiv.ModU64},
		{"_modslonglong", OpMod, Int64, s64(intdiv.ModS64)},
		{"_mullong", OpMul, Int32, u32(intmul.MulTrunc32)},
		{"_mullonglong", OpMul, Int64, intmul.MulTrunc64},
		{"_rlulonglong", OpShl, Uint64, shifter(shift.Shl64)},
		{"_rlslonglong", OpShl, Int64, shifter(shift.Shl64)},
		{"_rrulonglong", OpShr, Uint64, shifter(shift.ShrLogical64)},
		{"_rrslonglong", OpShr, Int64, shifter(shift.ShrArith64)},
		{"___fsdiv", OpDiv, Float32, fdiv},
	} {
		table[key{r.Op, r.Type}] = r
		named[r.Name] = r
	}
	// two's complement products don't depend on signedness.
	table[key{OpMul, Uint32}] = named["_mullong"]
	table[key{OpMul, Uint64}] = named["_mullonglong"]
}

// Select returns the routine generated code must call for op on operands of type t.
// It returns an error wrapping ErrNative if the target does op inline,
// or ErrUnsupported if the runtime has no routine for it.
func Select(op Op, t Type) (Routine, error) {
	if r, found := table[key{op, t}]; found {
		return r, nil
	}
	if (op == OpShl || op == OpShr) && t != Float32 && limits.NativeShift(t.Bits()) {
		return Routine{}, fmt.Errorf("%s %s: %w", op, t, ErrNative)
	}
	return Routine{}, fmt.Errorf("%s %s: %w", op, t, ErrUnsupported)
}

// Lookup returns the routine with the given link name.
func Lookup(name string) (Routine, bool) {
	r, found := named[name]
	return r, found
}

// Routines returns all routines, sorted by name.
func Routines() []Routine {
	result := make([]Routine, 0, len(named))
	for _, r := range named {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func u32(f func(a, b uint32) uint32) func(a, b uint64) uint64 {
	return func(a, b uint64) uint64 {
		return uint64(f(uint32(a), uint32(b)))
	}
}

func s32(f func(a, b int32) int32) func(a, b uint64) uint64 {
	return func(a, b uint64) uint64 {
		return uint64(uint32(f(int32(a), int32(b))))
	}
}

func s64(f func(a, b int64) int64) func(a, b uint64) uint64 {
	return func(a, b uint64) uint64 {
		return uint64(f(int64(a), int64(b)))
	}
}

func shifter(f func(v uint64, s uint8) uint64) func(a, b uint64) uint64 {
	return func(a, b uint64) uint64 {
		return f(a, uint8(b))
	}
}

func fdiv(a, b uint64) uint64 {
	return uint64(softfloat.DivBits(softfloat.Bits(a), softfloat.Bits(b)))
}
