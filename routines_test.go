// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softrt

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		op   Op
		t    Type
		name string
		err  error
	}{
		{OpDiv, Uint32, "_divulong", nil},
		{OpDiv, Int32, "_divslong", nil},
		{OpMod, Uint32, "_modulong", nil},
		{OpMod, Int32, "_modslong", nil},
		{OpDiv, Uint64, "_divulonglong", nil},
		{OpDiv, Int64, "_divslonglong", nil},
		{OpMod, Uint64, "_modulonglong", nil},
		{OpMod, Int64, "_modslonglong", nil},
		{OpMul, Int32, "_mullong", nil},
		{OpMul, Uint32, "_mullong", nil},
		{OpMul, Int64, "_mullonglong", nil},
		{OpMul, Uint64, "_mullonglong", nil},
		{OpShl, Uint64, "_rlulonglong", nil},
		{OpShl, Int64, "_rlslonglong", nil},
		{OpShr, Uint64, "_rrulonglong", nil},
		{OpShr, Int64, "_rrslonglong", nil},
		{OpDiv, Float32, "___fsdiv", nil},
		{OpShl, Uint32, "", ErrNative},
		{OpShr, Int32, "", ErrNative},
		{OpMul, Float32, "", ErrUnsupported},
		{OpMod, Float32, "", ErrUnsupported},
		{OpShl, Float32, "", ErrUnsupported},
		{OpShr, Float32, "", ErrUnsupported},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := Select(test.op, test.t)
			if test.err != nil {
				a.True(errors.Is(err, test.err), "%v", err)
				return
			}
			if a.NoError(err) {
				a.Equal(test.name, r.Name)
				l, found := Lookup(r.Name)
				a.True(found)
				a.Equal(r.Name, l.Name)
			}
		})
	}
	_, err := Select(OpMul, Float32)
	a.EqualError(err, "mul float32: operation is not supported by the runtime")
	_, err = Select(OpShr, Float32)
	a.False(errors.Is(err, ErrNative))
	a.EqualError(err, "shr float32: operation is not supported by the runtime")
}

func TestRoutines(t *testing.T) {
	a := assert.New(t)
	all := Routines()
	a.Len(all, 15)
	for i := 1; i < len(all); i++ {
		a.Less(all[i-1].Name, all[i].Name)
	}
	_, found := Lookup("_divfoo")
	a.False(found)
	a.Equal("_divslong (div int32)", all[indexOf(all, "_divslong")].String())
	a.Equal("Op(9)", Op(9).String())
	a.Equal("Type(-1)", Type(-1).String())
	a.Equal(64, Int64.Bits())
	a.Equal(32, Float32.Bits())
	a.True(Float32.Signed())
	a.False(Uint64.Signed())
}

func TestEval(t *testing.T) {
	a := assert.New(t)
	neg := func(v int64) uint64 { return uint64(v) }
	neg32 := func(v int32) uint64 { return uint64(uint32(v)) }
	tests := []struct {
		name   string
		a, b   uint64
		result uint64
	}{
		{"_divslong", neg32(-7), 3, neg32(-2)},
		{"_modslong", neg32(-7), 3, neg32(-1)},
		{"_divslong", 7, neg32(-3), neg32(-2)},
		{"_modslong", 7, neg32(-3), 1},
		{"_divulong", 12345, 0, math.MaxUint32},
		{"_modulong", 5010, 125, 10},
		{"_divslonglong", neg(-1000000000000), 7, neg(-142857142857)},
		{"_modslonglong", neg(-1000000000000), 7, neg(-1)},
		{"_divulonglong", math.MaxUint64, 2, math.MaxUint64 / 2},
		{"_modulonglong", 100, 7, 2},
		{"_mullong", 0xffffffff, 2, 0xfffffffe},
		{"_mullonglong", math.MaxUint64, math.MaxUint64, 1},
		{"_rlulonglong", 1, 63, 1 << 63},
		{"_rrulonglong", 1 << 63, 63, 1},
		{"_rrslonglong", 1 << 63, 1, 0xc000000000000000},
		{"___fsdiv", uint64(math.Float32bits(6)), uint64(math.Float32bits(3)), 0x40000000},
		{"___fsdiv", uint64(math.Float32bits(-1)), 0, 0xff800000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, found := Lookup(test.name)
			require.True(t, found)
			a.Equal(test.result, r.Eval(test.a, test.b))
		})
	}
}

func indexOf(rs []Routine, name string) int {
	for i, r := range rs {
		if r.Name == name {
			return i
		}
	}
	return -1
}
