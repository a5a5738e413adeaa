package conformance

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/avdva/softrt"
	"github.com/avdva/softrt/softfloat"
)

const maxMismatches = 100

// reference computes the expected result with native Go arithmetic.
// ok is false for operands the routine gives no defined result for,
// or where it deliberately differs from hardware.
type reference func(a, b uint64) (want uint64, ok bool)

var references = map[string]reference{
	"_divulong": func(a, b uint64) (uint64, bool) {
		if uint32(b) == 0 {
			return 0, false
		}
		return uint64(uint32(a) / uint32(b)), true
	},
	"_modulong": func(a, b uint64) (uint64, bool) {
		if uint32(b) == 0 {
			return 0, false
		}
		return uint64(uint32(a) % uint32(b)), true
	},
	"_divslong": func(a, b uint64) (uint64, bool) {
		if int32(b) == 0 {
			return 0, false
		}
		return uint64(uint32(int32(a) / int32(b))), true
	},
	"_modslong": func(a, b uint64) (uint64, bool) {
		if int32(b) == 0 {
			return 0, false
		}
		return uint64(uint32(int32(a) % int32(b))), true
	},
	"_divulonglong": func(a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return a / b, true
	},
	"_modulonglong": func(a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return a % b, true
	},
	"_divslonglong": func(a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return uint64(int64(a) / int64(b)), true
	},
	"_modslonglong": func(a, b uint64) (uint64, bool) {
		if b == 0 {
			return 0, false
		}
		return uint64(int64(a) % int64(b)), true
	},
	"_mullong": func(a, b uint64) (uint64, bool) {
		return uint64(uint32(a) * uint32(b)), true
	},
	"_mullonglong": func(a, b uint64) (uint64, bool) {
		return a * b, true
	},
	"_rlulonglong": func(a, b uint64) (uint64, bool) {
		return a << (b & 63), true
	},
	"_rlslonglong": func(a, b uint64) (uint64, bool) {
		return uint64(int64(a) << (b & 63)), true
	},
	"_rrulonglong": func(a, b uint64) (uint64, bool) {
		return a >> (b & 63), true
	},
	"_rrslonglong": func(a, b uint64) (uint64, bool) {
		return uint64(int64(a) >> (b & 63)), true
	},
	"___fsdiv": func(a, b uint64) (uint64, bool) {
		x, y := softfloat.Bits(a), softfloat.Bits(b)
		if !normal(x) || !normal(y) {
			return 0, false
		}
		q := x.Float32() / y.Float32()
		// flushed to zero by the runtime, and a denormal on hardware.
		if math.Abs(float64(q)) <= 0x1p-126 {
			return 0, false
		}
		return uint64(softfloat.FromFloat32(q)), true
	},
}

func normal(b softfloat.Bits) bool {
	return !b.IsZero() && !b.IsNaN() && !b.IsInf()
}

// SweepOptions configures Sweep.
type SweepOptions struct {
	// N is the number of operand pairs per routine.
	N int
	// Seed makes the run reproducible.
	Seed int64
	// Routines limits the sweep to the named routines. Empty means all.
	Routines []string
	// Progress, if set, is called once per generated operand pair.
	Progress func()
}

// Mismatch is a routine result that differs from native arithmetic.
type Mismatch struct {
	Routine         string
	A, B, Got, Want uint64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s(%#x, %#x) = %#x, want %#x", m.Routine, m.A, m.B, m.Got, m.Want)
}

// SweepReport is the outcome of Sweep.
type SweepReport struct {
	Checked int
	Skipped int
	// Mismatches holds up to the first 100 mismatches, MismatchCount counts all of them.
	Mismatches    []Mismatch
	MismatchCount int
}

// Sweep compares routines against native Go arithmetic on random operands.
// Pairs without a defined result, like a zero divisor, are counted as skipped.
func Sweep(opts SweepOptions) (SweepReport, error) {
	var routines []softrt.Routine
	if len(opts.Routines) == 0 {
		routines = softrt.Routines()
	} else {
		for _, name := range opts.Routines {
			r, found := softrt.Lookup(name)
			if !found {
				return SweepReport{}, fmt.Errorf("%q: %w", name, ErrUnknownRoutine)
			}
			routines = append(routines, r)
		}
	}

	var report SweepReport
	rnd := rand.New(rand.NewSource(opts.Seed))
	for _, r := range routines {
		ref, found := references[r.Name]
		if !found {
			return report, fmt.Errorf("%s: no reference implementation", r.Name)
		}
		mask := widthMask(r.Type)
		for i := 0; i < opts.N; i++ {
			a, b := operand(rnd, r), operand(rnd, r)
			if r.Op == softrt.OpShl || r.Op == softrt.OpShr {
				b = uint64(rnd.Intn(64))
			}
			if opts.Progress != nil {
				opts.Progress()
			}
			want, ok := ref(a, b)
			if !ok {
				report.Skipped++
				continue
			}
			report.Checked++
			if got := r.Eval(a, b) & mask; got != want&mask {
				report.MismatchCount++
				if len(report.Mismatches) < maxMismatches {
					report.Mismatches = append(report.Mismatches, Mismatch{r.Name, a, b, got, want & mask})
				}
			}
		}
	}
	return report, nil
}

// operand returns a random value of r's width. Integers are shifted down by
// a random amount so that small divisors and dividends come up often.
// Signed operands are negated half of the time.
func operand(rnd *rand.Rand, r softrt.Routine) uint64 {
	mask := widthMask(r.Type)
	v := rnd.Uint64() & mask
	if r.Type == softrt.Float32 {
		return v
	}
	v >>= uint(rnd.Intn(r.Type.Bits()))
	if r.Type.Signed() && rnd.Intn(2) == 0 {
		v = -v & mask
	}
	return v
}
