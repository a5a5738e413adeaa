// Package conformance checks the runtime routines against expected results.
//
// Vectors are kept in YAML suites, like
//
//	name: core
//	cases:
//	  - name: s32 -7/3==-2
//	    routine: _divslong
//	    a: -7
//	    b: 3
//	    want: -2
//
// Operands are integers in Go syntax (`-7`, `0xff`, `0b101`), or, for float
// routines, decimal floats, `inf`, `-inf`, `nan`, or a raw `0x` bit pattern.
// A `nan` result matches any NaN.
package conformance

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/avdva/softrt"
	"github.com/avdva/softrt/softfloat"
)

//go:embed default.yaml
var defaultSuite []byte

var (
	// ErrUnknownRoutine is returned for a case naming no runtime routine.
	ErrUnknownRoutine = errors.New("unknown routine")
	errEmpty          = errors.New("empty operand")
	errNotScalar      = errors.New("operand must be a scalar")
)

// Suite is a named list of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Case is a single vector: Routine(A, B) must give Want.
type Case struct {
	Name    string  `yaml:"name"`
	Routine string  `yaml:"routine"`
	A       Operand `yaml:"a"`
	B       Operand `yaml:"b"`
	Want    Operand `yaml:"want"`
}

// Operand is the literal text of an operand, parsed once the routine's type is known.
type Operand string

// UnmarshalYAML implements yaml.Unmarshaler for Operand.
// The text is kept as written, so `0x80000000` is not reinterpreted as a number.
func (o *Operand) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w", value.Line, errNotScalar)
	}
	*o = Operand(value.Value)
	return nil
}

// Default returns the built-in suite.
func Default() *Suite {
	s, err := Parse(defaultSuite)
	if err != nil {
		panic(fmt.Sprintf("default suite: %v", err))
	}
	return s
}

// Load reads a suite from a YAML file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Parse decodes a suite from YAML.
func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}
	return &s, nil
}

// vector is a case resolved against the routine table.
type vector struct {
	routine softrt.Routine
	a, b    uint64
	want    uint64
	anyNaN  bool
}

func (c Case) resolve() (vector, error) {
	r, found := softrt.Lookup(c.Routine)
	if !found {
		return vector{}, fmt.Errorf("%q: %w", c.Routine, ErrUnknownRoutine)
	}
	v := vector{routine: r}
	var err error
	if v.a, err = parseOperand(string(c.A), r.Type); err != nil {
		return vector{}, fmt.Errorf("operand a: %w", err)
	}
	if r.Op == softrt.OpShl || r.Op == softrt.OpShr {
		v.b, err = parseShift(string(c.B))
	} else {
		v.b, err = parseOperand(string(c.B), r.Type)
	}
	if err != nil {
		return vector{}, fmt.Errorf("operand b: %w", err)
	}
	if v.want, err = parseOperand(string(c.Want), r.Type); err != nil {
		return vector{}, fmt.Errorf("want: %w", err)
	}
	v.anyNaN = r.Type == softrt.Float32 && softfloat.Bits(v.want).IsNaN()
	return v, nil
}

// check evaluates the vector and reports the result and whether it matches.
func (v vector) check() (got uint64, ok bool) {
	got = v.routine.Eval(v.a, v.b) & widthMask(v.routine.Type)
	if v.anyNaN {
		return got, softfloat.Bits(got).IsNaN()
	}
	return got, got == v.want
}

func widthMask(t softrt.Type) uint64 {
	if t.Bits() == 64 {
		return math.MaxUint64
	}
	return math.MaxUint32
}

func parseOperand(s string, t softrt.Type) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmpty
	}
	switch t {
	case softrt.Float32:
		return parseFloat(s)
	default:
		return parseInt(s, t.Bits(), t.Signed())
	}
}

// parseInt accepts both signed and unsigned syntax for any integer type,
// so a negative value may also be given as its bit pattern.
func parseInt(s string, bits int, signed bool) (uint64, error) {
	mask := uint64(math.MaxUint64) >> (64 - bits)
	if u, err := strconv.ParseUint(s, 0, bits); err == nil {
		return u, nil
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return 0, err
	}
	if !signed && v < 0 {
		return 0, fmt.Errorf("negative value %q for an unsigned operand", s)
	}
	return uint64(v) & mask, nil
}

func parseFloat(s string) (uint64, error) {
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		u, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, err
		}
		return u, nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	return uint64(softfloat.FromFloat32(float32(f))), nil
}

func parseShift(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errEmpty
	}
	return strconv.ParseUint(s, 0, 8)
}
