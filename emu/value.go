// Package emu provides the architectural state of the simulated machine:
// operand values, register files, memory, and operation semantics.
package emu

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueKind discriminates the two operand worlds.
type ValueKind uint8

// Operand kinds.
const (
	KindInt ValueKind = iota
	KindFloat
)

// Value is a discriminated sum of a 64-bit integer and an IEEE-754 double.
// Implicit conversion between the two is forbidden: reading the wrong
// variant panics, since that is a programmer bug rather than a recoverable
// condition.
type Value struct {
	kind ValueKind
	bits uint64
}

// IntValue constructs an integer operand.
func IntValue(v uint64) Value {
	return Value{kind: KindInt, bits: v}
}

// FloatValue constructs a double operand.
func FloatValue(f float64) Value {
	return Value{kind: KindFloat, bits: math.Float64bits(f)}
}

// Kind returns the operand's variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsFloat reports whether the value holds a double.
func (v Value) IsFloat() bool {
	return v.kind == KindFloat
}

// Int returns the integer variant. It panics if the value holds a double.
func (v Value) Int() uint64 {
	if v.kind != KindInt {
		panic(fmt.Sprintf("operand holds a double (%v), integer expected", math.Float64frombits(v.bits)))
	}
	return v.bits
}

// Float returns the double variant. It panics if the value holds an integer.
func (v Value) Float() float64 {
	if v.kind != KindFloat {
		panic(fmt.Sprintf("operand holds an integer (%d), double expected", v.bits))
	}
	return math.Float64frombits(v.bits)
}

// String renders the value for traces: integers in decimal, doubles with
// up to six fractional digits and trailing zeros trimmed.
func (v Value) String() string {
	if v.kind == KindInt {
		return strconv.FormatUint(v.bits, 10)
	}
	s := strconv.FormatFloat(math.Float64frombits(v.bits), 'f', 6, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}
