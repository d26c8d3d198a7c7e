package ooo

import (
	"github.com/sarchlab/rvsim/insts"
)

// destKind discriminates the three-way destination descriptor.
type destKind uint8

const (
	destNone destKind = iota
	destInt
	destFp
)

// destReg describes where a result retires: nowhere (stores, branches),
// an integer register, or an FP register.
type destReg struct {
	kind destKind
	idx  int
}

// destOf derives the destination descriptor from a decoded instruction.
func destOf(inst *insts.Instruction) destReg {
	switch {
	case inst.Rd >= 0:
		return destReg{kind: destInt, idx: inst.Rd}
	case inst.Fd >= 0:
		return destReg{kind: destFp, idx: inst.Fd}
	default:
		return destReg{}
	}
}

// String renders the destination for traces.
func (d destReg) String() string {
	switch d.kind {
	case destInt:
		return insts.IntRegName(d.idx)
	case destFp:
		return insts.FPRegName(d.idx)
	default:
		return "-"
	}
}
