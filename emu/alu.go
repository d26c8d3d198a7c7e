package emu

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/sarchlab/rvsim/insts"
)

// Execute computes the result of a non-memory operation from its two
// operand values. pc is the byte address of the instruction itself, used
// by AUIPC and JALR. Memory operations are handled by the timing engine
// and are rejected here.
func Execute(class insts.Class, op insts.Op, a, b Value, pc uint64) (Value, error) {
	switch class {
	case insts.ClassIntALU:
		return execIntALU(op, a, b, pc)
	case insts.ClassMulDiv:
		return execMulDiv(op, a, b)
	case insts.ClassFPAdd:
		return execFPAdd(op, a, b)
	case insts.ClassFPMul, insts.ClassFPDiv:
		return execFPMulDiv(op, a, b)
	default:
		return Value{}, fmt.Errorf("operation %s has no execution unit", op.Name())
	}
}

// execIntALU implements the single-cycle integer path, including the
// in-order-resolved control-flow operations. Shift amounts use the low
// six bits per RV64.
func execIntALU(op insts.Op, a, b Value, pc uint64) (Value, error) {
	j := a.Int()
	k := b.Int()

	switch op {
	case insts.OpADD, insts.OpADDI:
		return IntValue(j + k), nil
	case insts.OpSUB:
		return IntValue(j - k), nil
	case insts.OpAND, insts.OpANDI:
		return IntValue(j & k), nil
	case insts.OpOR, insts.OpORI:
		return IntValue(j | k), nil
	case insts.OpXOR, insts.OpXORI:
		return IntValue(j ^ k), nil
	case insts.OpSLT, insts.OpSLTI:
		if int64(j) < int64(k) {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	case insts.OpSLTU, insts.OpSLTIU:
		if j < k {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	case insts.OpSLL:
		return IntValue(j << (k & 0x3F)), nil
	case insts.OpSRL:
		return IntValue(j >> (k & 0x3F)), nil
	case insts.OpSRA:
		return IntValue(uint64(int64(j) >> (k & 0x3F))), nil
	case insts.OpLUI:
		// The upper immediate arrives pre-shifted in the second operand.
		return b, nil
	case insts.OpAUIPC:
		return IntValue(pc + k), nil
	case insts.OpJALR:
		// The link value; the redirect itself is the engine's business.
		return IntValue(pc + 4), nil
	case insts.OpBNE:
		if j != k {
			return IntValue(1), nil
		}
		return IntValue(0), nil
	default:
		return Value{}, fmt.Errorf("unsupported integer ALU operation %s", op.Name())
	}
}

// execMulDiv implements the M extension. Division by zero follows the
// RISC-V convention: quotients become all ones, remainders the dividend.
func execMulDiv(op insts.Op, a, b Value) (Value, error) {
	uj := a.Int()
	uk := b.Int()
	j := int64(uj)
	k := int64(uk)

	switch op {
	case insts.OpMUL:
		return IntValue(uj * uk), nil
	case insts.OpMULH:
		return IntValue(mulhSigned(j, k)), nil
	case insts.OpMULHSU:
		return IntValue(mulhSignedUnsigned(j, uk)), nil
	case insts.OpMULHU:
		hi, _ := bits.Mul64(uj, uk)
		return IntValue(hi), nil
	case insts.OpDIV:
		if k == 0 {
			return IntValue(^uint64(0)), nil
		}
		return IntValue(uint64(j / k)), nil
	case insts.OpDIVU:
		if uk == 0 {
			return IntValue(^uint64(0)), nil
		}
		return IntValue(uj / uk), nil
	case insts.OpREM:
		if k == 0 {
			return a, nil
		}
		return IntValue(uint64(j % k)), nil
	case insts.OpREMU:
		if uk == 0 {
			return a, nil
		}
		return IntValue(uj % uk), nil
	default:
		return Value{}, fmt.Errorf("unsupported mul/div operation %s", op.Name())
	}
}

// mulhSigned returns the high 64 bits of a signed 128-bit product.
func mulhSigned(j, k int64) uint64 {
	hi, _ := bits.Mul64(uint64(j), uint64(k))
	if j < 0 {
		hi -= uint64(k)
	}
	if k < 0 {
		hi -= uint64(j)
	}
	return hi
}

// mulhSignedUnsigned returns the high 64 bits of a signed x unsigned
// 128-bit product.
func mulhSignedUnsigned(j int64, uk uint64) uint64 {
	hi, _ := bits.Mul64(uint64(j), uk)
	if j < 0 {
		hi -= uk
	}
	return hi
}

// execFPAdd implements the FP adder path: add, sub, and the compares.
// Compares produce 1.0 or 0.0.
func execFPAdd(op insts.Op, a, b Value) (Value, error) {
	fj := a.Float()
	fk := b.Float()

	switch op {
	case insts.OpFADDD:
		return FloatValue(fj + fk), nil
	case insts.OpFSUBD:
		return FloatValue(fj - fk), nil
	case insts.OpFEQD:
		return boolFloat(fj == fk), nil
	case insts.OpFLTD:
		return boolFloat(fj < fk), nil
	case insts.OpFLED:
		return boolFloat(fj <= fk), nil
	default:
		return Value{}, fmt.Errorf("unsupported FP add operation %s", op.Name())
	}
}

// execFPMulDiv implements the FP multiplier and divider paths, including
// the int<->double conversions that share the multiplier. FP division by
// zero yields a quiet NaN.
func execFPMulDiv(op insts.Op, a, b Value) (Value, error) {
	switch op {
	case insts.OpFMULD:
		return FloatValue(a.Float() * b.Float()), nil
	case insts.OpFDIVD:
		fk := b.Float()
		if fk == 0.0 {
			return FloatValue(math.NaN()), nil
		}
		return FloatValue(a.Float() / fk), nil
	case insts.OpFCVTDW:
		return FloatValue(float64(int32(a.Int()))), nil
	case insts.OpFCVTWD:
		return IntValue(uint64(uint32(int32(a.Float())))), nil
	default:
		return Value{}, fmt.Errorf("unsupported FP mul/div operation %s", op.Name())
	}
}

func boolFloat(b bool) Value {
	if b {
		return FloatValue(1.0)
	}
	return FloatValue(0.0)
}
