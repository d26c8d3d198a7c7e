package insts

// Op represents a RISC-V opcode.
type Op uint16

// RISC-V opcodes (RV64IM subset plus D-extension arithmetic).
const (
	OpUnknown Op = iota
	OpADD
	OpSUB
	OpAND
	OpOR
	OpXOR
	OpSLT
	OpSLTU
	OpSLL
	OpSRL
	OpSRA
	OpADDI
	OpANDI
	OpORI
	OpXORI
	OpSLTI
	OpSLTIU
	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU
	OpLW
	OpLD
	OpSW
	OpSD
	OpLUI
	OpAUIPC
	OpJALR
	OpBNE
	OpFADDD
	OpFSUBD
	OpFMULD
	OpFDIVD
	OpFEQD
	OpFLTD
	OpFLED
	OpFCVTDW
	OpFCVTWD
	OpFLD
	OpFSD
	OpEBREAK
)

// Class identifies the reservation-station pool an operation dispatches to.
type Class uint8

// Reservation-station classes.
const (
	ClassNone Class = iota
	ClassIntALU
	ClassMulDiv
	ClassLoad
	ClassStore
	ClassFPAdd
	ClassFPMul
	ClassFPDiv
)

// String returns the pool name used in traces.
func (c Class) String() string {
	switch c {
	case ClassIntALU:
		return "INTALU"
	case ClassMulDiv:
		return "MULDIV"
	case ClassLoad:
		return "LOAD"
	case ClassStore:
		return "STORE"
	case ClassFPAdd:
		return "FPADD"
	case ClassFPMul:
		return "FPMUL"
	case ClassFPDiv:
		return "FPDIV"
	default:
		return "NONE"
	}
}

// Instruction represents a decoded RISC-V instruction.
// Register fields hold -1 when the instruction does not use them;
// at most one of Rd and Fd is non-negative.
type Instruction struct {
	// Raw is the original 32-bit instruction word, when one exists.
	Raw uint32
	// Op is the operation kind.
	Op Op

	// Rd is the integer destination register, or -1.
	Rd int
	// Rs1 is the first integer source register, or -1.
	Rs1 int
	// Rs2 is the second integer source register, or -1.
	Rs2 int

	// Fd is the FP destination register, or -1.
	Fd int
	// Fs1 is the first FP source register, or -1.
	Fs1 int
	// Fs2 is the second FP source register, or -1.
	Fs2 int

	// Imm is the sign-extended immediate.
	Imm int32

	// IsFP marks instructions that touch the FP register file.
	IsFP bool
}

// ClassOf returns the reservation-station class for an operation.
// JALR and BNE execute through the integer ALU path.
func ClassOf(op Op) Class {
	switch op {
	case OpADD, OpSUB, OpAND, OpOR, OpXOR, OpSLT, OpSLTU,
		OpADDI, OpANDI, OpORI, OpXORI, OpSLTI, OpSLTIU,
		OpSLL, OpSRL, OpSRA, OpLUI, OpAUIPC, OpJALR, OpBNE:
		return ClassIntALU
	case OpMUL, OpMULH, OpMULHSU, OpMULHU, OpDIV, OpDIVU, OpREM, OpREMU:
		return ClassMulDiv
	case OpLW, OpLD, OpFLD:
		return ClassLoad
	case OpSW, OpSD, OpFSD:
		return ClassStore
	case OpFADDD, OpFSUBD, OpFEQD, OpFLTD, OpFLED:
		return ClassFPAdd
	case OpFMULD, OpFCVTDW, OpFCVTWD:
		return ClassFPMul
	case OpFDIVD:
		return ClassFPDiv
	default:
		return ClassNone
	}
}

// IsLoad reports whether op reads memory.
func IsLoad(op Op) bool {
	return op == OpLW || op == OpLD || op == OpFLD
}

// IsStore reports whether op writes memory.
func IsStore(op Op) bool {
	return op == OpSW || op == OpSD || op == OpFSD
}

// IsFPLoad reports whether op loads into the FP register file.
func IsFPLoad(op Op) bool {
	return op == OpFLD
}

// IsFPStore reports whether op stores from the FP register file.
func IsFPStore(op Op) bool {
	return op == OpFSD
}

// mnemonics indexed by Op.
var opNames = map[Op]string{
	OpADD: "add", OpSUB: "sub", OpAND: "and", OpOR: "or", OpXOR: "xor",
	OpSLT: "slt", OpSLTU: "sltu", OpSLL: "sll", OpSRL: "srl", OpSRA: "sra",
	OpADDI: "addi", OpANDI: "andi", OpORI: "ori", OpXORI: "xori",
	OpSLTI: "slti", OpSLTIU: "sltiu",
	OpMUL: "mul", OpMULH: "mulh", OpMULHSU: "mulhsu", OpMULHU: "mulhu",
	OpDIV: "div", OpDIVU: "divu", OpREM: "rem", OpREMU: "remu",
	OpLW: "lw", OpLD: "ld", OpSW: "sw", OpSD: "sd",
	OpLUI: "lui", OpAUIPC: "auipc", OpJALR: "jalr", OpBNE: "bne",
	OpFADDD: "fadd.d", OpFSUBD: "fsub.d", OpFMULD: "fmul.d", OpFDIVD: "fdiv.d",
	OpFEQD: "feq.d", OpFLTD: "flt.d", OpFLED: "fle.d",
	OpFCVTDW: "fcvt.d.w", OpFCVTWD: "fcvt.w.d",
	OpFLD: "fld", OpFSD: "fsd",
	OpEBREAK: "ebreak",
}

// Name returns the assembly mnemonic for op.
func (op Op) Name() string {
	if n, ok := opNames[op]; ok {
		return n
	}
	return "unknown"
}
