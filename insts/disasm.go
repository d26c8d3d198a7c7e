package insts

import "fmt"

// intRegNames holds the RISC-V ABI names for x0-x31.
var intRegNames = [32]string{
	"x0", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// IntRegName returns the ABI name of integer register r.
func IntRegName(r int) string {
	if r >= 0 && r < 32 {
		return intRegNames[r]
	}
	return "x?"
}

// FPRegName returns the name of FP register f.
func FPRegName(f int) string {
	if f >= 0 && f < 32 {
		return fmt.Sprintf("f%d", f)
	}
	return "f?"
}

// String renders the instruction in assembly syntax.
func (i *Instruction) String() string {
	name := i.Op.Name()

	switch i.Op {
	case OpADD, OpSUB, OpAND, OpOR, OpXOR, OpSLT, OpSLTU, OpSLL, OpSRL, OpSRA,
		OpMUL, OpMULH, OpMULHSU, OpMULHU, OpDIV, OpDIVU, OpREM, OpREMU:
		return fmt.Sprintf("%s %s, %s, %s",
			name, IntRegName(i.Rd), IntRegName(i.Rs1), IntRegName(i.Rs2))
	case OpADDI, OpANDI, OpORI, OpXORI, OpSLTI, OpSLTIU:
		return fmt.Sprintf("%s %s, %s, %d",
			name, IntRegName(i.Rd), IntRegName(i.Rs1), i.Imm)
	case OpLW, OpLD:
		return fmt.Sprintf("%s %s, %d(%s)",
			name, IntRegName(i.Rd), i.Imm, IntRegName(i.Rs1))
	case OpSW, OpSD:
		return fmt.Sprintf("%s %s, %d(%s)",
			name, IntRegName(i.Rs2), i.Imm, IntRegName(i.Rs1))
	case OpFLD:
		return fmt.Sprintf("%s %s, %d(%s)",
			name, FPRegName(i.Fd), i.Imm, IntRegName(i.Rs1))
	case OpFSD:
		return fmt.Sprintf("%s %s, %d(%s)",
			name, FPRegName(i.Fs2), i.Imm, IntRegName(i.Rs1))
	case OpLUI, OpAUIPC:
		return fmt.Sprintf("%s %s, 0x%x",
			name, IntRegName(i.Rd), uint32(i.Imm)>>12)
	case OpJALR:
		return fmt.Sprintf("%s %s, %d(%s)",
			name, IntRegName(i.Rd), i.Imm, IntRegName(i.Rs1))
	case OpBNE:
		return fmt.Sprintf("%s %s, %s, %d",
			name, IntRegName(i.Rs1), IntRegName(i.Rs2), i.Imm)
	case OpFADDD, OpFSUBD, OpFMULD, OpFDIVD, OpFEQD, OpFLTD, OpFLED:
		return fmt.Sprintf("%s %s, %s, %s",
			name, FPRegName(i.Fd), FPRegName(i.Fs1), FPRegName(i.Fs2))
	case OpFCVTDW:
		return fmt.Sprintf("%s %s, %s",
			name, FPRegName(i.Fd), IntRegName(i.Rs1))
	case OpFCVTWD:
		return fmt.Sprintf("%s %s, %s",
			name, IntRegName(i.Rd), FPRegName(i.Fs1))
	case OpEBREAK:
		return name
	default:
		return fmt.Sprintf("unknown (0x%08x)", i.Raw)
	}
}
