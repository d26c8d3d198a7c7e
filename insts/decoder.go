package insts

// Major opcodes (bits [6:0]).
const (
	opcLoad   = 0x03
	opcFLoad  = 0x07
	opcOpImm  = 0x13
	opcAUIPC  = 0x17
	opcStore  = 0x23
	opcFStore = 0x27
	opcOp     = 0x33
	opcLUI    = 0x37
	opcBranch = 0x63
	opcJALR   = 0x67
	opcFP     = 0x53
	opcSystem = 0x73
)

// Decoder decodes RISC-V machine code into instructions.
type Decoder struct{}

// NewDecoder creates a new RISC-V instruction decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func opcode(word uint32) uint32 { return word & 0x7F }
func rd(word uint32) int        { return int((word >> 7) & 0x1F) }
func funct3(word uint32) uint32 { return (word >> 12) & 0x7 }
func rs1(word uint32) int       { return int((word >> 15) & 0x1F) }
func rs2(word uint32) int       { return int((word >> 20) & 0x1F) }
func funct7(word uint32) uint32 { return (word >> 25) & 0x7F }

// immI extracts the sign-extended I-type immediate (bits [31:20]).
func immI(word uint32) int32 {
	return int32(word) >> 20
}

// immS extracts the sign-extended S-type immediate
// (bits [31:25] concatenated with bits [11:7]).
func immS(word uint32) int32 {
	imm := int32((word>>25)&0x7F)<<5 | int32((word>>7)&0x1F)
	if imm&(1<<11) != 0 {
		imm |= ^int32(0xFFF)
	}
	return imm
}

// immB extracts the sign-extended B-type immediate
// (imm[12|10:5] in bits [31:25], imm[4:1|11] in bits [11:7]).
func immB(word uint32) int32 {
	imm := int32((word>>31)&0x1)<<12 |
		int32((word>>7)&0x1)<<11 |
		int32((word>>25)&0x3F)<<5 |
		int32((word>>8)&0xF)<<1
	if imm&(1<<12) != 0 {
		imm |= ^int32(0x1FFF)
	}
	return imm
}

// Decode decodes a 32-bit RISC-V instruction word.
// Unrecognized encodings yield an instruction with OpUnknown.
func (d *Decoder) Decode(word uint32) *Instruction {
	inst := &Instruction{
		Raw: word,
		Op:  OpUnknown,
		Rd:  -1, Rs1: -1, Rs2: -1,
		Fd: -1, Fs1: -1, Fs2: -1,
	}

	switch opcode(word) {
	case opcLoad:
		d.decodeLoad(word, inst)
	case opcStore:
		d.decodeStore(word, inst)
	case opcOp:
		d.decodeOp(word, inst)
	case opcOpImm:
		d.decodeOpImm(word, inst)
	case opcLUI:
		inst.Op = OpLUI
		inst.Rd = rd(word)
		inst.Imm = int32(word & 0xFFFFF000)
	case opcAUIPC:
		inst.Op = OpAUIPC
		inst.Rd = rd(word)
		inst.Imm = int32(word & 0xFFFFF000)
	case opcJALR:
		inst.Op = OpJALR
		inst.Rd = rd(word)
		inst.Rs1 = rs1(word)
		inst.Imm = immI(word)
	case opcBranch:
		d.decodeBranch(word, inst)
	case opcFLoad:
		d.decodeFPLoad(word, inst)
	case opcFStore:
		d.decodeFPStore(word, inst)
	case opcFP:
		d.decodeFP(word, inst)
	case opcSystem:
		d.decodeSystem(word, inst)
	}

	return inst
}

// decodeLoad decodes integer loads: funct3 0x2 -> LW, 0x3 -> LD.
func (d *Decoder) decodeLoad(word uint32, inst *Instruction) {
	inst.Rd = rd(word)
	inst.Rs1 = rs1(word)
	inst.Imm = immI(word)

	switch funct3(word) {
	case 0x2:
		inst.Op = OpLW
	case 0x3:
		inst.Op = OpLD
	default:
		inst.Rd, inst.Rs1 = -1, -1
	}
}

// decodeStore decodes integer stores: funct3 0x2 -> SW, 0x3 -> SD.
func (d *Decoder) decodeStore(word uint32, inst *Instruction) {
	inst.Rs1 = rs1(word)
	inst.Rs2 = rs2(word)
	inst.Imm = immS(word)

	switch funct3(word) {
	case 0x2:
		inst.Op = OpSW
	case 0x3:
		inst.Op = OpSD
	default:
		inst.Rs1, inst.Rs2 = -1, -1
	}
}

// decodeOp decodes register-register operations, including the M extension
// (funct7 = 0x01).
func (d *Decoder) decodeOp(word uint32, inst *Instruction) {
	inst.Rd = rd(word)
	inst.Rs1 = rs1(word)
	inst.Rs2 = rs2(word)

	f3 := funct3(word)
	f7 := funct7(word)

	switch {
	case f7 == 0x01:
		// M extension: funct3 selects MUL..REMU in encoding order.
		muldiv := [8]Op{OpMUL, OpMULH, OpMULHSU, OpMULHU, OpDIV, OpDIVU, OpREM, OpREMU}
		inst.Op = muldiv[f3]
	case f3 == 0x0 && f7 == 0x00:
		inst.Op = OpADD
	case f3 == 0x0 && f7 == 0x20:
		inst.Op = OpSUB
	case f3 == 0x1 && f7 == 0x00:
		inst.Op = OpSLL
	case f3 == 0x2 && f7 == 0x00:
		inst.Op = OpSLT
	case f3 == 0x3 && f7 == 0x00:
		inst.Op = OpSLTU
	case f3 == 0x4 && f7 == 0x00:
		inst.Op = OpXOR
	case f3 == 0x5 && f7 == 0x00:
		inst.Op = OpSRL
	case f3 == 0x5 && f7 == 0x20:
		inst.Op = OpSRA
	case f3 == 0x6 && f7 == 0x00:
		inst.Op = OpOR
	case f3 == 0x7 && f7 == 0x00:
		inst.Op = OpAND
	default:
		inst.Rd, inst.Rs1, inst.Rs2 = -1, -1, -1
	}
}

// decodeOpImm decodes register-immediate ALU operations.
func (d *Decoder) decodeOpImm(word uint32, inst *Instruction) {
	inst.Rd = rd(word)
	inst.Rs1 = rs1(word)
	inst.Imm = immI(word)

	switch funct3(word) {
	case 0x0:
		inst.Op = OpADDI
	case 0x2:
		inst.Op = OpSLTI
	case 0x3:
		inst.Op = OpSLTIU
	case 0x4:
		inst.Op = OpXORI
	case 0x6:
		inst.Op = OpORI
	case 0x7:
		inst.Op = OpANDI
	default:
		inst.Rd, inst.Rs1 = -1, -1
	}
}

// decodeBranch decodes conditional branches. Only BNE (funct3 0x1) is
// supported; the immediate is the B-type byte offset from the branch PC.
func (d *Decoder) decodeBranch(word uint32, inst *Instruction) {
	if funct3(word) != 0x1 {
		return
	}
	inst.Op = OpBNE
	inst.Rs1 = rs1(word)
	inst.Rs2 = rs2(word)
	inst.Imm = immB(word)
}

// decodeFPLoad decodes FLD (funct3 0x3).
func (d *Decoder) decodeFPLoad(word uint32, inst *Instruction) {
	if funct3(word) != 0x3 {
		return
	}
	inst.Op = OpFLD
	inst.Fd = rd(word)
	inst.Rs1 = rs1(word)
	inst.Imm = immI(word)
	inst.IsFP = true
}

// decodeFPStore decodes FSD (funct3 0x3).
func (d *Decoder) decodeFPStore(word uint32, inst *Instruction) {
	if funct3(word) != 0x3 {
		return
	}
	inst.Op = OpFSD
	inst.Fs2 = rs2(word)
	inst.Rs1 = rs1(word)
	inst.Imm = immS(word)
	inst.IsFP = true
}

// decodeFP decodes double-precision arithmetic, compares, and conversions.
func (d *Decoder) decodeFP(word uint32, inst *Instruction) {
	f3 := funct3(word)
	f7 := funct7(word)

	inst.Fd = rd(word)
	inst.Fs1 = rs1(word)
	inst.Fs2 = rs2(word)
	inst.IsFP = true

	switch {
	case f3 == 0x3 || f3 == 0x7:
		// Arithmetic with dynamic rounding mode.
		switch f7 {
		case 0x01, 0x02:
			inst.Op = OpFADDD
		case 0x05:
			inst.Op = OpFSUBD
		case 0x09:
			inst.Op = OpFMULD
		case 0x0D:
			inst.Op = OpFDIVD
		default:
			d.clearFP(inst)
		}
	case f3 == 0x2 && f7 == 0x51:
		inst.Op = OpFEQD
	case f3 == 0x1 && f7 == 0x51:
		inst.Op = OpFLTD
	case f3 == 0x0 && f7 == 0x51:
		inst.Op = OpFLED
	case f3 == 0x0 && (f7 == 0x60 || f7 == 0x68 || f7 == 0x69):
		// fcvt.d.w: the integer source rides in the rs1 field.
		inst.Op = OpFCVTDW
		inst.Rs1 = inst.Fs1
		inst.Fs1 = -1
		inst.Fs2 = -1
	case f3 == 0x1 && (f7 == 0x60 || f7 == 0x61):
		// fcvt.w.d: the integer destination rides in the rd field.
		inst.Op = OpFCVTWD
		inst.Rd = inst.Fd
		inst.Fd = -1
		inst.Fs2 = -1
	default:
		d.clearFP(inst)
	}
}

func (d *Decoder) clearFP(inst *Instruction) {
	inst.Op = OpUnknown
	inst.Fd, inst.Fs1, inst.Fs2 = -1, -1, -1
	inst.Rd, inst.Rs1 = -1, -1
	inst.IsFP = false
}

// decodeSystem recognizes EBREAK; every other SYSTEM encoding is unknown.
func (d *Decoder) decodeSystem(word uint32, inst *Instruction) {
	if funct3(word) == 0 && rs1(word) == 0 && rd(word) == 0 &&
		word&0x000FFFFF == 0x00000073 {
		inst.Op = OpEBREAK
	}
}
