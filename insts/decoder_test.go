package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/insts"
)

var _ = Describe("Decoder", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	Describe("Integer register-register", func() {
		// add x3, x1, x2 -> 0x002081B3
		It("should decode ADD", func() {
			inst := decoder.Decode(0x002081B3)

			Expect(inst.Op).To(Equal(insts.OpADD))
			Expect(inst.Rd).To(Equal(3))
			Expect(inst.Rs1).To(Equal(1))
			Expect(inst.Rs2).To(Equal(2))
			Expect(inst.IsFP).To(BeFalse())
		})

		// sub x5, x6, x7 -> 0x407302B3
		It("should decode SUB", func() {
			inst := decoder.Decode(0x407302B3)

			Expect(inst.Op).To(Equal(insts.OpSUB))
			Expect(inst.Rd).To(Equal(5))
			Expect(inst.Rs1).To(Equal(6))
			Expect(inst.Rs2).To(Equal(7))
		})

		// sra x1, x2, x3 -> funct7=0x20, funct3=0x5
		It("should decode SRA", func() {
			inst := decoder.Decode(0x403150B3)

			Expect(inst.Op).To(Equal(insts.OpSRA))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Rs2).To(Equal(3))
		})
	})

	Describe("M extension", func() {
		// mul x3, x1, x2 -> 0x022081B3
		It("should decode MUL", func() {
			inst := decoder.Decode(0x022081B3)

			Expect(inst.Op).To(Equal(insts.OpMUL))
			Expect(inst.Rd).To(Equal(3))
		})

		// div x3, x1, x2 -> 0x0220C1B3
		It("should decode DIV", func() {
			inst := decoder.Decode(0x0220C1B3)

			Expect(inst.Op).To(Equal(insts.OpDIV))
		})

		// rem x3, x1, x2 -> funct3=0x6
		It("should decode REM", func() {
			inst := decoder.Decode(0x0220E1B3)

			Expect(inst.Op).To(Equal(insts.OpREM))
		})
	})

	Describe("Immediate ALU", func() {
		// addi x1, x0, 100 -> 0x06400093
		It("should decode ADDI with a positive immediate", func() {
			inst := decoder.Decode(0x06400093)

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(0))
			Expect(inst.Imm).To(Equal(int32(100)))
		})

		// addi x2, x1, -4 -> 0xFFC08113
		It("should sign-extend a negative I-type immediate", func() {
			inst := decoder.Decode(0xFFC08113)

			Expect(inst.Op).To(Equal(insts.OpADDI))
			Expect(inst.Rd).To(Equal(2))
			Expect(inst.Rs1).To(Equal(1))
			Expect(inst.Imm).To(Equal(int32(-4)))
		})
	})

	Describe("Loads and stores", func() {
		// ld x1, 8(x2) -> 0x00813083
		It("should decode LD", func() {
			inst := decoder.Decode(0x00813083)

			Expect(inst.Op).To(Equal(insts.OpLD))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Imm).To(Equal(int32(8)))
		})

		// lw x1, 0(x2) -> 0x00012083
		It("should decode LW", func() {
			inst := decoder.Decode(0x00012083)

			Expect(inst.Op).To(Equal(insts.OpLW))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Imm).To(Equal(int32(0)))
		})

		// sd x1, 8(x2) -> 0x00113423
		It("should decode SD with the split S-type immediate", func() {
			inst := decoder.Decode(0x00113423)

			Expect(inst.Op).To(Equal(insts.OpSD))
			Expect(inst.Rd).To(Equal(-1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Rs2).To(Equal(1))
			Expect(inst.Imm).To(Equal(int32(8)))
		})

		// fld f1, 0(x2) -> 0x00013087
		It("should decode FLD", func() {
			inst := decoder.Decode(0x00013087)

			Expect(inst.Op).To(Equal(insts.OpFLD))
			Expect(inst.Fd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.IsFP).To(BeTrue())
		})

		// fsd f1, 8(x2) -> 0x00113427
		It("should decode FSD", func() {
			inst := decoder.Decode(0x00113427)

			Expect(inst.Op).To(Equal(insts.OpFSD))
			Expect(inst.Fs2).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Imm).To(Equal(int32(8)))
		})
	})

	Describe("Upper immediates and jumps", func() {
		// lui x1, 0x12345 -> 0x123450B7
		It("should decode LUI with a pre-shifted immediate", func() {
			inst := decoder.Decode(0x123450B7)

			Expect(inst.Op).To(Equal(insts.OpLUI))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Imm).To(Equal(int32(0x12345000)))
			Expect(inst.Rs1).To(Equal(-1))
		})

		// auipc x1, 0x1 -> 0x00001097
		It("should decode AUIPC", func() {
			inst := decoder.Decode(0x00001097)

			Expect(inst.Op).To(Equal(insts.OpAUIPC))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Imm).To(Equal(int32(0x1000)))
		})

		// jalr x1, 0(x2) -> 0x000100E7
		It("should decode JALR", func() {
			inst := decoder.Decode(0x000100E7)

			Expect(inst.Op).To(Equal(insts.OpJALR))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Imm).To(Equal(int32(0)))
		})
	})

	Describe("Branches", func() {
		// bne x1, x2, 8 -> 0x00209463
		It("should decode a forward BNE", func() {
			inst := decoder.Decode(0x00209463)

			Expect(inst.Op).To(Equal(insts.OpBNE))
			Expect(inst.Rs1).To(Equal(1))
			Expect(inst.Rs2).To(Equal(2))
			Expect(inst.Imm).To(Equal(int32(8)))
			Expect(inst.Rd).To(Equal(-1))
		})

		// bne x1, x2, -8 -> 0xFE209CE3
		It("should decode a backward BNE", func() {
			inst := decoder.Decode(0xFE209CE3)

			Expect(inst.Op).To(Equal(insts.OpBNE))
			Expect(inst.Imm).To(Equal(int32(-8)))
		})

		// beq has funct3 0x0 and is not supported
		It("should not decode BEQ", func() {
			inst := decoder.Decode(0x00208463)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})

	Describe("FP arithmetic", func() {
		// fadd.d f3, f1, f2 (dyn) -> 0x0220F1D3
		It("should decode FADD.D", func() {
			inst := decoder.Decode(0x0220F1D3)

			Expect(inst.Op).To(Equal(insts.OpFADDD))
			Expect(inst.Fd).To(Equal(3))
			Expect(inst.Fs1).To(Equal(1))
			Expect(inst.Fs2).To(Equal(2))
			Expect(inst.IsFP).To(BeTrue())
		})

		// fsub.d f3, f1, f2 (dyn) -> 0x0A20F1D3
		It("should decode FSUB.D", func() {
			inst := decoder.Decode(0x0A20F1D3)

			Expect(inst.Op).To(Equal(insts.OpFSUBD))
		})

		// fmul.d f3, f1, f2 (dyn) -> 0x1220F1D3
		It("should decode FMUL.D", func() {
			inst := decoder.Decode(0x1220F1D3)

			Expect(inst.Op).To(Equal(insts.OpFMULD))
		})

		// fdiv.d f3, f1, f2 (dyn) -> 0x1A20F1D3
		It("should decode FDIV.D", func() {
			inst := decoder.Decode(0x1A20F1D3)

			Expect(inst.Op).To(Equal(insts.OpFDIVD))
		})
	})

	Describe("FP compares", func() {
		// feq.d f1, f2, f3 -> 0xA23120D3
		It("should decode FEQ.D", func() {
			inst := decoder.Decode(0xA23120D3)

			Expect(inst.Op).To(Equal(insts.OpFEQD))
			Expect(inst.Fd).To(Equal(1))
			Expect(inst.Fs1).To(Equal(2))
			Expect(inst.Fs2).To(Equal(3))
		})

		// flt.d f1, f2, f3 -> 0xA23110D3
		It("should decode FLT.D", func() {
			inst := decoder.Decode(0xA23110D3)

			Expect(inst.Op).To(Equal(insts.OpFLTD))
		})

		// fle.d f1, f2, f3 -> 0xA23100D3
		It("should decode FLE.D", func() {
			inst := decoder.Decode(0xA23100D3)

			Expect(inst.Op).To(Equal(insts.OpFLED))
		})
	})

	Describe("FP conversions", func() {
		// fcvt.d.w f1, x2 -> 0xD20100D3
		It("should move the integer source of FCVT.D.W into rs1", func() {
			inst := decoder.Decode(0xD20100D3)

			Expect(inst.Op).To(Equal(insts.OpFCVTDW))
			Expect(inst.Fd).To(Equal(1))
			Expect(inst.Rs1).To(Equal(2))
			Expect(inst.Fs1).To(Equal(-1))
			Expect(inst.Fs2).To(Equal(-1))
		})

		// fcvt.w.d x1, f2, rtz -> 0xC20110D3
		It("should move the integer destination of FCVT.W.D into rd", func() {
			inst := decoder.Decode(0xC20110D3)

			Expect(inst.Op).To(Equal(insts.OpFCVTWD))
			Expect(inst.Rd).To(Equal(1))
			Expect(inst.Fs1).To(Equal(2))
			Expect(inst.Fd).To(Equal(-1))
			Expect(inst.Fs2).To(Equal(-1))
		})
	})

	Describe("System and unknown encodings", func() {
		It("should decode EBREAK", func() {
			inst := decoder.Decode(0x00100073)

			Expect(inst.Op).To(Equal(insts.OpEBREAK))
		})

		It("should not decode ECALL", func() {
			inst := decoder.Decode(0x00000073)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})

		It("should treat an all-zero word as unknown", func() {
			inst := decoder.Decode(0x00000000)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
			Expect(inst.Rd).To(Equal(-1))
		})

		// slli x1, x2, 3: shifts-by-immediate are not in the supported subset
		It("should treat SLLI as unknown", func() {
			inst := decoder.Decode(0x00311093)

			Expect(inst.Op).To(Equal(insts.OpUnknown))
		})
	})
})
