package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/insts"
)

var _ = Describe("Instruction classification", func() {
	It("should route ALU, branch, and jump ops to the integer ALU pool", func() {
		Expect(insts.ClassOf(insts.OpADD)).To(Equal(insts.ClassIntALU))
		Expect(insts.ClassOf(insts.OpADDI)).To(Equal(insts.ClassIntALU))
		Expect(insts.ClassOf(insts.OpLUI)).To(Equal(insts.ClassIntALU))
		Expect(insts.ClassOf(insts.OpBNE)).To(Equal(insts.ClassIntALU))
		Expect(insts.ClassOf(insts.OpJALR)).To(Equal(insts.ClassIntALU))
	})

	It("should route the M extension to the mul/div pool", func() {
		Expect(insts.ClassOf(insts.OpMUL)).To(Equal(insts.ClassMulDiv))
		Expect(insts.ClassOf(insts.OpDIVU)).To(Equal(insts.ClassMulDiv))
		Expect(insts.ClassOf(insts.OpREMU)).To(Equal(insts.ClassMulDiv))
	})

	It("should route memory ops to the load and store pools", func() {
		Expect(insts.ClassOf(insts.OpLD)).To(Equal(insts.ClassLoad))
		Expect(insts.ClassOf(insts.OpFLD)).To(Equal(insts.ClassLoad))
		Expect(insts.ClassOf(insts.OpSW)).To(Equal(insts.ClassStore))
		Expect(insts.ClassOf(insts.OpFSD)).To(Equal(insts.ClassStore))
	})

	It("should route FP ops to adder, multiplier, and divider pools", func() {
		Expect(insts.ClassOf(insts.OpFADDD)).To(Equal(insts.ClassFPAdd))
		Expect(insts.ClassOf(insts.OpFEQD)).To(Equal(insts.ClassFPAdd))
		Expect(insts.ClassOf(insts.OpFMULD)).To(Equal(insts.ClassFPMul))
		Expect(insts.ClassOf(insts.OpFCVTDW)).To(Equal(insts.ClassFPMul))
		Expect(insts.ClassOf(insts.OpFCVTWD)).To(Equal(insts.ClassFPMul))
		Expect(insts.ClassOf(insts.OpFDIVD)).To(Equal(insts.ClassFPDiv))
	})

	It("should leave unknown and ebreak unclassified", func() {
		Expect(insts.ClassOf(insts.OpUnknown)).To(Equal(insts.ClassNone))
		Expect(insts.ClassOf(insts.OpEBREAK)).To(Equal(insts.ClassNone))
	})

	It("should identify loads and stores", func() {
		Expect(insts.IsLoad(insts.OpLW)).To(BeTrue())
		Expect(insts.IsLoad(insts.OpSD)).To(BeFalse())
		Expect(insts.IsStore(insts.OpSD)).To(BeTrue())
		Expect(insts.IsFPLoad(insts.OpFLD)).To(BeTrue())
		Expect(insts.IsFPLoad(insts.OpLD)).To(BeFalse())
		Expect(insts.IsFPStore(insts.OpFSD)).To(BeTrue())
	})
})

var _ = Describe("Disassembly", func() {
	var decoder *insts.Decoder

	BeforeEach(func() {
		decoder = insts.NewDecoder()
	})

	It("should format register-register ops with ABI names", func() {
		// add x3, x1, x2
		Expect(decoder.Decode(0x002081B3).String()).To(Equal("add gp, ra, sp"))
	})

	It("should format loads with displacement syntax", func() {
		// ld x1, 8(x2)
		Expect(decoder.Decode(0x00813083).String()).To(Equal("ld ra, 8(sp)"))
	})

	It("should format stores with the source register first", func() {
		// sd x1, 8(x2)
		Expect(decoder.Decode(0x00113423).String()).To(Equal("sd ra, 8(sp)"))
	})

	It("should format FP arithmetic with f-register names", func() {
		// fadd.d f3, f1, f2
		Expect(decoder.Decode(0x0220F1D3).String()).To(Equal("fadd.d f3, f1, f2"))
	})

	It("should format upper immediates in hex", func() {
		// lui x1, 0x12345
		Expect(decoder.Decode(0x123450B7).String()).To(Equal("lui ra, 0x12345"))
	})

	It("should format unknown words with the raw encoding", func() {
		Expect(decoder.Decode(0x00000000).String()).To(Equal("unknown (0x00000000)"))
	})

	It("should name registers by ABI convention", func() {
		Expect(insts.IntRegName(0)).To(Equal("x0"))
		Expect(insts.IntRegName(2)).To(Equal("sp"))
		Expect(insts.IntRegName(10)).To(Equal("a0"))
		Expect(insts.FPRegName(4)).To(Equal("f4"))
	})
})
