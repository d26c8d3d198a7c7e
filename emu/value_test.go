package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/emu"
)

var _ = Describe("Value", func() {
	It("should round-trip integers", func() {
		v := emu.IntValue(0xDEADBEEF)

		Expect(v.Kind()).To(Equal(emu.KindInt))
		Expect(v.IsFloat()).To(BeFalse())
		Expect(v.Int()).To(Equal(uint64(0xDEADBEEF)))
	})

	It("should round-trip doubles", func() {
		v := emu.FloatValue(3.5)

		Expect(v.Kind()).To(Equal(emu.KindFloat))
		Expect(v.IsFloat()).To(BeTrue())
		Expect(v.Float()).To(Equal(3.5))
	})

	It("should panic when an integer is read as a double", func() {
		v := emu.IntValue(42)

		Expect(func() { v.Float() }).To(Panic())
	})

	It("should panic when a double is read as an integer", func() {
		v := emu.FloatValue(1.0)

		Expect(func() { v.Int() }).To(Panic())
	})

	It("should render integers in decimal", func() {
		Expect(emu.IntValue(300).String()).To(Equal("300"))
	})

	It("should render doubles with trailing zeros trimmed", func() {
		Expect(emu.FloatValue(2.5).String()).To(Equal("2.5"))
		Expect(emu.FloatValue(4.0).String()).To(Equal("4"))
	})
})
