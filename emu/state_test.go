package emu_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/emu"
)

var _ = Describe("InitialState", func() {
	It("should apply register and memory seeds", func() {
		state := &emu.InitialState{
			IntRegs: []emu.IntRegInit{{Index: 1, Value: 30}, {Index: 2, Value: 900}},
			FpRegs:  []emu.FpRegInit{{Index: 1, Value: 20.0}},
			IntMem:  []emu.IntMemInit{{Addr: 8, Value: 0xDEADBEEF}},
			FpMem:   []emu.FpMemInit{{Addr: 16, Value: 2.5}},
		}

		regs := &emu.RegFile{}
		mem := emu.NewMemory()
		state.Apply(regs, mem)

		Expect(regs.ReadInt(1)).To(Equal(uint64(30)))
		Expect(regs.ReadInt(2)).To(Equal(uint64(900)))
		Expect(regs.ReadFp(1)).To(Equal(20.0))
		Expect(mem.ReadInt(8)).To(Equal(uint64(0xDEADBEEF)))
		Expect(mem.ReadFp(16)).To(Equal(2.5))
	})

	It("should never seed x0", func() {
		state := &emu.InitialState{
			IntRegs: []emu.IntRegInit{{Index: 0, Value: 7}},
		}

		regs := &emu.RegFile{}
		state.Apply(regs, emu.NewMemory())

		Expect(regs.ReadInt(0)).To(Equal(uint64(0)))
	})

	It("should round-trip through JSON", func() {
		path := filepath.Join(GinkgoT().TempDir(), "state.json")
		state := &emu.InitialState{
			IntRegs: []emu.IntRegInit{{Index: 3, Value: 42}},
			FpMem:   []emu.FpMemInit{{Addr: 24, Value: -1.25}},
		}

		Expect(state.Save(path)).To(Succeed())

		loaded, err := emu.LoadInitialState(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.IntRegs).To(Equal(state.IntRegs))
		Expect(loaded.FpMem).To(Equal(state.FpMem))
	})

	It("should fail on malformed JSON", func() {
		path := filepath.Join(GinkgoT().TempDir(), "bad.json")
		Expect(os.WriteFile(path, []byte("{"), 0644)).To(Succeed())

		_, err := emu.LoadInitialState(path)
		Expect(err).To(HaveOccurred())
	})
})
