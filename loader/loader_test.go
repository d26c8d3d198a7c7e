package loader_test

import (
	"encoding/binary"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/loader"
)

// image builds a little-endian program binary from instruction words.
func image(words ...uint32) []byte {
	data := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(data[4*i:], w)
	}
	return data
}

var _ = Describe("Loader", func() {
	Describe("Decode", func() {
		It("should decode every word in program order", func() {
			program, err := loader.Decode(image(
				0x06400093, // addi x1, x0, 100
				0x002081B3, // add x3, x1, x2
				0x00100073, // ebreak
			))

			Expect(err).NotTo(HaveOccurred())
			Expect(program).To(HaveLen(3))
			Expect(program[0].Op).To(Equal(insts.OpADDI))
			Expect(program[1].Op).To(Equal(insts.OpADD))
			Expect(program[2].Op).To(Equal(insts.OpEBREAK))
		})

		It("should accept an empty image", func() {
			program, err := loader.Decode(nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(program).To(BeEmpty())
		})

		It("should reject a truncated image", func() {
			_, err := loader.Decode([]byte{0x93, 0x00, 0x40})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("multiple of 4"))
		})

		It("should keep undecodable words as unknown instructions", func() {
			program, err := loader.Decode(image(0xFFFFFFFF))

			Expect(err).NotTo(HaveOccurred())
			Expect(program).To(HaveLen(1))
			Expect(program[0].Op).To(Equal(insts.OpUnknown))
			Expect(program[0].Raw).To(Equal(uint32(0xFFFFFFFF)))
		})
	})

	Describe("Load", func() {
		It("should load a program from a file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "prog.bin")
			err := os.WriteFile(path, image(0x06400093, 0x00100073), 0644)
			Expect(err).NotTo(HaveOccurred())

			program, err := loader.Load(path)

			Expect(err).NotTo(HaveOccurred())
			Expect(program).To(HaveLen(2))
			Expect(program[0].Op).To(Equal(insts.OpADDI))
		})

		It("should fail on a missing file", func() {
			_, err := loader.Load(filepath.Join(GinkgoT().TempDir(), "missing.bin"))

			Expect(err).To(HaveOccurred())
		})
	})
})
