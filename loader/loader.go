// Package loader provides flat binary loading for RISC-V programs.
//
// A program file is a concatenation of little-endian 32-bit instruction
// words with no header; word i is the instruction at index i (PC = 4*i).
package loader

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/sarchlab/rvsim/insts"
)

// Load reads a program binary and decodes every word in order.
// It fails if the file cannot be read or its size is not a multiple of 4.
func Load(path string) ([]*insts.Instruction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program file: %w", err)
	}

	return Decode(data)
}

// Decode decodes a raw program image into instructions.
func Decode(data []byte) ([]*insts.Instruction, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("program size %d is not a multiple of 4 bytes", len(data))
	}

	decoder := insts.NewDecoder()
	program := make([]*insts.Instruction, 0, len(data)/4)

	for i := 0; i < len(data); i += 4 {
		word := binary.LittleEndian.Uint32(data[i:])
		program = append(program, decoder.Decode(word))
	}

	return program, nil
}
