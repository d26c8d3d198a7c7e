// Package insts provides RISC-V instruction definitions and decoding.
//
// This package implements decoding of a RISC-V RV64IM subset with
// double-precision floating point into structured instruction
// representations. It supports:
//   - Integer register-register and register-immediate ALU operations
//   - The M extension (MUL/MULH*/DIV*/REM*)
//   - Integer and FP loads and stores (LW, LD, SW, SD, FLD, FSD)
//   - LUI, AUIPC, JALR, BNE, and EBREAK
//   - D-extension arithmetic, compares, and int<->double conversions
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x00A282B3) // add t0, t0, a0
//	fmt.Printf("Op: %v, Rd: %d, Rs1: %d, Rs2: %d\n", inst.Op, inst.Rd, inst.Rs1, inst.Rs2)
package insts
