package emu

import (
	"encoding/json"
	"fmt"
	"os"
)

// IntRegInit seeds one integer register.
type IntRegInit struct {
	Index int    `json:"index"`
	Value uint64 `json:"value"`
}

// FpRegInit seeds one FP register.
type FpRegInit struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// IntMemInit seeds one integer memory word.
type IntMemInit struct {
	Addr  uint64 `json:"addr"`
	Value uint64 `json:"value"`
}

// FpMemInit seeds one FP memory doubleword.
type FpMemInit struct {
	Addr  uint64  `json:"addr"`
	Value float64 `json:"value"`
}

// InitialState describes the architectural state a simulation starts from.
type InitialState struct {
	IntRegs []IntRegInit `json:"int_regs,omitempty"`
	FpRegs  []FpRegInit  `json:"fp_regs,omitempty"`
	IntMem  []IntMemInit `json:"int_mem,omitempty"`
	FpMem   []FpMemInit  `json:"fp_mem,omitempty"`
}

// LoadInitialState reads an InitialState from a JSON file.
func LoadInitialState(path string) (*InitialState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read initial state file: %w", err)
	}

	state := &InitialState{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("failed to parse initial state: %w", err)
	}

	return state, nil
}

// Save writes the InitialState to a JSON file.
func (s *InitialState) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize initial state: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write initial state file: %w", err)
	}

	return nil
}

// Apply seeds the register file and memory. Out-of-range register indices
// are ignored, as is integer register 0 (hardwired to zero).
func (s *InitialState) Apply(regs *RegFile, mem *Memory) {
	for _, r := range s.IntRegs {
		regs.WriteInt(r.Index, r.Value)
	}
	for _, r := range s.FpRegs {
		regs.WriteFp(r.Index, r.Value)
	}
	for _, m := range s.IntMem {
		mem.WriteInt(m.Addr, m.Value)
	}
	for _, m := range s.FpMem {
		mem.WriteFp(m.Addr, m.Value)
	}
}
