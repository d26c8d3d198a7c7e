package latency

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds per-class execution latencies in cycles. Every functional
// unit is fully pipelined, so these are occupancy-free issue-to-complete
// latencies.
type Config struct {
	// IntALULatency covers add, sub, shifts, logicals, compares, LUI,
	// AUIPC, BNE, and JALR. Default: 1 cycle.
	IntALULatency int `json:"int_alu_latency"`

	// MulDivLatency covers the M extension. Default: 3 cycles.
	MulDivLatency int `json:"mul_div_latency"`

	// LoadLatency is the address-generation plus memory-read latency.
	// Default: 2 cycles.
	LoadLatency int `json:"load_latency"`

	// StoreLatency is the address-generation latency; the memory write
	// itself happens at commit. Default: 1 cycle.
	StoreLatency int `json:"store_latency"`

	// FPAddLatency covers fadd.d, fsub.d, and the FP compares.
	// Default: 2 cycles.
	FPAddLatency int `json:"fp_add_latency"`

	// FPMulLatency covers fmul.d and the int<->double conversions.
	// Default: 4 cycles.
	FPMulLatency int `json:"fp_mul_latency"`

	// FPDivLatency covers fdiv.d. Default: 8 cycles.
	FPDivLatency int `json:"fp_div_latency"`
}

// DefaultConfig returns a Config with the default latencies.
func DefaultConfig() *Config {
	return &Config{
		IntALULatency: 1,
		MulDivLatency: 3,
		LoadLatency:   2,
		StoreLatency:  1,
		FPAddLatency:  2,
		FPMulLatency:  4,
		FPDivLatency:  8,
	}
}

// LoadConfig loads a Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read latency config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse latency config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize latency config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write latency config file: %w", err)
	}

	return nil
}

// Validate checks that all latency values are > 0.
func (c *Config) Validate() error {
	fields := map[string]int{
		"int_alu_latency": c.IntALULatency,
		"mul_div_latency": c.MulDivLatency,
		"load_latency":    c.LoadLatency,
		"store_latency":   c.StoreLatency,
		"fp_add_latency":  c.FPAddLatency,
		"fp_mul_latency":  c.FPMulLatency,
		"fp_div_latency":  c.FPDivLatency,
	}
	for name, v := range fields {
		if v <= 0 {
			return fmt.Errorf("%s must be > 0", name)
		}
	}
	return nil
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	out := *c
	return &out
}
