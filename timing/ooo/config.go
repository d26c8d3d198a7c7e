package ooo

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/rvsim/insts"
)

// Config holds the machine topology: reservation-station pool sizes,
// functional-unit pool sizes, and the ROB and LSQ capacities. The defaults
// are design choices, not invariants; any field can be overridden via JSON.
type Config struct {
	ROBSize int `json:"rob_size"`
	LSQSize int `json:"lsq_size"`

	IntALUStations int `json:"int_alu_stations"`
	MulDivStations int `json:"mul_div_stations"`
	LoadStations   int `json:"load_stations"`
	StoreStations  int `json:"store_stations"`
	FPAddStations  int `json:"fp_add_stations"`
	FPMulStations  int `json:"fp_mul_stations"`
	FPDivStations  int `json:"fp_div_stations"`

	IntALUUnits int `json:"int_alu_units"`
	MulDivUnits int `json:"mul_div_units"`
	LoadUnits   int `json:"load_units"`
	StoreUnits  int `json:"store_units"`
	FPAddUnits  int `json:"fp_add_units"`
	FPMulUnits  int `json:"fp_mul_units"`
	FPDivUnits  int `json:"fp_div_units"`
}

// DefaultConfig returns the default machine topology.
func DefaultConfig() *Config {
	return &Config{
		ROBSize: 32,
		LSQSize: 16,

		IntALUStations: 6,
		MulDivStations: 2,
		LoadStations:   8,
		StoreStations:  6,
		FPAddStations:  4,
		FPMulStations:  4,
		FPDivStations:  2,

		IntALUUnits: 2,
		MulDivUnits: 1,
		LoadUnits:   2,
		StoreUnits:  1,
		FPAddUnits:  2,
		FPMulUnits:  2,
		FPDivUnits:  1,
	}
}

// LoadConfig loads a Config from a JSON file, starting from the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read machine config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse machine config: %w", err)
	}

	return config, nil
}

// SaveConfig writes the Config to a JSON file.
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize machine config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write machine config file: %w", err)
	}

	return nil
}

// Validate checks that every capacity is > 0.
func (c *Config) Validate() error {
	fields := map[string]int{
		"rob_size":         c.ROBSize,
		"lsq_size":         c.LSQSize,
		"int_alu_stations": c.IntALUStations,
		"mul_div_stations": c.MulDivStations,
		"load_stations":    c.LoadStations,
		"store_stations":   c.StoreStations,
		"fp_add_stations":  c.FPAddStations,
		"fp_mul_stations":  c.FPMulStations,
		"fp_div_stations":  c.FPDivStations,
		"int_alu_units":    c.IntALUUnits,
		"mul_div_units":    c.MulDivUnits,
		"load_units":       c.LoadUnits,
		"store_units":      c.StoreUnits,
		"fp_add_units":     c.FPAddUnits,
		"fp_mul_units":     c.FPMulUnits,
		"fp_div_units":     c.FPDivUnits,
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

// stations returns the RS pool size for a class.
func (c *Config) stations(class insts.Class) int {
	switch class {
	case insts.ClassIntALU:
		return c.IntALUStations
	case insts.ClassMulDiv:
		return c.MulDivStations
	case insts.ClassLoad:
		return c.LoadStations
	case insts.ClassStore:
		return c.StoreStations
	case insts.ClassFPAdd:
		return c.FPAddStations
	case insts.ClassFPMul:
		return c.FPMulStations
	case insts.ClassFPDiv:
		return c.FPDivStations
	default:
		return 0
	}
}

// units returns the FU pool size for a class.
func (c *Config) units(class insts.Class) int {
	switch class {
	case insts.ClassIntALU:
		return c.IntALUUnits
	case insts.ClassMulDiv:
		return c.MulDivUnits
	case insts.ClassLoad:
		return c.LoadUnits
	case insts.ClassStore:
		return c.StoreUnits
	case insts.ClassFPAdd:
		return c.FPAddUnits
	case insts.ClassFPMul:
		return c.FPMulUnits
	case insts.ClassFPDiv:
		return c.FPDivUnits
	default:
		return 0
	}
}
