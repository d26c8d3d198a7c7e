// Package latency provides instruction timing lookups for the
// cycle-accurate out-of-order engine. Latencies are keyed by
// reservation-station class and can be adjusted via Config.
package latency

import (
	"github.com/sarchlab/rvsim/insts"
)

// Table provides instruction latency lookups.
type Table struct {
	config *Config
}

// NewTable creates a latency table with default timing values.
func NewTable() *Table {
	return &Table{config: DefaultConfig()}
}

// NewTableWithConfig creates a latency table with a custom configuration.
func NewTableWithConfig(config *Config) *Table {
	return &Table{config: config}
}

// Latency returns the execution latency in cycles for the given operation.
func (t *Table) Latency(op insts.Op) int {
	switch insts.ClassOf(op) {
	case insts.ClassIntALU:
		return t.config.IntALULatency
	case insts.ClassMulDiv:
		return t.config.MulDivLatency
	case insts.ClassLoad:
		return t.config.LoadLatency
	case insts.ClassStore:
		return t.config.StoreLatency
	case insts.ClassFPAdd:
		return t.config.FPAddLatency
	case insts.ClassFPMul:
		return t.config.FPMulLatency
	case insts.ClassFPDiv:
		return t.config.FPDivLatency
	default:
		return 1
	}
}

// Config returns the current timing configuration.
func (t *Table) Config() *Config {
	return t.config
}
