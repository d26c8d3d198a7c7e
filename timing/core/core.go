// Package core provides the cycle-accurate CPU core model.
// It wraps the out-of-order engine to provide a high-level interface.
package core

import (
	"io"

	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/timing/latency"
	"github.com/sarchlab/rvsim/timing/ooo"
)

// Stats holds performance statistics for the core.
type Stats struct {
	// Cycles is the total number of cycles simulated.
	Cycles uint64
	// Instructions is the number of instructions retired.
	Instructions uint64
	// IssueStalls is the number of cycles issue was blocked.
	IssueStalls uint64
	// CommitStalls is the number of cycles the ROB head was not ready.
	CommitStalls uint64
	// Redirects is the number of taken branches and jumps.
	Redirects uint64
	// CPI is cycles per committed instruction.
	CPI float64
}

// Core represents a cycle-accurate CPU core model.
// It wraps the out-of-order engine and shares the register file and
// memory with the caller.
type Core struct {
	// Engine is the underlying out-of-order engine.
	Engine *ooo.Engine

	regFile *emu.RegFile
	memory  *emu.Memory
}

// Option configures a Core at construction time.
type Option func(*options)

type options struct {
	engineOpts []ooo.Option
}

// WithMachineConfig overrides the machine topology.
func WithMachineConfig(config *ooo.Config) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, ooo.WithConfig(config))
	}
}

// WithLatencyTable overrides the instruction latency table.
func WithLatencyTable(t *latency.Table) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, ooo.WithLatencyTable(t))
	}
}

// WithTrace enables the per-cycle machine-state trace.
func WithTrace(w io.Writer) Option {
	return func(o *options) {
		o.engineOpts = append(o.engineOpts, ooo.WithTrace(w))
	}
}

// NewCore creates a new Core over a decoded program with the given
// register file and memory.
func NewCore(
	program []*insts.Instruction,
	regFile *emu.RegFile,
	memory *emu.Memory,
	opts ...Option,
) *Core {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Core{
		Engine:  ooo.NewEngine(program, regFile, memory, o.engineOpts...),
		regFile: regFile,
		memory:  memory,
	}
}

// Tick executes one cycle.
func (c *Core) Tick() error {
	return c.Engine.Tick()
}

// Done returns true if the program has fully drained.
func (c *Core) Done() bool {
	return c.Engine.Done()
}

// Run executes the core until the program drains.
func (c *Core) Run() error {
	return c.Engine.Run()
}

// RunCycles executes the core for at most the specified number of cycles.
// Returns true if still running.
func (c *Core) RunCycles(cycles int) (bool, error) {
	return c.Engine.RunCycles(cycles)
}

// RegFile returns the shared register file.
func (c *Core) RegFile() *emu.RegFile {
	return c.regFile
}

// Memory returns the shared memory.
func (c *Core) Memory() *emu.Memory {
	return c.memory
}

// Stats returns performance statistics for the core.
func (c *Core) Stats() Stats {
	s := c.Engine.Stats()
	return Stats{
		Cycles:       s.Cycles,
		Instructions: s.Instructions,
		IssueStalls:  s.IssueStalls,
		CommitStalls: s.CommitStalls,
		Redirects:    s.Redirects,
		CPI:          s.CPI(),
	}
}
