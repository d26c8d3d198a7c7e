// Package ooo implements a cycle-accurate Tomasulo-style out-of-order
// engine for RV64 with the D extension. Instructions issue in order into
// class-typed reservation-station pools, execute out of order on
// functional-unit pools, broadcast results on a common data bus, and
// commit in order through a reorder buffer. Stores defer their memory
// write to commit via a load/store queue.
package ooo

import (
	"fmt"
	"io"

	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/timing/latency"
)

// dispatchOrder fixes the scan order over classes so ties between ready
// stations resolve deterministically.
var dispatchOrder = [...]insts.Class{
	insts.ClassIntALU,
	insts.ClassMulDiv,
	insts.ClassLoad,
	insts.ClassStore,
	insts.ClassFPAdd,
	insts.ClassFPMul,
	insts.ClassFPDiv,
}

// Broadcast is one completed result on the common data bus.
type Broadcast struct {
	Tag   Tag
	Value emu.Value
}

// Statistics accumulates execution counters.
type Statistics struct {
	Cycles       uint64
	Instructions uint64
	Issued       uint64
	IssueStalls  uint64
	CommitStalls uint64
	Broadcasts   uint64
	Redirects    uint64
}

// CPI returns cycles per committed instruction.
func (s Statistics) CPI() float64 {
	if s.Instructions == 0 {
		return 0
	}
	return float64(s.Cycles) / float64(s.Instructions)
}

// deadlockThreshold is the number of consecutive cycles with no issue,
// no FU activity, and no commit before Run gives up.
const deadlockThreshold = 1000

// Engine is the out-of-order core. Create one with NewEngine and drive
// it with Tick or Run.
type Engine struct {
	config *Config
	lat    *latency.Table

	program []*insts.Instruction
	regs    *emu.RegFile
	mem     *emu.Memory

	intStatus [32]Tag
	fpStatus  [32]Tag

	pools [len(dispatchOrder)]*stationPool
	fus   [len(dispatchOrder)]*fuPool
	rob   *reorderBuffer
	lsq   *loadStoreQueue
	cdb   []Broadcast

	fetchIdx    int
	redirect    int
	hasRedirect bool
	halted      bool

	cycle      uint64
	stats      Statistics
	progressed bool
	idleCycles int

	trace io.Writer
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig overrides the machine topology.
func WithConfig(config *Config) Option {
	return func(e *Engine) {
		e.config = config
	}
}

// WithLatencyTable overrides the instruction latency table.
func WithLatencyTable(t *latency.Table) Option {
	return func(e *Engine) {
		e.lat = t
	}
}

// WithTrace enables the per-cycle machine-state trace.
func WithTrace(w io.Writer) Option {
	return func(e *Engine) {
		e.trace = w
	}
}

// NewEngine creates an engine over a decoded program, register file, and
// memory. The register file and memory are mutated in place as the
// program commits.
func NewEngine(
	program []*insts.Instruction,
	regs *emu.RegFile,
	mem *emu.Memory,
	opts ...Option,
) *Engine {
	e := &Engine{
		config:  DefaultConfig(),
		lat:     latency.NewTable(),
		program: program,
		regs:    regs,
		mem:     mem,
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, class := range dispatchOrder {
		e.pools[i] = newStationPool(class, e.config.stations(class))
		e.fus[i] = newFUPool(class, e.config.units(class))
	}
	e.rob = newReorderBuffer(e.config.ROBSize)
	e.lsq = newLoadStoreQueue(e.config.LSQSize)

	for i := range e.intStatus {
		e.intStatus[i] = TagNone
	}
	for i := range e.fpStatus {
		e.fpStatus[i] = TagNone
	}

	return e
}

func classIndex(class insts.Class) int {
	for i, c := range dispatchOrder {
		if c == class {
			return i
		}
	}
	return -1
}

func (e *Engine) pool(class insts.Class) *stationPool {
	return e.pools[classIndex(class)]
}

func (e *Engine) fuPool(class insts.Class) *fuPool {
	return e.fus[classIndex(class)]
}

// Tick advances the machine by one cycle: commit, execute, CDB broadcast,
// fetch redirect, then issue. Values broadcast this cycle wake consumers
// for dispatch next cycle; redirects taken this cycle steer this cycle's
// issue.
func (e *Engine) Tick() error {
	e.progressed = false

	e.commit()
	if err := e.execute(); err != nil {
		return err
	}
	e.broadcastCDB()
	e.applyRedirect()
	e.issue()

	if e.trace != nil {
		e.printCycle(e.trace)
	}

	e.cycle++
	e.stats.Cycles++

	if e.progressed {
		e.idleCycles = 0
	} else {
		e.idleCycles++
		if e.idleCycles >= deadlockThreshold {
			return fmt.Errorf(
				"no forward progress for %d cycles at cycle %d",
				deadlockThreshold, e.cycle)
		}
	}

	return nil
}

// Done reports whether the program has fully drained: fetch exhausted or
// halted, and every in-flight instruction committed.
func (e *Engine) Done() bool {
	if !e.halted && e.fetchIdx < len(e.program) {
		return false
	}
	return e.rob.empty()
}

// Run ticks until the program drains.
func (e *Engine) Run() error {
	for !e.Done() {
		if err := e.Tick(); err != nil {
			return err
		}
	}
	return nil
}

// RunCycles ticks at most n cycles. It returns true when the program is
// still running.
func (e *Engine) RunCycles(n int) (bool, error) {
	for i := 0; i < n && !e.Done(); i++ {
		if err := e.Tick(); err != nil {
			return false, err
		}
	}
	return !e.Done(), nil
}

// Cycle returns the number of elapsed cycles.
func (e *Engine) Cycle() uint64 {
	return e.cycle
}

// FetchIndex returns the instruction index the next issue will use.
func (e *Engine) FetchIndex() int {
	return e.fetchIdx
}

// Halted reports whether an ebreak stopped fetch.
func (e *Engine) Halted() bool {
	return e.halted
}

// Stats returns a snapshot of the execution counters.
func (e *Engine) Stats() Statistics {
	return e.stats
}

// Config returns the machine topology.
func (e *Engine) Config() *Config {
	return e.config
}

func (e *Engine) setRedirect(target int) {
	e.redirect = target
	e.hasRedirect = true
}

// applyRedirect steers fetch to a taken branch or jump target. Targets
// before the program start halt fetch rather than wrapping around.
func (e *Engine) applyRedirect() {
	if !e.hasRedirect {
		return
	}
	e.hasRedirect = false

	target := e.redirect
	if target < 0 {
		target = len(e.program)
	}
	if target != e.fetchIdx {
		e.fetchIdx = target
		e.stats.Redirects++
	}
}

// broadcastCDB delivers every result completed this cycle to all waiting
// reservation stations.
func (e *Engine) broadcastCDB() {
	for _, b := range e.cdb {
		for _, pool := range e.pools {
			for i := range pool.entries {
				s := &pool.entries[i]
				if !s.busy {
					continue
				}
				if s.qj == b.Tag {
					s.vj = b.Value
					s.hasVj = true
					s.qj = TagNone
				}
				if s.qk == b.Tag {
					s.vk = b.Value
					s.hasVk = true
					s.qk = TagNone
				}
			}
		}
		e.stats.Broadcasts++
	}
}
