package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// instState tracks an instruction's progress through the pipeline.
type instState uint8

const (
	stateIssued instState = iota
	stateExecuting
	stateExecuted
	stateCommitted
)

func (s instState) String() string {
	switch s {
	case stateIssued:
		return "ISSUED"
	case stateExecuting:
		return "EXECUTING"
	case stateExecuted:
		return "EXECUTED"
	case stateCommitted:
		return "COMMITTED"
	default:
		return "UNKNOWN"
	}
}

// robEntry is one reorder-buffer slot. The slot index doubles as the
// rename tag for the instruction's result.
type robEntry struct {
	busy bool
	op   insts.Op
	inst *insts.Instruction

	dest    destReg
	isLoad  bool
	isStore bool

	state     instState
	result    emu.Value
	hasResult bool

	lsqIdx int
	pc     uint64
}

// reorderBuffer is a circular FIFO of in-flight instructions. Allocation
// happens at issue, release at commit, strictly in program order.
type reorderBuffer struct {
	entries []robEntry
	head    int
	tail    int
	count   int
}

func newReorderBuffer(size int) *reorderBuffer {
	return &reorderBuffer{entries: make([]robEntry, size)}
}

func (b *reorderBuffer) full() bool {
	return b.count == len(b.entries)
}

func (b *reorderBuffer) empty() bool {
	return b.count == 0
}

// alloc reserves the tail slot and returns its index. The caller fills
// the entry. Must not be called on a full buffer.
func (b *reorderBuffer) alloc() int {
	idx := b.tail
	b.tail = (b.tail + 1) % len(b.entries)
	b.count++
	return idx
}

// headEntry returns the oldest in-flight entry, or nil when empty.
func (b *reorderBuffer) headEntry() *robEntry {
	if b.count == 0 {
		return nil
	}
	return &b.entries[b.head]
}

// release retires the head slot.
func (b *reorderBuffer) release() {
	b.head = (b.head + 1) % len(b.entries)
	b.count--
}

func (b *reorderBuffer) at(idx int) *robEntry {
	return &b.entries[idx]
}
