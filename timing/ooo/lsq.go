package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// lsqEntry is one load/store-queue slot. Loads fill address and data when
// their functional unit completes; stores fill both at address generation
// and hold the data until commit performs the memory write.
type lsqEntry struct {
	valid   bool
	isStore bool
	op      insts.Op

	address   uint64
	addrReady bool
	data      emu.Value
	hasData   bool

	robIdx int
	dest   destReg

	// pos orders entries by allocation so age checks survive wraparound.
	pos uint64
}

// loadStoreQueue holds memory operations in program order. Entries free
// at commit, which is in ROB order and therefore FIFO here too.
type loadStoreQueue struct {
	entries []lsqEntry
	head    int
	tail    int
	count   int
	nextPos uint64
}

func newLoadStoreQueue(size int) *loadStoreQueue {
	return &loadStoreQueue{entries: make([]lsqEntry, size)}
}

func (q *loadStoreQueue) full() bool {
	return q.count == len(q.entries)
}

// alloc reserves the tail slot. Must not be called on a full queue.
func (q *loadStoreQueue) alloc(isStore bool, op insts.Op, robIdx int, dest destReg) int {
	idx := q.tail
	q.entries[idx] = lsqEntry{
		valid:   true,
		isStore: isStore,
		op:      op,
		robIdx:  robIdx,
		dest:    dest,
		pos:     q.nextPos,
	}
	q.nextPos++
	q.tail = (q.tail + 1) % len(q.entries)
	q.count++
	return idx
}

// free invalidates a slot and advances the head past freed entries.
func (q *loadStoreQueue) free(idx int) {
	if !q.entries[idx].valid {
		return
	}
	q.entries[idx].valid = false
	q.count--
	for q.count > 0 && !q.entries[q.head].valid {
		q.head = (q.head + 1) % len(q.entries)
	}
	if q.count == 0 {
		q.head = q.tail
	}
}

func (q *loadStoreQueue) at(idx int) *lsqEntry {
	return &q.entries[idx]
}

// olderStorePending reports whether any store older than the given entry
// is still in the queue. Loads hold dispatch until this clears, which
// keeps every load ordered after all prior stores have written memory.
func (q *loadStoreQueue) olderStorePending(idx int) bool {
	if idx < 0 {
		return false
	}
	pos := q.entries[idx].pos
	for i := range q.entries {
		en := &q.entries[i]
		if en.valid && en.isStore && en.pos < pos {
			return true
		}
	}
	return false
}
