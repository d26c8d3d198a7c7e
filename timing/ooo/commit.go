package ooo

import (
	"github.com/sarchlab/rvsim/insts"
)

// commit retires the oldest instruction when it has finished executing.
// Register writes and store memory writes happen only here, in program
// order, so architectural state is always a precise prefix of the
// program.
func (e *Engine) commit() {
	entry := e.rob.headEntry()
	if entry == nil {
		return
	}
	if entry.state != stateExecuted {
		e.stats.CommitStalls++
		return
	}

	headIdx := e.rob.head

	if entry.isStore {
		lq := e.lsq.at(entry.lsqIdx)
		if !lq.addrReady || !lq.hasData {
			e.stats.CommitStalls++
			return
		}
		if insts.IsFPStore(entry.op) {
			e.mem.WriteFp(lq.address, lq.data.Float())
		} else {
			e.mem.WriteInt(lq.address, lq.data.Int())
		}
		e.lsq.free(entry.lsqIdx)
	} else {
		if entry.hasResult {
			switch entry.dest.kind {
			case destInt:
				e.regs.WriteInt(entry.dest.idx, entry.result.Int())
				if e.intStatus[entry.dest.idx] == Tag(headIdx) {
					e.intStatus[entry.dest.idx] = TagNone
				}
			case destFp:
				e.regs.WriteFp(entry.dest.idx, entry.result.Float())
				if e.fpStatus[entry.dest.idx] == Tag(headIdx) {
					e.fpStatus[entry.dest.idx] = TagNone
				}
			}
		}
		if entry.isLoad && entry.lsqIdx >= 0 {
			e.lsq.free(entry.lsqIdx)
		}
	}

	entry.state = stateCommitted
	entry.busy = false
	e.rob.release()
	e.stats.Instructions++
	e.progressed = true
}
