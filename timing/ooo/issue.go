package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// issue brings the next program-order instruction into the machine. All
// structural preconditions are checked before any state changes, so a
// stalled issue leaves the machine untouched.
func (e *Engine) issue() {
	if e.halted || e.fetchIdx >= len(e.program) {
		return
	}

	inst := e.program[e.fetchIdx]
	op := inst.Op
	pc := uint64(e.fetchIdx) * 4

	// Undecodable words and ebreak occupy only a ROB slot and retire in
	// order as no-ops. Ebreak additionally stops fetch.
	if op == insts.OpUnknown || op == insts.OpEBREAK {
		if e.rob.full() {
			e.stats.IssueStalls++
			return
		}
		robIdx := e.rob.alloc()
		*e.rob.at(robIdx) = robEntry{
			busy:   true,
			op:     op,
			inst:   inst,
			state:  stateExecuted,
			lsqIdx: -1,
			pc:     pc,
		}
		if op == insts.OpEBREAK {
			e.halted = true
		}
		e.fetchIdx++
		e.stats.Issued++
		e.progressed = true
		return
	}

	class := insts.ClassOf(op)
	pool := e.pool(class)
	isMem := insts.IsLoad(op) || insts.IsStore(op)

	if e.rob.full() || !pool.hasFree() || (isMem && e.lsq.full()) {
		e.stats.IssueStalls++
		return
	}

	robIdx := e.rob.alloc()
	entry := e.rob.at(robIdx)
	*entry = robEntry{
		busy:    true,
		op:      op,
		inst:    inst,
		dest:    destOf(inst),
		isLoad:  insts.IsLoad(op),
		isStore: insts.IsStore(op),
		state:   stateIssued,
		lsqIdx:  -1,
		pc:      pc,
	}
	if isMem {
		entry.lsqIdx = e.lsq.alloc(entry.isStore, op, robIdx, entry.dest)
	}

	s := &pool.entries[pool.freeIndex()]
	*s = station{
		busy:   true,
		op:     op,
		qj:     TagNone,
		qk:     TagNone,
		a:      int64(inst.Imm),
		pc:     pc,
		robIdx: robIdx,
	}

	// First operand: rs1 or fs1. Ops without one (LUI, AUIPC) see a zero.
	switch {
	case inst.Rs1 >= 0:
		e.resolveInt(inst.Rs1, &s.vj, &s.hasVj, &s.qj)
	case inst.Fs1 >= 0:
		e.resolveFp(inst.Fs1, &s.vj, &s.hasVj, &s.qj)
	default:
		s.vj = emu.IntValue(0)
		s.hasVj = true
	}

	// Second operand. Loads carry none; stores carry the value to write;
	// I-type ALU ops fold the immediate in so the FU sees two operands.
	switch {
	case entry.isLoad:
	case inst.Rs2 >= 0:
		e.resolveInt(inst.Rs2, &s.vk, &s.hasVk, &s.qk)
	case inst.Fs2 >= 0:
		e.resolveFp(inst.Fs2, &s.vk, &s.hasVk, &s.qk)
	default:
		s.vk = emu.IntValue(uint64(int64(inst.Imm)))
		s.hasVk = true
	}

	// Rename the destination. x0 is architecturally zero and never renamed.
	switch entry.dest.kind {
	case destInt:
		if entry.dest.idx != 0 {
			e.intStatus[entry.dest.idx] = Tag(robIdx)
		}
	case destFp:
		e.fpStatus[entry.dest.idx] = Tag(robIdx)
	}

	e.fetchIdx++
	e.stats.Issued++
	e.progressed = true
}

// resolveInt fills an operand from the integer register file, forwarding
// from an EXECUTED but uncommitted producer's ROB slot, or records the
// producer's tag when the value is still in flight.
func (e *Engine) resolveInt(idx int, v *emu.Value, has *bool, q *Tag) {
	tag := e.intStatus[idx]
	if !tag.Valid() {
		*v = emu.IntValue(e.regs.ReadInt(idx))
		*has = true
		return
	}
	producer := e.rob.at(int(tag))
	if producer.state == stateExecuted && producer.hasResult {
		*v = producer.result
		*has = true
		return
	}
	*q = tag
}

// resolveFp is resolveInt for the FP register file.
func (e *Engine) resolveFp(idx int, v *emu.Value, has *bool, q *Tag) {
	tag := e.fpStatus[idx]
	if !tag.Valid() {
		*v = emu.FloatValue(e.regs.ReadFp(idx))
		*has = true
		return
	}
	producer := e.rob.at(int(tag))
	if producer.state == stateExecuted && producer.hasResult {
		*v = producer.result
		*has = true
		return
	}
	*q = tag
}
