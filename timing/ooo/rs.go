package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// station is a single reservation-station entry. Operands arrive either at
// issue (from the register file or an EXECUTED ROB slot) or later via a
// CDB broadcast matching Qj/Qk. A is the sign-extended immediate; for
// I-type ALU ops the immediate is carried in Vk instead so the FU sees two
// plain operands.
type station struct {
	busy bool
	op   insts.Op

	qj, qk       Tag
	vj, vk       emu.Value
	hasVj, hasVk bool

	a      int64
	pc     uint64
	robIdx int
}

// ready reports whether the entry can dispatch to a functional unit.
// Loads carry only one operand; everything else needs both.
func (s *station) ready(isLoad bool) bool {
	if !s.busy {
		return false
	}
	if s.qj.Valid() || !s.hasVj {
		return false
	}
	if isLoad {
		return true
	}
	return !s.qk.Valid() && s.hasVk
}

// clear releases the entry. Stations free at dispatch, not completion;
// the functional unit snapshots everything it needs.
func (s *station) clear() {
	*s = station{qj: TagNone, qk: TagNone}
}

// stationPool is the fixed set of reservation stations for one class.
type stationPool struct {
	class   insts.Class
	entries []station
}

func newStationPool(class insts.Class, size int) *stationPool {
	p := &stationPool{
		class:   class,
		entries: make([]station, size),
	}
	for i := range p.entries {
		p.entries[i].qj = TagNone
		p.entries[i].qk = TagNone
	}
	return p
}

// freeIndex returns the index of a free entry, or -1 when the pool is full.
func (p *stationPool) freeIndex() int {
	for i := range p.entries {
		if !p.entries[i].busy {
			return i
		}
	}
	return -1
}

func (p *stationPool) hasFree() bool {
	return p.freeIndex() >= 0
}

func (p *stationPool) busyCount() int {
	n := 0
	for i := range p.entries {
		if p.entries[i].busy {
			n++
		}
	}
	return n
}
