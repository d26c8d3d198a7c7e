package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// functionalUnit executes one operation at a time. It snapshots the
// station's operands at dispatch so the station can be reused immediately.
type functionalUnit struct {
	busy      bool
	op        insts.Op
	remaining int

	v1, v2 emu.Value
	a      int64
	pc     uint64
	robIdx int
}

// start loads the unit from a dispatching station.
func (f *functionalUnit) start(s *station, lat int) {
	f.busy = true
	f.op = s.op
	f.remaining = lat
	f.v1 = s.vj
	f.v2 = s.vk
	f.a = s.a
	f.pc = s.pc
	f.robIdx = s.robIdx
}

// fuPool is the fixed set of functional units for one class.
type fuPool struct {
	class insts.Class
	units []functionalUnit
}

func newFUPool(class insts.Class, size int) *fuPool {
	return &fuPool{
		class: class,
		units: make([]functionalUnit, size),
	}
}

// freeUnit returns an idle unit, or nil when all are busy.
func (p *fuPool) freeUnit() *functionalUnit {
	for i := range p.units {
		if !p.units[i].busy {
			return &p.units[i]
		}
	}
	return nil
}

func (p *fuPool) busyCount() int {
	n := 0
	for i := range p.units {
		if p.units[i].busy {
			n++
		}
	}
	return n
}
