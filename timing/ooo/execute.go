package ooo

import (
	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
)

// execute runs the dispatch and advance halves of the cycle. Results
// completed here land on the CDB slice for the broadcast phase.
func (e *Engine) execute() error {
	e.cdb = e.cdb[:0]
	e.dispatch()
	return e.advance()
}

// dispatch moves ready reservation-station entries onto free functional
// units. The station frees immediately; the unit holds the snapshot.
func (e *Engine) dispatch() {
	for _, class := range dispatchOrder {
		pool := e.pool(class)
		fus := e.fuPool(class)
		isLoad := class == insts.ClassLoad

		for i := range pool.entries {
			s := &pool.entries[i]
			if !s.ready(isLoad) {
				continue
			}
			// A load may not read memory while an older store is still
			// in the queue waiting to write it.
			if isLoad && e.lsq.olderStorePending(e.rob.at(s.robIdx).lsqIdx) {
				continue
			}
			fu := fus.freeUnit()
			if fu == nil {
				break
			}
			fu.start(s, e.lat.Latency(s.op))
			e.rob.at(s.robIdx).state = stateExecuting
			s.clear()
		}
	}
}

// advance ticks every busy functional unit and completes those that
// reach zero remaining cycles.
func (e *Engine) advance() error {
	for _, class := range dispatchOrder {
		fus := e.fuPool(class)
		for i := range fus.units {
			fu := &fus.units[i]
			if !fu.busy {
				continue
			}
			e.progressed = true
			fu.remaining--
			if fu.remaining > 0 {
				continue
			}
			if err := e.complete(fu, class); err != nil {
				return err
			}
			fu.busy = false
		}
	}
	return nil
}

// complete finishes one operation: loads read memory, stores record
// their address and data in the LSQ, and everything else computes a
// result. Completed values go on the CDB; taken branch and jump targets
// are recorded for the redirect phase.
func (e *Engine) complete(fu *functionalUnit, class insts.Class) error {
	entry := e.rob.at(fu.robIdx)

	switch class {
	case insts.ClassLoad:
		addr := fu.v1.Int() + uint64(fu.a)
		var result emu.Value
		if insts.IsFPLoad(fu.op) {
			result = emu.FloatValue(e.mem.ReadFp(addr))
		} else {
			result = emu.IntValue(e.mem.ReadInt(addr))
		}
		lq := e.lsq.at(entry.lsqIdx)
		lq.address = addr
		lq.addrReady = true
		lq.data = result
		lq.hasData = true
		entry.result = result
		entry.hasResult = true
		e.cdb = append(e.cdb, Broadcast{Tag: Tag(fu.robIdx), Value: result})

	case insts.ClassStore:
		lq := e.lsq.at(entry.lsqIdx)
		lq.address = fu.v1.Int() + uint64(fu.a)
		lq.addrReady = true
		lq.data = fu.v2
		lq.hasData = true

	default:
		result, err := emu.Execute(class, fu.op, fu.v1, fu.v2, fu.pc)
		if err != nil {
			return err
		}
		entry.result = result
		entry.hasResult = true
		e.cdb = append(e.cdb, Broadcast{Tag: Tag(fu.robIdx), Value: result})

		switch fu.op {
		case insts.OpBNE:
			if result.Int() != 0 {
				e.setRedirect(int(fu.pc/4) + int(fu.a/4))
			}
		case insts.OpJALR:
			e.setRedirect(int((fu.v1.Int() + uint64(fu.a)) / 4))
		}
	}

	entry.state = stateExecuted
	return nil
}
