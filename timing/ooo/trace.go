package ooo

import (
	"fmt"
	"io"

	"github.com/sarchlab/rvsim/insts"
)

// printCycle renders the machine state after a cycle: live ROB entries,
// register-status tables, non-zero register values, busy reservation
// stations, and the cycle's CDB broadcasts.
func (e *Engine) printCycle(w io.Writer) {
	fmt.Fprintf(w, "\n========== CYCLE %d ==========\n", e.cycle)

	e.printROB(w)
	e.printRegStatus(w)
	e.printRegValues(w)
	e.printStations(w)
	e.printCDB(w)

	fmt.Fprintf(w, "========================================\n\n")
}

func (e *Engine) printROB(w io.Writer) {
	printedHeader := false
	for i := range e.rob.entries {
		entry := &e.rob.entries[i]
		if !entry.busy {
			continue
		}
		if !printedHeader {
			fmt.Fprintf(w, "ROB (head=%d, tail=%d, count=%d):\n",
				e.rob.head, e.rob.tail, e.rob.count)
			printedHeader = true
		}

		result := ""
		if entry.hasResult {
			result = " [has result]"
		}
		fmt.Fprintf(w, "  ROB%d : op=%s instr=%s dest=%s state=%s lsq_idx=%d%s\n",
			i, entry.op.Name(), entry.inst, entry.dest,
			entry.state, entry.lsqIdx, result)
	}
}

func (e *Engine) printRegStatus(w io.Writer) {
	fmt.Fprintf(w, "\nInteger Register Status:\n")
	for i, tag := range e.intStatus {
		if tag.Valid() {
			fmt.Fprintf(w, "  x%d <- %s\n", i, tag)
		}
	}
	fmt.Fprintf(w, "FP Register Status:\n")
	for i, tag := range e.fpStatus {
		if tag.Valid() {
			fmt.Fprintf(w, "  f%d <- %s\n", i, tag)
		}
	}
}

func (e *Engine) printRegValues(w io.Writer) {
	fmt.Fprintf(w, "\nInteger Register value:\n")
	for i := 0; i < 32; i++ {
		if v := e.regs.ReadInt(i); v != 0 {
			fmt.Fprintf(w, "  x%d <- %d\t", i, int64(v))
		}
	}
	fmt.Fprintf(w, "\nFP Register value:\n")
	for i := 0; i < 32; i++ {
		if v := e.regs.ReadFp(i); v != 0.0 {
			fmt.Fprintf(w, "  f%d <- %g\t", i, v)
		}
	}
	fmt.Fprintln(w)
}

func (e *Engine) printStations(w io.Writer) {
	for pi, class := range dispatchOrder {
		pool := e.pools[pi]
		name := stationPoolName(class)
		printedHeader := false
		for i := range pool.entries {
			s := &pool.entries[i]
			if !s.busy {
				continue
			}
			if !printedHeader {
				fmt.Fprintf(w, "\n%s:\n", name)
				printedHeader = true
			}
			fmt.Fprintf(w, "  %s%d: op=%s ROB%d Qj=%s Qk=%s",
				name, i, s.op.Name(), s.robIdx, s.qj, s.qk)
			if s.hasVj {
				fmt.Fprintf(w, " Vj=%s", s.vj)
			}
			if s.hasVk {
				fmt.Fprintf(w, " Vk=%s", s.vk)
			}
			fmt.Fprintf(w, " A=%d\n", s.a)
		}
	}
}

func (e *Engine) printCDB(w io.Writer) {
	if len(e.cdb) == 0 {
		return
	}
	fmt.Fprintf(w, "\nCDB Broadcasts:\n")
	for _, b := range e.cdb {
		fmt.Fprintf(w, "  %s -> %s\n", b.Tag, b.Value)
	}
}

func stationPoolName(class insts.Class) string {
	switch class {
	case insts.ClassIntALU:
		return "INTALU_RS"
	case insts.ClassMulDiv:
		return "MULDIV_RS"
	case insts.ClassLoad:
		return "LOAD_RS"
	case insts.ClassStore:
		return "STORE_RS"
	case insts.ClassFPAdd:
		return "FPADD_RS"
	case insts.ClassFPMul:
		return "FPMUL_RS"
	case insts.ClassFPDiv:
		return "FPDIV_RS"
	default:
		return "RS"
	}
}
