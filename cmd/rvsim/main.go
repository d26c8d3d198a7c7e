// Package main provides the entry point for RVSim.
// RVSim is a cycle-accurate Tomasulo-style out-of-order RV64 simulator.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/sarchlab/rvsim/emu"
	"github.com/sarchlab/rvsim/insts"
	"github.com/sarchlab/rvsim/loader"
	"github.com/sarchlab/rvsim/timing/core"
	"github.com/sarchlab/rvsim/timing/latency"
	"github.com/sarchlab/rvsim/timing/ooo"
)

var (
	configPath  = flag.String("config", "", "Path to latency configuration JSON file")
	machinePath = flag.String("machine", "", "Path to machine topology JSON file")
	statePath   = flag.String("state", "", "Path to initial register/memory state JSON file")
	trace       = flag.Bool("trace", false, "Print per-cycle machine state")
	verbose     = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: rvsim [options] <program.bin>\n")
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	program, err := loader.Load(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading program: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Printf("Loaded: %s\n", programPath)
		fmt.Printf("Instructions: %d\n", len(program))
		for i, inst := range program {
			fmt.Printf("  %4d: %s\n", i*4, inst)
		}
	}

	os.Exit(run(program, programPath))
}

// run simulates a decoded program and prints the timing report.
// It returns the process exit code.
func run(program []*insts.Instruction, programPath string) int {
	latencyTable, err := buildLatencyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	machineConfig, err := buildMachineConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	regFile := &emu.RegFile{}
	memory := emu.NewMemory()

	if *statePath != "" {
		state, err := emu.LoadInitialState(*statePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading initial state: %v\n", err)
			return 1
		}
		state.Apply(regFile, memory)
	}

	opts := []core.Option{
		core.WithMachineConfig(machineConfig),
		core.WithLatencyTable(latencyTable),
	}
	if *trace {
		opts = append(opts, core.WithTrace(os.Stdout))
	}

	c := core.NewCore(program, regFile, memory, opts...)

	if err := c.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Simulation error: %v\n", err)
		return 1
	}

	printReport(c, programPath)
	return 0
}

func buildLatencyTable() (*latency.Table, error) {
	if *configPath == "" {
		return latency.NewTable(), nil
	}
	config, err := latency.LoadConfig(*configPath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid latency config: %w", err)
	}
	return latency.NewTableWithConfig(config), nil
}

func buildMachineConfig() (*ooo.Config, error) {
	if *machinePath == "" {
		return ooo.DefaultConfig(), nil
	}
	config, err := ooo.LoadConfig(*machinePath)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine config: %w", err)
	}
	return config, nil
}

// printReport prints final architectural state and timing statistics.
func printReport(c *core.Core, programPath string) {
	stats := c.Stats()
	regFile := c.RegFile()
	memory := c.Memory()

	fmt.Printf("\n")
	fmt.Printf("Program: %s\n", programPath)
	fmt.Printf("Total Instructions: %d\n", stats.Instructions)
	fmt.Printf("Total Cycles: %d\n", stats.Cycles)
	fmt.Printf("CPI: %.2f\n", stats.CPI)
	fmt.Printf("\n")
	fmt.Printf("Pipeline Events:\n")
	fmt.Printf("  Issue stalls:  %d\n", stats.IssueStalls)
	fmt.Printf("  Commit stalls: %d\n", stats.CommitStalls)
	fmt.Printf("  Redirects:     %d\n", stats.Redirects)

	fmt.Printf("\nInteger Registers (non-zero):\n")
	for i := 0; i < 32; i++ {
		if v := regFile.ReadInt(i); v != 0 {
			fmt.Printf("  %-4s = %d\n", insts.IntRegName(i), int64(v))
		}
	}
	fmt.Printf("\nFP Registers (non-zero):\n")
	for i := 0; i < 32; i++ {
		if v := regFile.ReadFp(i); v != 0.0 {
			fmt.Printf("  %-4s = %g\n", insts.FPRegName(i), v)
		}
	}

	intMem := memory.IntEntries()
	fpMem := memory.FpEntries()
	if len(intMem) > 0 {
		fmt.Printf("\nInteger Memory:\n")
		for _, addr := range sortedAddrs(intMem) {
			fmt.Printf("  [%d] = %d\n", addr, int64(intMem[addr]))
		}
	}
	if len(fpMem) > 0 {
		fmt.Printf("\nFP Memory:\n")
		for _, addr := range sortedFpAddrs(fpMem) {
			fmt.Printf("  [%d] = %g\n", addr, fpMem[addr])
		}
	}
}

func sortedAddrs(m map[uint64]uint64) []uint64 {
	addrs := make([]uint64, 0, len(m))
	for addr := range m {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}

func sortedFpAddrs(m map[uint64]float64) []uint64 {
	addrs := make([]uint64, 0, len(m))
	for addr := range m {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })
	return addrs
}
