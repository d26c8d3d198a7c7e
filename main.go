// Package main provides the entry point for RVSim.
// RVSim is a cycle-accurate Tomasulo-style out-of-order RV64 simulator.
//
// For the full CLI, use: go run ./cmd/rvsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("RVSim - Out-of-Order RV64 Simulator")
	fmt.Println("")
	fmt.Println("Usage: rvsim [options] <program.bin>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -trace     Print per-cycle machine state")
	fmt.Println("  -config    Path to latency configuration JSON file")
	fmt.Println("  -machine   Path to machine topology JSON file")
	fmt.Println("  -state     Path to initial register/memory state JSON file")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rvsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rvsim' instead.")
	}
}
