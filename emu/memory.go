package emu

// Memory is a flat, sparse, address-keyed store with separate integer and
// FP maps. Addresses with no entry read as zero of the appropriate variant.
// There is no virtual memory, no caches, and no access-size modeling.
type Memory struct {
	ints map[uint64]uint64
	fps  map[uint64]float64
}

// NewMemory creates an empty memory.
func NewMemory() *Memory {
	return &Memory{
		ints: make(map[uint64]uint64),
		fps:  make(map[uint64]float64),
	}
}

// ReadInt reads an integer word/doubleword at addr; absent addresses read 0.
func (m *Memory) ReadInt(addr uint64) uint64 {
	return m.ints[addr]
}

// WriteInt writes an integer value at addr.
func (m *Memory) WriteInt(addr uint64, v uint64) {
	m.ints[addr] = v
}

// ReadFp reads a double at addr; absent addresses read 0.0.
func (m *Memory) ReadFp(addr uint64) float64 {
	return m.fps[addr]
}

// WriteFp writes a double at addr.
func (m *Memory) WriteFp(addr uint64, v float64) {
	m.fps[addr] = v
}

// IntEntries returns a copy of the populated integer addresses.
func (m *Memory) IntEntries() map[uint64]uint64 {
	out := make(map[uint64]uint64, len(m.ints))
	for k, v := range m.ints {
		out[k] = v
	}
	return out
}

// FpEntries returns a copy of the populated FP addresses.
func (m *Memory) FpEntries() map[uint64]float64 {
	out := make(map[uint64]float64, len(m.fps))
	for k, v := range m.fps {
		out[k] = v
	}
	return out
}
