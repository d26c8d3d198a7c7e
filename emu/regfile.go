package emu

// RegFile holds the committed architectural registers: 32 integer and
// 32 double-precision FP registers. Integer register 0 is hardwired to
// zero; reads return 0 and writes are dropped.
type RegFile struct {
	// Int holds integer registers x0-x31.
	Int [32]uint64

	// Fp holds FP registers f0-f31.
	Fp [32]float64
}

// ReadInt reads integer register i. Register 0 reads as 0.
func (r *RegFile) ReadInt(i int) uint64 {
	if i <= 0 || i >= 32 {
		return 0
	}
	return r.Int[i]
}

// WriteInt writes integer register i. Writes to register 0 are dropped.
func (r *RegFile) WriteInt(i int, v uint64) {
	if i <= 0 || i >= 32 {
		return
	}
	r.Int[i] = v
}

// ReadFp reads FP register i.
func (r *RegFile) ReadFp(i int) float64 {
	if i < 0 || i >= 32 {
		return 0
	}
	return r.Fp[i]
}

// WriteFp writes FP register i.
func (r *RegFile) WriteFp(i int, v float64) {
	if i < 0 || i >= 32 {
		return
	}
	r.Fp[i] = v
}
