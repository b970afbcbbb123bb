package fluid

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DisplayMax is the dye concentration rendered at full intensity.
const DisplayMax = 255.0

// Cells exposes the dye field clamped to [0, DisplayMax] as one byte per
// cell. The buffer is rebuilt lazily after any change to the dye.
func (f *Fluid) Cells() []uint8 {
	if f.dirty {
		f.rebuildDisplay()
	}
	return f.display
}

func (f *Fluid) rebuildDisplay() {
	for i, d := range f.dye.Values() {
		f.display[i] = uint8(clamp(d, 0, DisplayMax))
	}
	f.dirty = false
}

// DivergenceMask returns |divergence| per cell normalised to [0, 1] by the
// largest magnitude on the grid. A divergence-free field yields all zeros.
func (f *Fluid) DivergenceMask() []float32 {
	d := Divergence(f.u, f.v).Values()
	mask := make([]float32, len(d))
	peak := floats.Norm(d, math.Inf(1))
	if peak == 0 {
		return mask
	}
	for i, x := range d {
		mask[i] = float32(math.Abs(x) / peak)
	}
	return mask
}
