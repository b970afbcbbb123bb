package fluid

import (
	"errors"

	"dyeflow/internal/core"
)

// Jet enumerates the directions a dye jet can be fired in.
type Jet uint8

const (
	JetUp Jet = iota
	JetDown
	JetLeft
	JetRight
)

const (
	// JetDye is the dye injected by one jet.
	JetDye = 1500.0
	// JetSpeed is the velocity magnitude injected by one jet.
	JetSpeed = 15.0
	// StirDye is the dye injected per stirred cell.
	StirDye = 255.0
)

// Stir injects dye and the drag velocity (du along columns, dv along rows)
// at one cell. Drags landing beyond the last interior cell are ignored.
func (f *Fluid) Stir(row, col int, du, dv float64) error {
	if row < 0 || col < 0 || row > f.n-2 || col > f.n-2 {
		return &OutOfRangeError{Field: "stir", Row: row, Col: col, Size: f.n}
	}
	return f.injectAll(row, col, StirDye, du, dv)
}

// Shoot fires a dye jet from three cells inside the wall opposite to the
// direction of travel, centred on that wall.
func (f *Fluid) Shoot(dir Jet) error {
	mid := f.n / 2
	far := f.n - 3
	switch dir {
	case JetUp:
		return f.injectAll(far, mid, JetDye, 0, -JetSpeed)
	case JetDown:
		return f.injectAll(3, mid, JetDye, 0, JetSpeed)
	case JetRight:
		return f.injectAll(mid, 3, JetDye, JetSpeed, 0)
	case JetLeft:
		return f.injectAll(mid, far, JetDye, -JetSpeed, 0)
	}
	return errors.New("fluid: unknown jet direction")
}

func (f *Fluid) injectAll(row, col int, dye, du, dv float64) error {
	if err := f.AddDye(dye, row, col); err != nil {
		return err
	}
	if err := f.AddU(du, row, col); err != nil {
		return err
	}
	return f.AddV(dv, row, col)
}

// seedPuffs scatters Puffs small dye blobs with a random push over the
// interior, keeping two cells clear of the walls.
func (f *Fluid) seedPuffs(rng *core.RNG) {
	for i := 0; i < f.cfg.Puffs; i++ {
		row := rng.IntRange(2, f.n-3)
		col := rng.IntRange(2, f.n-3)
		du := rng.FloatRange(-JetSpeed, JetSpeed)
		dv := rng.FloatRange(-JetSpeed, JetSpeed)
		amount := rng.FloatRange(StirDye, JetDye)
		// in range by construction
		_ = f.injectAll(row, col, amount, du, dv)
	}
}
